package pose

import "testing"

// TestNewFrameValidation checks constructor rejection of bad inputs
func TestNewFrameValidation(t *testing.T) {

	if _, err := NewFrame(nil, 100); err == nil {
		t.Error("expected error for empty joints")
	}

	joints := []KeyPoint{{X: 1, Y: 2}}

	if _, err := NewFrame(joints, 0); err == nil {
		t.Error("expected error for zero height")
	}

	if _, err := NewFrame(joints, -5); err == nil {
		t.Error("expected error for negative height")
	}
}

// TestFrameAccessors checks reading joints and height back out
func TestFrameAccessors(t *testing.T) {

	joints := []KeyPoint{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	frame, err := NewFrame(joints, 170.5)

	if err != nil {
		t.Fatalf("NewFrame failed: %v", err)
	}

	if frame.Len() != 3 {
		t.Errorf("expected 3 joints, got %d", frame.Len())
	}

	if frame.Height() != 170.5 {
		t.Errorf("expected height 170.5, got %v", frame.Height())
	}

	if got := frame.Joint(1); got != (KeyPoint{X: 3, Y: 4}) {
		t.Errorf("joint 1 mismatch: %v", got)
	}

	all := frame.Joints()

	for i := range joints {
		if all[i] != joints[i] {
			t.Errorf("joint %d mismatch: %v vs %v", i, all[i], joints[i])
		}
	}
}

// TestFrameImmutability checks the frame copies its joints on the way in
// and out
func TestFrameImmutability(t *testing.T) {

	joints := []KeyPoint{{X: 1, Y: 2}, {X: 3, Y: 4}}
	frame, err := NewFrame(joints, 100)

	if err != nil {
		t.Fatalf("NewFrame failed: %v", err)
	}

	// mutate the caller's slice after construction
	joints[0] = KeyPoint{X: -99, Y: -99}

	if frame.Joint(0) != (KeyPoint{X: 1, Y: 2}) {
		t.Error("frame shares storage with the caller's slice")
	}

	// mutate the slice handed back by Joints
	out := frame.Joints()
	out[1] = KeyPoint{X: -99, Y: -99}

	if frame.Joint(1) != (KeyPoint{X: 3, Y: 4}) {
		t.Error("Joints returns the frame's internal storage")
	}
}
