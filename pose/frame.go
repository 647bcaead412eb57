package pose

import "fmt"

// Frame represents a single time sampled pose observation of a person, an
// ordered fixed size collection of joint coordinates plus a scalar body
// height estimate.  A Frame is immutable once constructed.
type Frame struct {
	// joints holds one coordinate pair per anatomical joint, in the fixed
	// layout ordering
	joints []KeyPoint
	// height is the body height/scale estimate in the same units as the
	// joint coordinates
	height float64
}

// NewFrame constructs a Frame from the given joint coordinates and body
// height estimate.  The joints slice is copied so later modification by
// the caller does not affect the Frame.
func NewFrame(joints []KeyPoint, height float64) (Frame, error) {

	if len(joints) == 0 {
		return Frame{}, fmt.Errorf("frame requires at least one joint")
	}

	if height <= 0 {
		return Frame{}, fmt.Errorf("frame height must be positive, got %v", height)
	}

	cp := make([]KeyPoint, len(joints))
	copy(cp, joints)

	return Frame{
		joints: cp,
		height: height,
	}, nil
}

// Len returns the number of joints in the frame
func (f Frame) Len() int {
	return len(f.joints)
}

// Joint returns the coordinates of the joint at the given layout index
func (f Frame) Joint(i int) KeyPoint {
	return f.joints[i]
}

// Joints returns a copy of all joint coordinates in layout order
func (f Frame) Joints() []KeyPoint {
	cp := make([]KeyPoint, len(f.joints))
	copy(cp, f.joints)
	return cp
}

// Height returns the body height estimate
func (f Frame) Height() float64 {
	return f.height
}
