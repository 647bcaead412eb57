package posemotion

import (
	"errors"
	"testing"
)

// TestDefaultConfigValid checks the default configuration passes its own
// validation
func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestConfigValidate checks each configuration violation is rejected
// with ErrConfig
func TestConfigValidate(t *testing.T) {

	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "zero joint count",
			cfg:  Config{JointCount: 0, ReferenceJoint: 0, VelocityRepeats: 1},
		},
		{
			name: "zero velocity repeats",
			cfg:  Config{JointCount: 4, ReferenceJoint: 0, VelocityRepeats: 0},
		},
		{
			name: "excluded joint out of range",
			cfg: Config{JointCount: 4, ExcludedJoints: []int{4},
				ReferenceJoint: 0, VelocityRepeats: 1},
		},
		{
			name: "negative excluded joint",
			cfg: Config{JointCount: 4, ExcludedJoints: []int{-1},
				ReferenceJoint: 0, VelocityRepeats: 1},
		},
		{
			name: "duplicate excluded joint",
			cfg: Config{JointCount: 4, ExcludedJoints: []int{1, 1},
				ReferenceJoint: 0, VelocityRepeats: 1},
		},
		{
			name: "all joints excluded",
			cfg: Config{JointCount: 2, ExcludedJoints: []int{0, 1},
				ReferenceJoint: 0, VelocityRepeats: 1},
		},
		{
			name: "reference joint out of range",
			cfg:  Config{JointCount: 4, ReferenceJoint: 4, VelocityRepeats: 1},
		},
		{
			name: "reference joint excluded",
			cfg: Config{JointCount: 4, ExcludedJoints: []int{2},
				ReferenceJoint: 2, VelocityRepeats: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if !errors.Is(err, ErrConfig) {
				t.Errorf("expected ErrConfig, got %v", err)
			}
		})
	}
}

// TestKeptJoints checks filtering preserves the original ordering of the
// retained joints
func TestKeptJoints(t *testing.T) {
	cfg := Config{
		JointCount:      6,
		ExcludedJoints:  []int{4, 0, 2},
		ReferenceJoint:  5,
		VelocityRepeats: 1,
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("config invalid: %v", err)
	}

	kept := cfg.keptJoints()
	want := []int{1, 3, 5}

	if len(kept) != len(want) {
		t.Fatalf("expected %v kept joints, got %v", want, kept)
	}

	for i := range want {
		if kept[i] != want[i] {
			t.Fatalf("expected %v kept joints, got %v", want, kept)
		}
	}
}
