package posemotion

import (
	"fmt"

	"github.com/swdee/go-posemotion/pose"
)

// Config defines the parameters used to build motion descriptors.  One
// Config is shared by all descriptors built in a pipeline run, so the
// resulting vectors have identical column semantics.
type Config struct {
	// JointCount is the number of joints each input frame must carry
	JointCount int
	// ExcludedJoints are the joint indexes dropped before feature
	// construction.  Indexes refer to the original pre-filter layout
	// ordering and apply identically to every frame.
	ExcludedJoints []int
	// ReferenceJoint is the joint whose raw displacement between
	// consecutive frames provides the scalar body velocity.  The index
	// refers to the original pre-filter layout ordering and must not
	// appear in ExcludedJoints.
	ReferenceJoint int
	// VelocityRepeats is the number of times each body velocity scalar is
	// repeated in the final vector.  Repetition amplifies the body
	// velocity signal relative to the position and joint velocity terms,
	// a feature weighting choice the downstream classifier depends on.
	VelocityRepeats int
}

// DefaultConfig returns a Config for the default 18 joint skeleton layout
// featuring:
//   - Excluded Joints: nose, eyes, ears, knees and ankles
//   - Reference Joint: neck
//   - Velocity Repeats: 10
func DefaultConfig() Config {
	return Config{
		JointCount: pose.LayoutJoints,
		ExcludedJoints: []int{
			pose.Nose, pose.LeftEye, pose.RightEye, pose.LeftEar, pose.RightEar,
			pose.LeftKnee, pose.RightKnee, pose.LeftAnkle, pose.RightAnkle,
		},
		ReferenceJoint:  pose.Neck,
		VelocityRepeats: 10,
	}
}

// Validate checks the Config for internal consistency and returns an
// error wrapping ErrConfig on any violation
func (c Config) Validate() error {

	if c.JointCount <= 0 {
		return fmt.Errorf("%w: joint count must be positive, got %d",
			ErrConfig, c.JointCount)
	}

	if c.VelocityRepeats <= 0 {
		return fmt.Errorf("%w: velocity repeats must be positive, got %d",
			ErrConfig, c.VelocityRepeats)
	}

	seen := make(map[int]bool, len(c.ExcludedJoints))

	for _, j := range c.ExcludedJoints {
		if j < 0 || j >= c.JointCount {
			return fmt.Errorf("%w: excluded joint %d out of range for %d joints",
				ErrConfig, j, c.JointCount)
		}

		if seen[j] {
			return fmt.Errorf("%w: excluded joint %d listed twice", ErrConfig, j)
		}

		seen[j] = true
	}

	if len(c.ExcludedJoints) >= c.JointCount {
		return fmt.Errorf("%w: all %d joints excluded", ErrConfig, c.JointCount)
	}

	if c.ReferenceJoint < 0 || c.ReferenceJoint >= c.JointCount {
		return fmt.Errorf("%w: reference joint %d out of range for %d joints",
			ErrConfig, c.ReferenceJoint, c.JointCount)
	}

	if seen[c.ReferenceJoint] {
		return fmt.Errorf("%w: reference joint %d is in the excluded set",
			ErrConfig, c.ReferenceJoint)
	}

	return nil
}

// keptJoints returns the original layout indexes retained after removing
// the excluded set, in ascending order
func (c Config) keptJoints() []int {

	excluded := make(map[int]bool, len(c.ExcludedJoints))

	for _, j := range c.ExcludedJoints {
		excluded[j] = true
	}

	kept := make([]int, 0, c.JointCount-len(c.ExcludedJoints))

	for j := 0; j < c.JointCount; j++ {
		if !excluded[j] {
			kept = append(kept, j)
		}
	}

	return kept
}
