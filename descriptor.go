package posemotion

import (
	"fmt"
	"math"

	"github.com/swdee/go-posemotion/pose"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Descriptor holds the motion descriptor vector computed from an ordered
// sequence of pose frames.  The vector is computed once at construction
// and never recomputed or mutated.
type Descriptor struct {
	// cfg is the configuration the descriptor was built with
	cfg Config
	// nFrames is the number of input frames F
	nFrames int
	// kept is the retained joint indexes in original layout order
	kept []int
	// positions is the normalized joint positions, one row per frame,
	// columns laid out joint major then axis
	positions *mat.Dense
	// bodyVel is the per frame pair body velocity scalars, before
	// replication.  Empty for a single frame input.
	bodyVel []float64
	// jointVel is the per frame pair joint velocity rows over the
	// normalized positions.  Nil for a single frame input.
	jointVel *mat.Dense
	// vector is the flattened descriptor
	vector []float64
}

// NewDescriptor builds a motion descriptor from an ordered sequence of
// consecutive pose frames of one tracked person, earliest frame first.
// The input frames are not modified.
//
// Construction is deterministic and either produces a complete vector or
// fails, with an error wrapping ErrConfig for configuration violations or
// ErrInput for degenerate frame data.
func NewDescriptor(frames []pose.Frame, cfg Config) (*Descriptor, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	nFrames := len(frames)

	if nFrames == 0 {
		return nil, fmt.Errorf("%w: empty frame sequence", ErrInput)
	}

	heights := make([]float64, nFrames)

	for i, frame := range frames {
		if frame.Len() != cfg.JointCount {
			return nil, fmt.Errorf("%w: frame %d has %d joints, expected %d",
				ErrInput, i, frame.Len(), cfg.JointCount)
		}

		heights[i] = frame.Height()
	}

	avgHeight := stat.Mean(heights, nil)

	if avgHeight == 0 {
		return nil, fmt.Errorf("%w: average height is zero", ErrInput)
	}

	d := &Descriptor{
		cfg:     cfg,
		nFrames: nFrames,
		kept:    cfg.keptJoints(),
	}

	d.computePositions(frames, avgHeight)
	d.computeBodyVelocity(frames, avgHeight)
	d.computeJointVelocity()
	d.flatten()

	return d, nil
}

// computePositions stacks the retained joint coordinates of all frames
// into a (F x J'*2) matrix, subtracts the single global mean of all the
// values, then divides every value by the average height
func (d *Descriptor) computePositions(frames []pose.Frame, avgHeight float64) {

	cols := len(d.kept) * 2
	data := make([]float64, d.nFrames*cols)

	for i, frame := range frames {
		row := data[i*cols : (i+1)*cols]

		for k, j := range d.kept {
			kp := frame.Joint(j)
			row[2*k] = kp.X
			row[2*k+1] = kp.Y
		}
	}

	// global scalar mean over the whole tensor, not per joint or per
	// frame.  The downstream classifier was trained on this exact
	// normalization.
	mean := floats.Sum(data) / float64(len(data))

	for i := range data {
		data[i] = (data[i] - mean) / avgHeight
	}

	d.positions = mat.NewDense(d.nFrames, cols, data)
}

// computeBodyVelocity computes the Euclidean displacement of the raw,
// unnormalized reference joint coordinates between each consecutive frame
// pair, divided by the average height.  A single frame input yields an
// empty result.
func (d *Descriptor) computeBodyVelocity(frames []pose.Frame, avgHeight float64) {

	d.bodyVel = make([]float64, 0, d.nFrames-1)

	for i := 1; i < d.nFrames; i++ {
		prev := frames[i-1].Joint(d.cfg.ReferenceJoint)
		cur := frames[i].Joint(d.cfg.ReferenceJoint)

		d.bodyVel = append(d.bodyVel,
			math.Hypot(cur.X-prev.X, cur.Y-prev.Y)/avgHeight)
	}
}

// computeJointVelocity computes the per joint, per axis difference between
// each consecutive pair of normalized position rows
func (d *Descriptor) computeJointVelocity() {

	if d.nFrames < 2 {
		// single frame boundary, velocity segments are empty
		return
	}

	_, cols := d.positions.Dims()
	d.jointVel = mat.NewDense(d.nFrames-1, cols, nil)

	for i := 1; i < d.nFrames; i++ {
		floats.SubTo(d.jointVel.RawRowView(i-1),
			d.positions.RawRowView(i), d.positions.RawRowView(i-1))
	}
}

// flatten concatenates the three segments into the final vector: the
// normalized positions, the replicated body velocities, then the joint
// velocities, each flattened row major (frame, joint, axis)
func (d *Descriptor) flatten() {

	_, cols := d.positions.Dims()

	n := d.nFrames*cols +
		(d.nFrames-1)*d.cfg.VelocityRepeats +
		(d.nFrames-1)*cols

	d.vector = make([]float64, 0, n)
	d.vector = append(d.vector, d.positions.RawMatrix().Data...)

	for _, v := range d.bodyVel {
		for r := 0; r < d.cfg.VelocityRepeats; r++ {
			d.vector = append(d.vector, v)
		}
	}

	if d.jointVel != nil {
		d.vector = append(d.vector, d.jointVel.RawMatrix().Data...)
	}
}

// Len returns the length of the descriptor vector
func (d *Descriptor) Len() int {
	return len(d.vector)
}

// Frames returns the number of input frames the descriptor was built from
func (d *Descriptor) Frames() int {
	return d.nFrames
}

// Vector returns a copy of the flattened descriptor vector
func (d *Descriptor) Vector() []float64 {
	cp := make([]float64, len(d.vector))
	copy(cp, d.vector)
	return cp
}

// Positions returns a copy of the normalized joint positions, one row per
// frame with columns laid out joint major then axis
func (d *Descriptor) Positions() *mat.Dense {
	return mat.DenseCopyOf(d.positions)
}

// BodyVelocities returns a copy of the body velocity scalars for each
// consecutive frame pair, before replication.  The result is empty when
// the descriptor was built from a single frame.
func (d *Descriptor) BodyVelocities() []float64 {
	cp := make([]float64, len(d.bodyVel))
	copy(cp, d.bodyVel)
	return cp
}

// JointVelocities returns a copy of the joint velocity rows for each
// consecutive frame pair, or nil when the descriptor was built from a
// single frame
func (d *Descriptor) JointVelocities() *mat.Dense {
	if d.jointVel == nil {
		return nil
	}

	return mat.DenseCopyOf(d.jointVel)
}
