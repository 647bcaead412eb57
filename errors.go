package posemotion

import "errors"

var (
	// ErrInput indicates degenerate input data, such as an empty frame
	// sequence, a zero average height, or a frame whose joint count does
	// not match the configured layout.  Construction fails entirely and
	// no partial vector is produced.
	ErrInput = errors.New("degenerate input")

	// ErrConfig indicates a broken pipeline configuration, such as a joint
	// index out of range or a reference joint that collides with the
	// excluded set.  It is fatal at construction time.
	ErrConfig = errors.New("invalid configuration")
)
