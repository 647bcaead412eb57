package pose

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError reports a malformed line in a pose text file
type ParseError struct {
	// Line is the 1-based line number the error occurred on
	Line int
	// Err is the underlying cause
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadFrames parses pose frames from text.  Each non-blank line holds one
// frame as whitespace separated values: x and y coordinates for each of
// jointCount joints in layout order, followed by a single body height
// value, 2*jointCount+1 fields in total.  Lines starting with # are
// skipped.
func ReadFrames(r io.Reader, jointCount int) ([]Frame, error) {

	var frames []Frame

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		want := 2*jointCount + 1

		if len(fields) != want {
			return nil, &ParseError{
				Line: lineNum,
				Err:  fmt.Errorf("expected %d fields, got %d", want, len(fields)),
			}
		}

		vals := make([]float64, len(fields))

		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)

			if err != nil {
				return nil, &ParseError{
					Line: lineNum,
					Err:  fmt.Errorf("field %d: %w", i+1, err),
				}
			}

			vals[i] = v
		}

		joints := make([]KeyPoint, jointCount)

		for j := 0; j < jointCount; j++ {
			joints[j] = KeyPoint{
				X: vals[2*j],
				Y: vals[2*j+1],
			}
		}

		frame, err := NewFrame(joints, vals[2*jointCount])

		if err != nil {
			return nil, &ParseError{Line: lineNum, Err: err}
		}

		frames = append(frames, frame)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return frames, nil
}

// LoadFrames reads pose frames from the text file at the given path
func LoadFrames(path string, jointCount int) ([]Frame, error) {

	f, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	defer f.Close()

	frames, err := ReadFrames(f, jointCount)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return frames, nil
}
