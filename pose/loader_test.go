package pose

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestReadFrames parses two frames with comments and blank lines mixed in
func TestReadFrames(t *testing.T) {

	input := "# two joint frames\n" +
		"0 1\t2 3\t10\n" +
		"\n" +
		"4 5 6 7 20\n"

	frames, err := ReadFrames(strings.NewReader(input), 2)

	if err != nil {
		t.Fatalf("ReadFrames failed: %v", err)
	}

	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}

	if frames[0].Joint(0) != (KeyPoint{X: 0, Y: 1}) ||
		frames[0].Joint(1) != (KeyPoint{X: 2, Y: 3}) {
		t.Errorf("frame 0 joints mismatch: %v", frames[0].Joints())
	}

	if frames[0].Height() != 10 {
		t.Errorf("frame 0 height mismatch: %v", frames[0].Height())
	}

	if frames[1].Joint(1) != (KeyPoint{X: 6, Y: 7}) || frames[1].Height() != 20 {
		t.Errorf("frame 1 mismatch: %v h=%v", frames[1].Joints(), frames[1].Height())
	}
}

// TestReadFramesFieldCount checks the parse error reports the offending
// line number
func TestReadFramesFieldCount(t *testing.T) {

	input := "0 1 2 3 10\n" +
		"4 5 6 20\n"

	_, err := ReadFrames(strings.NewReader(input), 2)

	var parseErr *ParseError

	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}

	if parseErr.Line != 2 {
		t.Errorf("expected error on line 2, got line %d", parseErr.Line)
	}
}

// TestReadFramesBadValue checks non numeric fields are rejected
func TestReadFramesBadValue(t *testing.T) {

	_, err := ReadFrames(strings.NewReader("0 1 2 x 10\n"), 2)

	var parseErr *ParseError

	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

// TestReadFramesBadHeight checks a non positive height is rejected with
// the line number attached
func TestReadFramesBadHeight(t *testing.T) {

	_, err := ReadFrames(strings.NewReader("0 1 2 3 0\n"), 2)

	var parseErr *ParseError

	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}

	if parseErr.Line != 1 {
		t.Errorf("expected error on line 1, got line %d", parseErr.Line)
	}
}

// TestLoadFrames reads frames back from a file on disk
func TestLoadFrames(t *testing.T) {

	path := filepath.Join(t.TempDir(), "frames.txt")

	if err := os.WriteFile(path, []byte("1 2 3 4 10\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	frames, err := LoadFrames(path, 2)

	if err != nil {
		t.Fatalf("LoadFrames failed: %v", err)
	}

	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}

	if _, err := LoadFrames(filepath.Join(t.TempDir(), "missing.txt"), 2); err == nil {
		t.Error("expected error for missing file")
	}
}
