package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteRecord creates or overwrites the file at the given path with a
// single labeled record.  The file handle is released on all exit paths,
// including write failure.
func WriteRecord(path, label string, vector []float64) error {

	w, err := NewFileWriter(path)

	if err != nil {
		return err
	}

	if err := w.Append(label, vector); err != nil {
		w.Close()
		return err
	}

	return w.Close()
}

// Writer appends labeled records to an underlying output stream
type Writer struct {
	buf *bufio.Writer
	// file is the owned file handle when created with NewFileWriter,
	// nil otherwise
	file *os.File
}

// NewWriter returns a Writer that appends records to w.  The caller
// retains ownership of w; Close only flushes buffered output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		buf: bufio.NewWriter(w),
	}
}

// NewFileWriter returns a Writer that creates or truncates the file at
// the given path and owns its handle until Close
func NewFileWriter(path string) (*Writer, error) {

	f, err := os.Create(path)

	if err != nil {
		return nil, err
	}

	return &Writer{
		buf:  bufio.NewWriter(f),
		file: f,
	}, nil
}

// Append writes one labeled record.  The label must not contain the tab
// delimiter or a newline.
func (w *Writer) Append(label string, vector []float64) error {

	if strings.ContainsAny(label, "\t\n") {
		return fmt.Errorf("label %q contains a delimiter character", label)
	}

	if _, err := w.buf.WriteString(label); err != nil {
		return err
	}

	if len(vector) > 0 {
		if err := w.buf.WriteByte('\t'); err != nil {
			return err
		}

		if _, err := w.buf.WriteString(formatVector(vector)); err != nil {
			return err
		}
	}

	return w.buf.WriteByte('\n')
}

// Close flushes buffered output and releases the file handle if the
// Writer owns one
func (w *Writer) Close() error {

	flushErr := w.buf.Flush()

	if w.file != nil {
		if err := w.file.Close(); err != nil && flushErr == nil {
			flushErr = err
		}
	}

	return flushErr
}
