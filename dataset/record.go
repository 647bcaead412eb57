// Package dataset persists labeled motion descriptor vectors as records
// for batch consumption by classifier training and inference tooling.
//
// The on disk text format is one record per line: the label first, then
// each vector value, tab delimited and newline terminated.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record is one labeled descriptor vector
type Record struct {
	// Label is the class label, such as "walk" or "stand"
	Label string
	// Vector is the flattened descriptor vector
	Vector []float64
}

// formatVector renders vector values as a tab joined string with full
// float64 round trip precision
func formatVector(vector []float64) string {

	var sb strings.Builder

	for i, v := range vector {
		if i > 0 {
			sb.WriteByte('\t')
		}

		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}

	return sb.String()
}

// parseVector parses a tab joined vector string back into values
func parseVector(s string) ([]float64, error) {

	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, "\t")
	vector := make([]float64, len(fields))

	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)

		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}

		vector[i] = v
	}

	return vector, nil
}

// ReadRecords parses all records from tab delimited text
func ReadRecords(r io.Reader) ([]Record, error) {

	var records []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if line == "" {
			continue
		}

		label, rest, _ := strings.Cut(line, "\t")
		vector, err := parseVector(rest)

		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		records = append(records, Record{
			Label:  label,
			Vector: vector,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ReadFile reads all records from the text file at the given path
func ReadFile(path string) ([]Record, error) {

	f, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	defer f.Close()

	records, err := ReadRecords(f)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}
