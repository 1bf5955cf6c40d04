// Package xvg reads and writes plain-text 2D data in the XMGrace
// convention: whitespace- or comma-delimited numeric columns, with "@" and
// "#" prefixed lines treated as comments.
package xvg

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrNoData is returned when an input contains no parseable (x, y) pairs.
var ErrNoData = errors.New("no valid data points")

// Read parses all non-comment lines into (x, y) pairs. Commas count as
// field separators. Lines with fewer than two finite numeric fields are
// skipped rather than failing the whole input; extra columns are ignored.
// Returns ErrNoData when zero pairs result.
func Read(r io.Reader) (x, y []float64, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "@") || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) < 2 {
			continue
		}
		xv, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}
		yv, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		// ParseFloat accepts "nan" and "inf"; treat them like any other
		// unparseable line so downstream extents stay finite.
		if math.IsNaN(xv) || math.IsInf(xv, 0) || math.IsNaN(yv) || math.IsInf(yv, 0) {
			continue
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading data: %w", err)
	}
	if len(x) == 0 {
		return nil, nil, ErrNoData
	}
	return x, y, nil
}

// ReadFile reads and parses the file at path. The extension is advisory
// only; parsing is format-agnostic.
func ReadFile(path string) ([]float64, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	x, y, err := Read(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return x, y, nil
}

// Write writes (x, y) pairs as tab-separated values, one pair per line,
// no header. Values are formatted with the shortest representation that
// round-trips, so a save followed by a load reproduces the series exactly.
// X and y must be equal length.
func Write(w io.Writer, x, y []float64) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	for i := range x {
		record := []string{
			strconv.FormatFloat(x[i], 'g', -1, 64),
			strconv.FormatFloat(y[i], 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing pair %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the series to the file at path, creating or truncating
// it.
func WriteFile(path string, x, y []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, x, y); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
