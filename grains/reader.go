package grains

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadSpots parses a text spot file: whitespace-separated numeric columns,
// one record per line, layout.SkipRows header lines ignored, blank lines
// skipped. The stored θ is half the 2θ column.
//
// Errors: ErrBadRecord (wrapped with the 1-based line number) for rows with
// missing columns or non-numeric fields; ErrNoSpots when no data rows
// remain after the header.
func ReadSpots(r io.Reader, layout FileLayout) ([]Spot, error) {
	maxCol := layout.TwoThetaCol
	if layout.ChiCol > maxCol {
		maxCol = layout.ChiCol
	}
	if layout.IntensityCol > maxCol {
		maxCol = layout.IntensityCol
	}

	var spots []Spot
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if line <= layout.SkipRows {
			continue
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) <= maxCol {
			return nil, fmt.Errorf("%w: line %d has %d columns, need %d",
				ErrBadRecord, line, len(fields), maxCol+1)
		}

		twoTheta, err := parseField(fields[layout.TwoThetaCol], line)
		if err != nil {
			return nil, err
		}
		chi, err := parseField(fields[layout.ChiCol], line)
		if err != nil {
			return nil, err
		}
		intensity, err := parseField(fields[layout.IntensityCol], line)
		if err != nil {
			return nil, err
		}

		spots = append(spots, Spot{Theta: twoTheta / 2, Chi: chi, Intensity: intensity})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("grains: read spots: %w", err)
	}
	if len(spots) == 0 {
		return nil, ErrNoSpots
	}

	return spots, nil
}

// parseField parses one numeric column, attaching the line number on failure.
func parseField(s string, line int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %q is not numeric", ErrBadRecord, line, s)
	}

	return v, nil
}
