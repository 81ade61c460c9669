package geo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrTooFewPoints is returned by [ParsePoints] when the input holds
	// fewer than two points. No edge can exist below that, so the rest of
	// the pipeline has nothing to do.
	ErrTooFewPoints = errors.New("need at least 2 points")

	// ErrMalformedPoint is returned by [ParsePoints] for lines that are not
	// an x,y,z triple of integers. The error is wrapped with the 1-based
	// line number.
	ErrMalformedPoint = errors.New("malformed point")
)

// Point is a position in 3D integer space. Small and copy-friendly; the
// forest core never sees coordinates, only indices into the point slice.
type Point struct {
	X, Y, Z int32
}

// String formats the point as "x,y,z", the same shape ParsePoints accepts.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// Dist2 returns the squared Euclidean distance between two points. Deltas
// are widened to int64 before squaring; the result is exact for axis
// deltas up to about 1.7e9, far beyond any real input.
func Dist2(a, b Point) int64 {
	dx := int64(b.X) - int64(a.X)
	dy := int64(b.Y) - int64(a.Y)
	dz := int64(b.Z) - int64(a.Z)
	return dx*dx + dy*dy + dz*dz
}

// ParsePoints reads one x,y,z triple per line. Blank lines are skipped;
// anything else that fails to parse aborts with the offending line number.
// Inputs with fewer than two points return ErrTooFewPoints.
func ParsePoints(r io.Reader) ([]Point, error) {
	var points []Point

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}

	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	return points, nil
}

// parsePoint parses a single "x,y,z" line. Field count is checked
// explicitly so errors stay precise.
func parsePoint(line string) (Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w: want 3 fields, have %d", ErrMalformedPoint, len(fields))
	}

	var coords [3]int32
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return Point{}, fmt.Errorf("%w: field %d: %v", ErrMalformedPoint, i+1, err)
		}
		coords[i] = int32(v)
	}
	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
