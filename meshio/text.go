// Package meshio reads and writes triangle sets: the plain-text input
// format (a count followed by nine coordinates per triangle) and STL
// meshes.
package meshio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/akmonengine/triangles/shape"
)

var (
	// ErrCount is returned when the leading triangle count is missing or negative.
	ErrCount = errors.New("meshio: invalid triangle count")
	// ErrTruncated is returned when the input ends before every declared
	// triangle has its nine coordinates.
	ErrTruncated = errors.New("meshio: unexpected end of input")
	// ErrToken is returned for a token that is not a number.
	ErrToken = errors.New("meshio: malformed number")
)

// ReadText reads a count N followed by N records of nine whitespace
// separated coordinates "x1 y1 z1 x2 y2 z2 x3 y3 z3". Triangles get the
// IDs 0..N-1 in read order. Anything after the last record is ignored.
func ReadText(r io.Reader) ([]shape.Triangle, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read count: %w", err)
		}
		return nil, ErrCount
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: %q", ErrCount, sc.Text())
	}

	triangles := make([]shape.Triangle, 0, n)
	var c [9]float64
	for id := 0; id < n; id++ {
		for k := range c {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, fmt.Errorf("read triangle %d: %w", id, err)
				}
				return nil, fmt.Errorf("%w: triangle %d of %d has %d coordinates", ErrTruncated, id, n, k)
			}
			c[k], err = strconv.ParseFloat(sc.Text(), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: triangle %d: %q", ErrToken, id, sc.Text())
			}
		}
		triangles = append(triangles, shape.FromCoords(id, c[0], c[1], c[2], c[3], c[4], c[5], c[6], c[7], c[8]))
	}

	return triangles, nil
}

// WriteIDs prints one ID per line.
func WriteIDs(w io.Writer, ids []int) error {
	bw := bufio.NewWriter(w)
	for _, id := range ids {
		if _, err := fmt.Fprintln(bw, id); err != nil {
			return err
		}
	}
	return bw.Flush()
}
