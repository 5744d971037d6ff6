package pcd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seqsense/ransac/geom"
)

// ReadVec2 reads 2D points formatted as the number of points
// followed by one "x y" pair per line.
// Empty lines and lines starting with # are ignored.
func ReadVec2(r io.Reader) ([]geom.Vec2, error) {
	s := bufio.NewScanner(r)

	var out []geom.Vec2
	n := -1
	var lineno int
	for s.Scan() {
		lineno++
		args := strings.Fields(s.Text())
		if len(args) == 0 || strings.HasPrefix(args[0], "#") {
			continue
		}
		if n < 0 {
			if len(args) != 1 {
				return nil, fmt.Errorf("line %d: first field must be number of points", lineno)
			}
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			if n < 0 {
				return nil, fmt.Errorf("line %d: number of points must be >=0", lineno)
			}
			out = make([]geom.Vec2, 0, min(n, 1<<16))
			continue
		}
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: point must have 2 values, has %d", lineno, len(args))
		}
		if len(out) >= n {
			return nil, fmt.Errorf("line %d: more than %d points", lineno, n)
		}
		var v geom.Vec2
		for i := range v {
			f, err := strconv.ParseFloat(args[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			v[i] = f
		}
		out = append(out, v)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.New("number of points not found")
	}
	if len(out) != n {
		return nil, fmt.Errorf("expected %d points, got %d", n, len(out))
	}
	return out, nil
}

// WriteVec2 writes 2D points in the format read by ReadVec2.
func WriteVec2(w io.Writer, vs []geom.Vec2) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(vs)); err != nil {
		return err
	}
	for _, v := range vs {
		if _, err := fmt.Fprintf(bw, "%s %s\n",
			strconv.FormatFloat(v[0], 'g', -1, 64),
			strconv.FormatFloat(v[1], 'g', -1, 64),
		); err != nil {
			return err
		}
	}
	return bw.Flush()
}
