package sac

import (
	"fmt"
	"math"

	"github.com/seqsense/ransac/geom"
)

// Line2D is a line y = slope*x + intercept fit by least squares.
type Line2D struct {
	Base[geom.Vec2]

	slope, intercept float64
	valid            bool
}

func NewLine2D() *Line2D {
	return &Line2D{Base: NewBase[geom.Vec2](2)}
}

func (l *Line2D) Slope() float64 {
	return l.slope
}

func (l *Line2D) Intercept() float64 {
	return l.intercept
}

// Valid returns true if the parameters are computed from the fit set.
func (l *Line2D) Valid() bool {
	return l.valid
}

// Y returns y coordinate of the line at x.
func (l *Line2D) Y(x float64) float64 {
	return l.slope*x + l.intercept
}

func (l *Line2D) Add(p geom.Vec2) error {
	set := l.extended(p)
	if len(set) < l.MinSamples() {
		l.commit(set)
		l.valid = false
		return nil
	}
	slope, intercept, err := fitLine(set)
	if err != nil {
		return err
	}
	l.commit(set)
	l.slope, l.intercept, l.valid = slope, intercept, true
	return nil
}

func fitLine(ps []geom.Vec2) (slope, intercept float64, err error) {
	var n, sx, sxx, sy, sxy float64
	for _, p := range ps {
		n++
		sx += p[0]
		sxx += p[0] * p[0]
		sy += p[1]
		sxy += p[0] * p[1]
	}
	// Determinant of the normal equations is zero if all x are same.
	if det := n*sxx - sx*sx; det <= epsilon*n*sxx {
		return 0, 0, fmt.Errorf("%w: vertical line at x=%g", ErrSingularFit, sx/n)
	}
	x, err := solveSym(2,
		[]float64{
			n, sx,
			sx, sxx,
		},
		[]float64{sy, sxy},
	)
	if err != nil {
		return 0, 0, err
	}
	return x[1], x[0], nil
}

// Residual returns perpendicular distance between the point and the line.
func (l *Line2D) Residual(p geom.Vec2) float64 {
	if !l.valid {
		return math.Inf(1)
	}
	return math.Abs(l.slope*p[0]-p[1]+l.intercept) / math.Sqrt(l.slope*l.slope+1)
}

func (l *Line2D) IsInlier(p geom.Vec2) (bool, error) {
	return l.isInlier(p, l.Residual)
}

func (l *Line2D) Clear() {
	l.Base.Clear()
	l.valid = false
}

func (l *Line2D) Clone() *Line2D {
	return &Line2D{
		Base:      l.clone(),
		slope:     l.slope,
		intercept: l.intercept,
		valid:     l.valid,
	}
}

func (l *Line2D) String() string {
	return fmt.Sprintf("slope: %g intercept: %g", l.slope, l.intercept)
}
