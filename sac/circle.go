package sac

import (
	"fmt"
	"math"

	"github.com/seqsense/ransac/geom"
)

// Circle2D is a circle fit by algebraic least squares
// (x^2 + y^2 + D*x + E*y + F = 0).
type Circle2D struct {
	Base[geom.Vec2]

	center geom.Vec2
	radius float64
	valid  bool
}

func NewCircle2D() *Circle2D {
	return &Circle2D{Base: NewBase[geom.Vec2](3)}
}

func (c *Circle2D) Center() geom.Vec2 {
	return c.center
}

func (c *Circle2D) Radius() float64 {
	return c.radius
}

func (c *Circle2D) Valid() bool {
	return c.valid
}

func (c *Circle2D) Add(p geom.Vec2) error {
	set := c.extended(p)
	if len(set) < c.MinSamples() {
		c.commit(set)
		c.valid = false
		return nil
	}
	center, radius, err := fitCircle(set)
	if err != nil {
		return err
	}
	c.commit(set)
	c.center, c.radius, c.valid = center, radius, true
	return nil
}

func fitCircle(ps []geom.Vec2) (geom.Vec2, float64, error) {
	if collinear(ps) {
		return geom.Vec2{}, 0, fmt.Errorf("%w: collinear points", ErrSingularFit)
	}
	n := len(ps)
	a := make([]float64, 0, n*3)
	b := make([]float64, 0, n)
	for _, p := range ps {
		a = append(a, p[0], p[1], 1)
		b = append(b, -p.NormSq())
	}
	x, err := leastSquares(n, 3, a, b)
	if err != nil {
		return geom.Vec2{}, 0, err
	}
	center := geom.Vec2{-x[0] / 2, -x[1] / 2}
	r2 := center.NormSq() - x[2]
	if r2 <= 0 {
		return geom.Vec2{}, 0, fmt.Errorf("%w: imaginary radius", ErrSingularFit)
	}
	return center, math.Sqrt(r2), nil
}

func collinear(ps []geom.Vec2) bool {
	var mean geom.Vec2
	for _, p := range ps {
		mean = mean.Add(p)
	}
	mean = mean.Mul(1 / float64(len(ps)))

	var sxx, sxy, syy float64
	for _, p := range ps {
		d := p.Sub(mean)
		sxx += d[0] * d[0]
		sxy += d[0] * d[1]
		syy += d[1] * d[1]
	}
	tr := sxx + syy
	return sxx*syy-sxy*sxy <= epsilon*tr*tr
}

// Residual returns distance between the point and the circumference.
func (c *Circle2D) Residual(p geom.Vec2) float64 {
	if !c.valid {
		return math.Inf(1)
	}
	return math.Abs(p.Sub(c.center).Norm() - c.radius)
}

func (c *Circle2D) IsInlier(p geom.Vec2) (bool, error) {
	return c.isInlier(p, c.Residual)
}

func (c *Circle2D) Clear() {
	c.Base.Clear()
	c.valid = false
}

func (c *Circle2D) Clone() *Circle2D {
	return &Circle2D{
		Base:   c.clone(),
		center: c.center,
		radius: c.radius,
		valid:  c.valid,
	}
}

func (c *Circle2D) String() string {
	return fmt.Sprintf("center: [%g %g] radius: %g", c.center[0], c.center[1], c.radius)
}
