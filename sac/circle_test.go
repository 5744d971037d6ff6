package sac

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/seqsense/ransac/geom"
)

func circlePoints(center geom.Vec2, r float64, n int) []geom.Vec2 {
	out := make([]geom.Vec2, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = center.Add(geom.Vec2{r * math.Cos(a), r * math.Sin(a)})
	}
	return out
}

func TestCircle2D(t *testing.T) {
	for name, tt := range map[string]struct {
		points []geom.Vec2
	}{
		"MinimalSet": {points: []geom.Vec2{{3, -1}, {1, 1}, {-1, -1}}},
		"Overdetermined": {points: circlePoints(geom.Vec2{1, -1}, 2, 12)},
	} {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := NewCircle2D()
			for i, p := range tt.points {
				if err := c.Add(p); err != nil {
					t.Fatal(err)
				}
				if valid := i >= 2; c.Valid() != valid {
					t.Fatalf("Valid must be %v after %d points", valid, i+1)
				}
			}
			opt := cmpopts.EquateApprox(0, 1e-9)
			if diff := cmp.Diff(geom.Vec2{1, -1}, c.Center(), opt); diff != "" {
				t.Errorf("Center differs (-expected +actual):\n%s", diff)
			}
			if r := c.Radius(); math.Abs(r-2) > 1e-9 {
				t.Errorf("Expected radius 2, got %g", r)
			}
			if r := c.Residual(geom.Vec2{1, 1}); r > 1e-9 {
				t.Errorf("Residual of the point on the circle must be 0, got %g", r)
			}
			if r := c.Residual(geom.Vec2{1, -1}); math.Abs(r-2) > 1e-9 {
				t.Errorf("Residual of the center must be the radius, got %g", r)
			}
			if r := c.Residual(geom.Vec2{1, 3}); math.Abs(r-2) > 1e-9 {
				t.Errorf("Expected residual 2, got %g", r)
			}
		})
	}
}

func TestCircle2D_Singular(t *testing.T) {
	for name, points := range map[string][]geom.Vec2{
		"Collinear": {{0, 0}, {1, 1}, {2, 2}},
		"SamePoint": {{1, 1}, {1, 1}, {1, 1}},
	} {
		points := points
		t.Run(name, func(t *testing.T) {
			c := NewCircle2D()
			if err := c.Add(points[0]); err != nil {
				t.Fatal(err)
			}
			if err := c.Add(points[1]); err != nil {
				t.Fatal(err)
			}
			if err := c.Add(points[2]); !errors.Is(err, ErrSingularFit) {
				t.Fatalf("Expected ErrSingularFit, got %v", err)
			}
			if n := c.Inliers(); n != 2 {
				t.Errorf("Inliers must be unchanged on error, got %d", n)
			}
		})
	}
}
