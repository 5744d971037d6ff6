package geom

import (
	"math"
)

type Vec2 [2]float64

func NewVec2(x, y float64) Vec2 {
	return Vec2{x, y}
}

func (v Vec2) X() float64 {
	return v[0]
}

func (v Vec2) Y() float64 {
	return v[1]
}

func (v Vec2) NormSq() float64 {
	return v[0]*v[0] + v[1]*v[1]
}

func (v Vec2) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

func (v Vec2) Mul(a float64) Vec2 {
	return Vec2{v[0] * a, v[1] * a}
}

func (v Vec2) Sub(a Vec2) Vec2 {
	return Vec2{v[0] - a[0], v[1] - a[1]}
}

func (v Vec2) Add(a Vec2) Vec2 {
	return Vec2{v[0] + a[0], v[1] + a[1]}
}

func (v Vec2) Dot(a Vec2) float64 {
	return v[0]*a[0] + v[1]*a[1]
}

// Cross returns z element of the cross product of the two vectors.
func (v Vec2) Cross(a Vec2) float64 {
	return v[0]*a[1] - v[1]*a[0]
}

func (v Vec2) Equal(a Vec2) bool {
	return v == a
}

// MinMax returns the bounding box of the given points.
func MinMax(vs []Vec2) (min, max Vec2, ok bool) {
	if len(vs) == 0 {
		return Vec2{}, Vec2{}, false
	}
	min = Vec2{math.MaxFloat64, math.MaxFloat64}
	max = Vec2{-math.MaxFloat64, -math.MaxFloat64}
	for _, v := range vs {
		for i := range v {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return min, max, true
}
