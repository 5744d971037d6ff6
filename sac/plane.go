package sac

import (
	"fmt"
	"math"

	"github.com/seqsense/pcgol/mat"
)

// Plane3D is a plane normal·p = d fit by total least squares.
type Plane3D struct {
	Base[mat.Vec3]

	normal [3]float64
	d      float64
	valid  bool
}

func NewPlane3D() *Plane3D {
	return &Plane3D{Base: NewBase[mat.Vec3](3)}
}

// Normal returns unit normal vector of the plane.
func (pl *Plane3D) Normal() [3]float64 {
	return pl.normal
}

// D returns distance from the origin to the plane along the normal.
func (pl *Plane3D) D() float64 {
	return pl.d
}

func (pl *Plane3D) Valid() bool {
	return pl.valid
}

func (pl *Plane3D) Add(p mat.Vec3) error {
	set := pl.extended(p)
	if len(set) < pl.MinSamples() {
		pl.commit(set)
		pl.valid = false
		return nil
	}
	normal, d, err := fitPlane(set)
	if err != nil {
		return err
	}
	pl.commit(set)
	pl.normal, pl.d, pl.valid = normal, d, true
	return nil
}

func fitPlane(ps []mat.Vec3) ([3]float64, float64, error) {
	var c [3]float64
	for _, p := range ps {
		for i := range c {
			c[i] += float64(p[i])
		}
	}
	for i := range c {
		c[i] /= float64(len(ps))
	}

	cov := make([]float64, 9)
	for _, p := range ps {
		d := [3]float64{float64(p[0]) - c[0], float64(p[1]) - c[1], float64(p[2]) - c[2]}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				cov[3*i+j] += d[i] * d[j]
			}
		}
	}
	vals, axes, err := principalAxes(3, cov)
	if err != nil {
		return [3]float64{}, 0, err
	}
	// Points must spread on two axes to define a plane.
	if vals[1] <= epsilon*vals[2] {
		return [3]float64{}, 0, fmt.Errorf("%w: collinear points", ErrSingularFit)
	}

	var norm [3]float64
	copy(norm[:], axes[0])
	// Orient the normal to make the largest element positive.
	var iMax int
	for i := range norm {
		if math.Abs(norm[i]) > math.Abs(norm[iMax]) {
			iMax = i
		}
	}
	if norm[iMax] < 0 {
		for i := range norm {
			norm[i] = -norm[i]
		}
	}
	return norm, norm[0]*c[0] + norm[1]*c[1] + norm[2]*c[2], nil
}

// Residual returns distance between the point and the plane.
func (pl *Plane3D) Residual(p mat.Vec3) float64 {
	if !pl.valid {
		return math.Inf(1)
	}
	n := pl.normal
	return math.Abs(n[0]*float64(p[0]) + n[1]*float64(p[1]) + n[2]*float64(p[2]) - pl.d)
}

func (pl *Plane3D) IsInlier(p mat.Vec3) (bool, error) {
	return pl.isInlier(p, pl.Residual)
}

func (pl *Plane3D) Clear() {
	pl.Base.Clear()
	pl.valid = false
}

func (pl *Plane3D) Clone() *Plane3D {
	return &Plane3D{
		Base:   pl.clone(),
		normal: pl.normal,
		d:      pl.d,
		valid:  pl.valid,
	}
}

func (pl *Plane3D) String() string {
	return fmt.Sprintf("normal: [%g %g %g] d: %g", pl.normal[0], pl.normal[1], pl.normal[2], pl.d)
}
