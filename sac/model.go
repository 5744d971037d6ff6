package sac

import (
	"errors"
)

// Unset is the inlier count of a model which has not been fit yet.
const Unset = -1

var (
	ErrUninitializedThreshold = errors.New("uninitialized threshold")
	ErrInsufficientSamples    = errors.New("insufficient samples")
	ErrSingularFit            = errors.New("singular fit")
)

// Model is a fittable model over observations of type D.
// M is the concrete model type returned by Clone.
type Model[D, M any] interface {
	// MinSamples returns the number of observations required to compute
	// the model parameters.
	MinSamples() int
	// Inliers returns the number of observations supporting the model,
	// or Unset if the model is not fit.
	Inliers() int
	SetInliers(n int)
	// Add appends the observation to the fit set and recomputes the
	// parameters. The model is left unchanged on error.
	Add(d D) error
	// Residual returns the distance between the observation and the model.
	Residual(d D) float64
	// IsInlier returns true if the residual is within the threshold.
	IsInlier(d D) (bool, error)
	// Clear empties the fit set. Threshold is kept.
	Clear()
	// Clone returns a deep copy of the model.
	Clone() M
}

// Base holds the fit state shared by the models.
type Base[D any] struct {
	minSamples int
	inliers    int
	threshold  float64
	set        []D
}

func NewBase[D any](minSamples int) Base[D] {
	if minSamples <= 0 {
		panic("sac: minSamples must be >0")
	}
	return Base[D]{
		minSamples: minSamples,
		inliers:    Unset,
		threshold:  -1,
	}
}

func (b *Base[D]) MinSamples() int {
	return b.minSamples
}

func (b *Base[D]) Inliers() int {
	return b.inliers
}

func (b *Base[D]) SetInliers(n int) {
	b.inliers = n
}

func (b *Base[D]) Threshold() float64 {
	return b.threshold
}

func (b *Base[D]) SetThreshold(th float64) {
	b.threshold = th
}

// FitSet returns the observations used for the fit.
// Returned slice must not be modified.
func (b *Base[D]) FitSet() []D {
	return b.set
}

func (b *Base[D]) Clear() {
	b.inliers = Unset
	b.set = b.set[:0]
}

// extended returns a fit set with d appended, without touching the current one.
func (b *Base[D]) extended(d D) []D {
	out := make([]D, len(b.set), len(b.set)+1)
	copy(out, b.set)
	return append(out, d)
}

func (b *Base[D]) commit(set []D) {
	b.set = set
	b.inliers = len(set)
}

func (b *Base[D]) clone() Base[D] {
	out := *b
	out.set = append([]D(nil), b.set...)
	return out
}

func (b *Base[D]) isInlier(d D, residual func(D) float64) (bool, error) {
	if b.threshold < 0 {
		return false, ErrUninitializedThreshold
	}
	return residual(d) <= b.threshold, nil
}

// Consensus returns indices of the observations which are inliers of the model.
func Consensus[D any, M Model[D, M]](m M, obs []D) ([]int, error) {
	out := make([]int, 0, len(obs))
	for i, d := range obs {
		ok, err := m.IsInlier(d)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, i)
		}
	}
	return out, nil
}
