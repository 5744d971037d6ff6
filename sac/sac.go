package sac

import (
	"errors"
	"fmt"
)

// Observer is notified each time a better model is found.
// The model passed to Improved is a copy owned by the observer.
type Observer[M any] interface {
	Improved(iteration int, m M)
}

type ObserverFunc[M any] func(iteration int, m M)

func (f ObserverFunc[M]) Improved(iteration int, m M) {
	f(iteration, m)
}

// SAC searches the model best explaining the observations by random sample consensus.
type SAC[D any, M Model[D, M]] struct {
	Sampler  Sampler
	Model    M
	Observer Observer[M]

	// VerifyFitSet counts the sampled observations as inliers only if they
	// pass the inlier test. By default, all sampled observations are counted.
	VerifyFitSet bool
	// SkipDegenerate discards the candidate on ErrSingularFit and continues
	// with the next iteration instead of aborting.
	SkipDegenerate bool

	best  M
	found bool
}

// New creates SAC. Threshold of m must be set.
func New[D any, M Model[D, M]](s Sampler, m M) *SAC[D, M] {
	return &SAC[D, M]{Sampler: s, Model: m}
}

// Compute runs n iterations over the pool and returns true if a model is found.
// Pool is restored and Model is cleared on return.
func (s *SAC[D, M]) Compute(pool *Pool[D], n int) (bool, error) {
	if n < 0 {
		return false, fmt.Errorf("sac: number of iterations must be >=0, got %d", n)
	}
	var best M
	bestInliers := Unset
	s.best, s.found = best, false

	s.Model.Clear()
	defer func() {
		pool.Restore()
		s.Model.Clear()
	}()

	num := s.Model.MinSamples()
	for i := 0; i < n; i++ {
		if err := s.sample(pool, num); err != nil {
			if s.SkipDegenerate && errors.Is(err, ErrSingularFit) {
				pool.Restore()
				s.Model.Clear()
				continue
			}
			return false, err
		}
		inliers, err := s.score(pool)
		if err != nil {
			return false, err
		}
		s.Model.SetInliers(inliers)

		if inliers > bestInliers {
			best = s.Model.Clone()
			bestInliers = inliers
			if s.Observer != nil {
				s.Observer.Improved(i, best.Clone())
			}
		}
		pool.Restore()
		s.Model.Clear()
	}
	if bestInliers == Unset {
		return false, nil
	}
	s.best, s.found = best, true
	return true, nil
}

// Best returns the model found by the last Compute.
func (s *SAC[D, M]) Best() (M, bool) {
	return s.best, s.found
}

func (s *SAC[D, M]) sample(pool *Pool[D], num int) error {
	if pool.Len() < num {
		return fmt.Errorf("%w: %d observations, model requires %d",
			ErrInsufficientSamples, pool.Len(), num,
		)
	}
	for j := 0; j < num; j++ {
		d, err := pool.Draw(s.Sampler)
		if err != nil {
			return err
		}
		if err := s.Model.Add(d); err != nil {
			return err
		}
	}
	return nil
}

func (s *SAC[D, M]) score(pool *Pool[D]) (int, error) {
	n := s.Model.Inliers()
	if s.VerifyFitSet {
		n = 0
		for _, d := range pool.Drawn() {
			ok, err := s.Model.IsInlier(d)
			if err != nil {
				return 0, err
			}
			if ok {
				n++
			}
		}
	}
	for _, d := range pool.Remaining() {
		ok, err := s.Model.IsInlier(d)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}
