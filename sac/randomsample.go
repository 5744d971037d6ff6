package sac

import (
	"fmt"
	"math/rand"
)

// Sampler draws an index from [0, n).
type Sampler interface {
	Sample(n int) (int, error)
}

type RandomSampler struct {
	rand *rand.Rand
}

func NewRandomSampler(seed int64) *RandomSampler {
	return &RandomSampler{rand: rand.New(rand.NewSource(seed))}
}

func (s *RandomSampler) Sample(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInsufficientSamples
	}
	if n < 0x8000000 {
		return int(s.rand.Int31n(int32(n))), nil
	}
	return int(s.rand.Int63n(int64(n))), nil
}

// RandomElement returns a uniformly random element and its index.
// The element is not removed from elems.
func RandomElement[T any](s Sampler, elems []T) (T, int, error) {
	var zero T
	if len(elems) == 0 {
		return zero, 0, ErrInsufficientSamples
	}
	i, err := s.Sample(len(elems))
	if err != nil {
		return zero, 0, err
	}
	if i < 0 || len(elems) <= i {
		return zero, 0, fmt.Errorf("sac: sampled index %d out of range [0, %d)", i, len(elems))
	}
	return elems[i], i, nil
}
