package sac

// Pool is a set of observations available for sampling.
// Drawn observations are swapped to the tail and come back on Restore.
type Pool[D any] struct {
	obs []D
	n   int
}

// NewPool creates a pool holding a copy of obs.
func NewPool[D any](obs []D) *Pool[D] {
	return &Pool[D]{
		obs: append([]D(nil), obs...),
		n:   len(obs),
	}
}

// Len returns the number of observations remaining in the pool.
func (p *Pool[D]) Len() int {
	return p.n
}

// Remaining returns the observations remaining in the pool.
// Returned slice is valid until the next Draw or Restore.
func (p *Pool[D]) Remaining() []D {
	return p.obs[:p.n]
}

// Draw removes a uniformly random observation from the pool.
func (p *Pool[D]) Draw(s Sampler) (D, error) {
	d, i, err := RandomElement(s, p.Remaining())
	if err != nil {
		return d, err
	}
	p.n--
	p.obs[i], p.obs[p.n] = p.obs[p.n], p.obs[i]
	return d, nil
}

// Drawn returns the observations removed since the last Restore.
func (p *Pool[D]) Drawn() []D {
	return p.obs[p.n:]
}

// Restore puts all drawn observations back.
func (p *Pool[D]) Restore() {
	p.n = len(p.obs)
}

// All returns every observation including drawn ones.
func (p *Pool[D]) All() []D {
	return p.obs
}
