package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/ransac/geom"
	"github.com/seqsense/ransac/pcd"
	"github.com/seqsense/ransac/sac"
)

func main() {
	c, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	res, err := run(c, log.Default())
	if err != nil {
		log.Fatal(err)
	}
	res.print(os.Stdout)
}

type fitModel[D, M any] interface {
	sac.Model[D, M]
	SetThreshold(th float64)
	String() string
}

type result struct {
	Model     fmt.Stringer
	Found     bool
	Inliers   int
	Consensus []int
	Points    int
	Seed      int64
	Digest    uint64
}

func (r *result) print(w io.Writer) {
	fmt.Fprintf(w, "input: %d points (xxhash %016x), seed: %d\n", r.Points, r.Digest, r.Seed)
	if !r.Found {
		fmt.Fprintln(w, "no model found")
		return
	}
	fmt.Fprintf(w, "best model: %v ninliers: %d consensus: %d/%d\n",
		r.Model, r.Inliers, len(r.Consensus), r.Points,
	)
}

func run(c *config, logger *log.Logger) (*result, error) {
	if c.Seed < 0 {
		c.Seed = time.Now().UnixNano()
	}
	logger.Printf("model: %s, threshold: %g, iterations: %d, seed: %d",
		c.Model, c.Threshold, c.MaxIterations, c.Seed,
	)

	f, err := pcd.Open(c.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch c.Model {
	case modelLine2D, modelCircle2D:
		pts, err := readVec2(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Input, err)
		}
		res := &result{Points: len(pts), Seed: c.Seed}
		if res.Digest, err = digest(f); err != nil {
			return nil, err
		}
		if c.Model == modelLine2D {
			best, err := fit[geom.Vec2](c, pts, sac.NewLine2D(), res, logger)
			if err != nil || !res.Found || c.Plot == "" {
				return res, err
			}
			lo, hi, _ := geom.MinMax(pts)
			return res, savePlot(c.Plot, "RANSAC "+c.Model, pts, res.Consensus, lineCurve(best, lo, hi))
		}
		best, err := fit[geom.Vec2](c, pts, sac.NewCircle2D(), res, logger)
		if err != nil || !res.Found || c.Plot == "" {
			return res, err
		}
		circle, err := circleCurve(best)
		if err != nil {
			return nil, err
		}
		return res, savePlot(c.Plot, "RANSAC "+c.Model, pts, res.Consensus, circle)

	case modelPlane3D:
		pts, err := pcd.ReadVec3(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Input, err)
		}
		res := &result{Points: len(pts), Seed: c.Seed}
		if res.Digest, err = digest(f); err != nil {
			return nil, err
		}
		_, err = fit[mat.Vec3](c, pts, sac.NewPlane3D(), res, logger)
		return res, err
	}
	return nil, fmt.Errorf("unknown model %q", c.Model)
}

func fit[D any, M fitModel[D, M]](c *config, obs []D, m M, res *result, logger *log.Logger) (M, error) {
	m.SetThreshold(c.Threshold)
	s := sac.New[D](sac.NewRandomSampler(c.Seed), m)
	s.VerifyFitSet = c.VerifyFitSet
	s.SkipDegenerate = c.SkipDegenerate
	s.Observer = sac.ObserverFunc[M](func(i int, best M) {
		logger.Printf("iteration %d: %v ninliers: %d", i, best, best.Inliers())
	})

	found, err := s.Compute(sac.NewPool(obs), c.MaxIterations)
	if err != nil {
		return m, err
	}
	best, _ := s.Best()
	if !found {
		return best, nil
	}
	consensus, err := sac.Consensus(best, obs)
	if err != nil {
		return best, err
	}
	res.Model, res.Found, res.Inliers, res.Consensus = best, true, best.Inliers(), consensus
	return best, nil
}

// readVec2 reads 2D points from text or from x and y of PCD.
func readVec2(f *pcd.File) ([]geom.Vec2, error) {
	if f.Format() != ".pcd" {
		return pcd.ReadVec2(f)
	}
	vs, err := pcd.ReadVec3(f)
	if err != nil {
		return nil, err
	}
	out := make([]geom.Vec2, len(vs))
	for i, v := range vs {
		out[i] = geom.Vec2{float64(v[0]), float64(v[1])}
	}
	return out, nil
}

// digest returns the hash of the whole input.
func digest(f *pcd.File) (uint64, error) {
	if _, err := io.Copy(io.Discard, f); err != nil {
		return 0, err
	}
	return f.Sum64(), nil
}
