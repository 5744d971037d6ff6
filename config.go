package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	modelLine2D   = "line2d"
	modelCircle2D = "circle2d"
	modelPlane3D  = "plane3d"
)

type config struct {
	Model          string  `yaml:"model"`
	Input          string  `yaml:"input"`
	Threshold      float64 `yaml:"threshold"`
	MaxIterations  int     `yaml:"max_iterations"`
	Seed           int64   `yaml:"seed"`
	VerifyFitSet   bool    `yaml:"verify_fit_set"`
	SkipDegenerate bool    `yaml:"skip_degenerate"`
	Plot           string  `yaml:"plot"`
}

func defaultConfig() *config {
	return &config{
		Model:         modelLine2D,
		Input:         "line2d.txt",
		Threshold:     0.7,
		MaxIterations: 100,
		Seed:          -1,
	}
}

func (c *config) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Model, "model", c.Model, "model to fit ("+modelLine2D+", "+modelCircle2D+", "+modelPlane3D+")")
	fs.StringVar(&c.Input, "input", c.Input, "input file (.txt or .pcd, optionally .gz, .zst or .lz4 compressed)")
	fs.Float64Var(&c.Threshold, "threshold", c.Threshold, "inlier distance threshold")
	fs.IntVar(&c.MaxIterations, "iterations", c.MaxIterations, "number of iterations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (negative to seed by the current time; the chosen seed is printed)")
	fs.BoolVar(&c.VerifyFitSet, "verify-fit-set", c.VerifyFitSet, "count sampled points only if they pass the inlier test")
	fs.BoolVar(&c.SkipDegenerate, "skip-degenerate", c.SkipDegenerate, "skip degenerate samples instead of aborting")
	fs.StringVar(&c.Plot, "plot", c.Plot, "write a plot of 2D fit result to the file (.png, .svg or .pdf)")
}

// load overwrites the fields given in the YAML file.
func (c *config) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (c *config) validate() error {
	switch c.Model {
	case modelLine2D, modelCircle2D, modelPlane3D:
	default:
		return fmt.Errorf("unknown model %q", c.Model)
	}
	if c.Input == "" {
		return errors.New("input must be specified")
	}
	if c.Threshold < 0 {
		return fmt.Errorf("threshold must be >=0, got %g", c.Threshold)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("iterations must be >=0, got %d", c.MaxIterations)
	}
	if c.Plot != "" && c.Model == modelPlane3D {
		return errors.New("plot is not supported on " + modelPlane3D)
	}
	return nil
}

func parseArgs(args []string, output io.Writer) (*config, error) {
	c := defaultConfig()
	fs := flag.NewFlagSet("ransac", flag.ContinueOnError)
	fs.SetOutput(output)
	configPath := fs.String("config", "", "YAML configuration file")
	c.bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *configPath != "" {
		if err := c.load(*configPath); err != nil {
			return nil, err
		}
		// Flags given explicitly take precedence over the file.
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	switch fs.NArg() {
	case 0:
	case 1:
		c.Input = fs.Arg(0)
	default:
		return nil, errors.New("too many arguments")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}
