package main

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/seqsense/ransac/geom"
	"github.com/seqsense/ransac/sac"
)

type curve interface {
	plot.Plotter
	plot.Thumbnailer
}

var (
	inlierColor  = color.RGBA{R: 30, G: 100, B: 220, A: 255}
	outlierColor = color.RGBA{R: 220, G: 50, B: 40, A: 255}
	modelColor   = color.RGBA{R: 20, G: 160, B: 60, A: 255}
)

func lineCurve(l *sac.Line2D, lo, hi geom.Vec2) curve {
	f := plotter.NewFunction(l.Y)
	f.XMin, f.XMax = lo[0], hi[0]
	f.Samples = 2
	f.Color = modelColor
	f.Width = vg.Points(1.5)
	return f
}

func circleCurve(c *sac.Circle2D) (curve, error) {
	const n = 128
	xys := make(plotter.XYs, n+1)
	for i := range xys {
		a := 2 * math.Pi * float64(i) / n
		xys[i].X = c.Center()[0] + c.Radius()*math.Cos(a)
		xys[i].Y = c.Center()[1] + c.Radius()*math.Sin(a)
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.Color = modelColor
	l.Width = vg.Points(1.5)
	return l, nil
}

// savePlot writes inliers, outliers and the model curve to the file.
// Image format is determined by the extension.
func savePlot(path, title string, obs []geom.Vec2, inliers []int, model curve) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	isIn := make([]bool, len(obs))
	for _, i := range inliers {
		isIn[i] = true
	}
	in := make(plotter.XYs, 0, len(inliers))
	out := make(plotter.XYs, 0, len(obs)-len(inliers))
	for i, v := range obs {
		xy := plotter.XY{X: v[0], Y: v[1]}
		if isIn[i] {
			in = append(in, xy)
		} else {
			out = append(out, xy)
		}
	}

	for _, s := range []struct {
		name  string
		xys   plotter.XYs
		color color.Color
		shape draw.GlyphDrawer
	}{
		{"inliers", in, inlierColor, draw.CircleGlyph{}},
		{"outliers", out, outlierColor, draw.CrossGlyph{}},
	} {
		if len(s.xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(s.xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = s.color
		sc.GlyphStyle.Shape = s.shape
		p.Add(sc)
		p.Legend.Add(s.name, sc)
	}
	p.Add(model)
	p.Legend.Add("model", model)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
