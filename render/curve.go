package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Series is one named line on a curve figure.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// CurveConfig describes a line-plot figure.
type CurveConfig struct {
	Title  string
	XLabel string
	YLabel string
	// Log2X switches the horizontal axis to a log scale with power-of-two
	// tick labels spanning the exponent range [LogExpMin, LogExpMax].
	Log2X     bool
	LogExpMin int
	LogExpMax int
}

// RenderCurve draws one line per series on shared axes and writes the figure
// to a PNG at outPath. Multiple series get distinct colors and a legend.
func RenderCurve(series []Series, cfg CurveConfig, outPath string) error {
	if len(series) == 0 {
		return fmt.Errorf("no series to render")
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.Add(plotter.NewGrid())

	if cfg.Log2X {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = powerOfTwoTicks(cfg.LogExpMin, cfg.LogExpMax)
	}

	colors, err := seriesColors(len(series))
	if err != nil {
		return err
	}

	for i, s := range series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("series %q: %d x values but %d y values", s.Name, len(s.X), len(s.Y))
		}
		pts := make(plotter.XYs, len(s.X))
		for j := range pts {
			pts[j].X = s.X[j]
			pts[j].Y = s.Y[j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = colors[i]
		line.Width = vg.Points(1.5)
		p.Add(line)
		if len(series) > 1 {
			p.Legend.Add(s.Name, line)
		}
	}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = 1 * vg.Millimeter

	return p.Save(8*vg.Inch, 5*vg.Inch, outPath)
}

func seriesColors(n int) ([]color.Color, error) {
	if n == 1 {
		return []color.Color{color.Black}, nil
	}
	// Brewer qualitative palettes carry at least 3 colors.
	size := n
	if size < 3 {
		size = 3
	}
	pal, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", size)
	if err != nil {
		return nil, err
	}
	return pal.Colors()[:n], nil
}

func powerOfTwoTicks(lo, hi int) plot.TickerFunc {
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		ticks := make([]plot.Tick, 0, hi-lo+1)
		for e := lo; e <= hi; e++ {
			ticks = append(ticks, plot.Tick{
				Value: math.Ldexp(1, e),
				Label: fmt.Sprintf("2^%d", e),
			})
		}
		return ticks
	})
}
