package render

import (
	"fmt"
	"math"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/zeu5/rl-plot/dataset"
)

// HeatmapConfig describes a tiled figure of heatmap panels.
type HeatmapConfig struct {
	TitlePrefix string
	XLabel      string
	YLabel      string
	// Panels per row. Rows grow to fit every panel.
	Cols int
	// Cap on rendered panels, 0 for no cap. Trailing panels beyond the
	// cap are dropped with a warning.
	MaxPanels int
	PanelSize vg.Length
}

// denseGrid adapts a mat.Dense to plotter.GridXYZ. Row index maps to Y so
// the first grid coordinate increases upward.
type denseGrid struct {
	m *mat.Dense
}

func (g denseGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g denseGrid) Z(c, r int) float64 {
	return g.m.At(r, c)
}

func (g denseGrid) X(c int) float64 {
	return float64(c)
}

func (g denseGrid) Y(r int) float64 {
	return float64(r)
}

// RenderHeatmaps draws one color-mapped panel per grid and writes the tiled
// figure to a PNG at outPath. All panels share one value range so colors are
// comparable across panels.
func RenderHeatmaps(grids *dataset.GridStack, cfg HeatmapConfig, outPath string) error {
	n := grids.Len()
	if n == 0 {
		return fmt.Errorf("no grids to render")
	}
	if cfg.MaxPanels > 0 && n > cfg.MaxPanels {
		log.Warnf("Figure has %d panel slots, dropping %d trailing grids", cfg.MaxPanels, n-cfg.MaxPanels)
		n = cfg.MaxPanels
	}

	cols := cfg.Cols
	if cols <= 0 {
		cols = 3
	}
	if cols > n {
		cols = n
	}
	rows := (n + cols - 1) / cols

	panelSize := cfg.PanelSize
	if panelSize == 0 {
		panelSize = 5 * vg.Inch
	}

	pal, err := brewer.GetPalette(brewer.TypeSequential, "YlGnBu", 9)
	if err != nil {
		return err
	}

	zmin, zmax := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		zmin = math.Min(zmin, mat.Min(grids.Grid(i)))
		zmax = math.Max(zmax, mat.Max(grids.Grid(i)))
	}
	if zmin == zmax {
		zmax = zmin + 1
	}

	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, cols)
	}
	for i := 0; i < n; i++ {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("%s %d", cfg.TitlePrefix, i)
		p.X.Label.Text = cfg.XLabel
		p.Y.Label.Text = cfg.YLabel
		p.X.Tick.Marker = integerTicks()
		p.Y.Tick.Marker = integerTicks()

		hm := plotter.NewHeatMap(denseGrid{grids.Grid(i)}, pal)
		hm.Min = zmin
		hm.Max = zmax
		p.Add(hm)

		plots[i/cols][i%cols] = p
	}

	img := vgimg.New(vg.Length(cols)*panelSize, vg.Length(rows)*panelSize)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: 5 * vg.Millimeter,
		PadY: 5 * vg.Millimeter,
	}

	canvases := plot.Align(plots, tiles, dc)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}

	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer file.Close()

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(file)
	return err
}

// integerTicks keeps only the whole-valued default ticks, labelled as
// integers. Grid coordinates are discrete state indices.
func integerTicks() plot.TickerFunc {
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		var ticks []plot.Tick
		for _, t := range (plot.DefaultTicks{}).Ticks(min, max) {
			if t.Value == math.Trunc(t.Value) {
				t.Label = strconv.FormatFloat(t.Value, 'f', -1, 64)
				ticks = append(ticks, t)
			}
		}
		return ticks
	})
}
