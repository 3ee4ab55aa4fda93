package render

import (
	"path/filepath"
	"testing"
)

func TestRenderCurveSingleSeries(t *testing.T) {
	out := filepath.Join(t.TempDir(), "episodes.png")

	err := RenderCurve([]Series{
		{Name: "sarsa", X: []float64{10, 25, 47, 80}, Y: []float64{1, 2, 3, 4}},
	}, CurveConfig{XLabel: "steps", YLabel: "episodes"}, out)
	if err != nil {
		t.Fatal(err)
	}
	decodePNG(t, out)
}

func TestRenderCurveGroupedLog2(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fig.png")

	series := []Series{
		{Name: "gradient", X: []float64{0.0078125, 0.03125, 0.125}, Y: []float64{0.9, 1.2, 1.4}},
		{Name: "greedy", X: []float64{0.0078125, 0.03125, 0.125}, Y: []float64{1.2, 1.3, 1.1}},
		{Name: "ucb", X: []float64{0.0078125, 0.03125, 0.125}, Y: []float64{1.0, 1.1, 1.5}},
	}
	err := RenderCurve(series, CurveConfig{
		XLabel:    "param",
		YLabel:    "reward",
		Log2X:     true,
		LogExpMin: -7,
		LogExpMax: 2,
	}, out)
	if err != nil {
		t.Fatal(err)
	}
	decodePNG(t, out)
}

func TestRenderCurveMismatchedSeries(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fig.png")

	err := RenderCurve([]Series{
		{Name: "bad", X: []float64{1, 2, 3}, Y: []float64{1, 2}},
	}, CurveConfig{}, out)
	if err == nil {
		t.Fatal("expected an error for mismatched x/y lengths")
	}
}

func TestRenderCurveNoSeries(t *testing.T) {
	if err := RenderCurve(nil, CurveConfig{}, filepath.Join(t.TempDir(), "fig.png")); err == nil {
		t.Fatal("expected an error for no series")
	}
}

func TestPowerOfTwoTicks(t *testing.T) {
	ticks := powerOfTwoTicks(-7, 2)(0.001, 10)
	if len(ticks) != 10 {
		t.Fatalf("expected 10 ticks, got %d", len(ticks))
	}
	if ticks[0].Label != "2^-7" {
		t.Fatalf("expected first label 2^-7, got %q", ticks[0].Label)
	}
	if ticks[0].Value != 0.0078125 {
		t.Fatalf("expected first value 2^-7, got %v", ticks[0].Value)
	}
	if ticks[9].Label != "2^2" || ticks[9].Value != 4 {
		t.Fatalf("unexpected last tick: %+v", ticks[9])
	}
}
