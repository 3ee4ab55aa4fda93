package render

import (
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/zeu5/rl-plot/dataset"
)

func gridFixture(t *testing.T, grids, dim int) *dataset.GridStack {
	t.Helper()
	values := make([]string, grids*dim*dim)
	for i := range values {
		values[i] = strconv.Itoa(i % 5)
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(strings.Join(values, ",")), 0644); err != nil {
		t.Fatal(err)
	}
	stack, err := dataset.LoadGridStack(path, dim)
	if err != nil {
		t.Fatal(err)
	}
	return stack
}

func decodePNG(t *testing.T, path string) {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Fatal("output image is empty")
	}
}

func TestRenderHeatmaps(t *testing.T) {
	stack := gridFixture(t, 6, 8)
	stack.PrependZero()
	out := filepath.Join(t.TempDir(), "policy.png")

	err := RenderHeatmaps(stack, HeatmapConfig{
		TitlePrefix: "policy",
		XLabel:      "# cars at second location",
		YLabel:      "# cars at first location",
		Cols:        3,
	}, out)
	if err != nil {
		t.Fatal(err)
	}
	decodePNG(t, out)
}

func TestRenderHeatmapsSinglePanel(t *testing.T) {
	stack := gridFixture(t, 1, 4)
	out := filepath.Join(t.TempDir(), "policy.png")

	if err := RenderHeatmaps(stack, HeatmapConfig{TitlePrefix: "value"}, out); err != nil {
		t.Fatal(err)
	}
	decodePNG(t, out)
}

func TestRenderHeatmapsMaxPanels(t *testing.T) {
	stack := gridFixture(t, 6, 4)
	stack.PrependZero()
	out := filepath.Join(t.TempDir(), "policy.png")

	// 7 panels capped at 6, trailing panel dropped with a warning
	err := RenderHeatmaps(stack, HeatmapConfig{
		TitlePrefix: "policy",
		Cols:        3,
		MaxPanels:   6,
	}, out)
	if err != nil {
		t.Fatal(err)
	}
	decodePNG(t, out)
}

func TestRenderHeatmapsOverwrites(t *testing.T) {
	stack := gridFixture(t, 2, 4)
	out := filepath.Join(t.TempDir(), "policy.png")

	if err := RenderHeatmaps(stack, HeatmapConfig{TitlePrefix: "policy"}, out); err != nil {
		t.Fatal(err)
	}
	first, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if err := RenderHeatmaps(stack, HeatmapConfig{TitlePrefix: "policy"}, out); err != nil {
		t.Fatal(err)
	}
	second, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if second.Size() != first.Size() {
		t.Fatalf("re-render should overwrite, sizes %d then %d", first.Size(), second.Size())
	}
	decodePNG(t, out)
}

func TestRenderHeatmapsEmptyStack(t *testing.T) {
	empty := &dataset.GridStack{}
	if err := RenderHeatmaps(empty, HeatmapConfig{}, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Fatal("expected an error for an empty grid stack")
	}
}
