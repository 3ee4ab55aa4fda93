package dataset

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/mat"
)

var ErrBadShape = errors.New("value count is not a multiple of the grid area")

// GridStack is a sequence of square numeric grids loaded from a single
// results file, e.g. one policy table per policy-iteration sweep.
type GridStack struct {
	dim   int
	grids []*mat.Dense
}

// LoadGridStack reads a plain-text stream of integers separated by commas
// and/or whitespace and reshapes it into dim x dim grids in row-major order.
func LoadGridStack(path string, dim int) (*GridStack, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("grid dimension must be positive, got %d", dim)
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tokens := strings.FieldsFunc(string(bs), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	values := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("value %d (%q) in %s: %w", i, tok, path, err)
		}
		values = append(values, float64(v))
	}

	area := dim * dim
	if len(values) == 0 || len(values)%area != 0 {
		return nil, fmt.Errorf("%w: %s has %d values, want a positive multiple of %d", ErrBadShape, path, len(values), area)
	}

	grids := make([]*mat.Dense, 0, len(values)/area)
	for off := 0; off < len(values); off += area {
		grids = append(grids, mat.NewDense(dim, dim, values[off:off+area]))
	}

	return &GridStack{dim: dim, grids: grids}, nil
}

// PrependZero inserts an all-zero grid at index 0, representing the
// untrained initial policy.
func (g *GridStack) PrependZero() {
	g.grids = append([]*mat.Dense{mat.NewDense(g.dim, g.dim, nil)}, g.grids...)
}

func (g *GridStack) Len() int {
	return len(g.grids)
}

func (g *GridStack) Dim() int {
	return g.dim
}

func (g *GridStack) Grid(i int) *mat.Dense {
	return g.grids[i]
}
