package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Table is a row-oriented results file with named columns.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// Group is the subset of a table sharing one value of a categorical column.
type Group struct {
	Key   string
	Table *Table
}

// LoadTable reads a CSV file whose first row names the columns.
func LoadTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s has no header row", path)
	}

	return newTable(records[0], records[1:]), nil
}

func newTable(columns []string, rows [][]string) *Table {
	index := make(map[string]int)
	for i, c := range columns {
		index[c] = i
	}
	return &Table{columns: columns, index: index, rows: rows}
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Columns() []string {
	return t.columns
}

func (t *Table) Strings(col string) ([]string, error) {
	i, ok := t.index[col]
	if !ok {
		return nil, fmt.Errorf("no column %q, have %v", col, t.columns)
	}
	out := make([]string, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}
	return out, nil
}

func (t *Table) Floats(col string) ([]float64, error) {
	raw, err := t.Strings(col)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(raw))
	for r, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", col, r, err)
		}
		out[r] = v
	}
	return out, nil
}

// GroupBy splits the table on the distinct values of a categorical column.
// Groups are ordered by sorted key so output is stable across runs.
func (t *Table) GroupBy(col string) ([]Group, error) {
	i, ok := t.index[col]
	if !ok {
		return nil, fmt.Errorf("no column %q, have %v", col, t.columns)
	}

	byKey := make(map[string][][]string)
	for _, row := range t.rows {
		byKey[row[i]] = append(byKey[row[i]], row)
	}

	keys := maps.Keys(byKey)
	slices.Sort(keys)

	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, Group{Key: k, Table: newTable(t.columns, byKey[k])})
	}
	return groups, nil
}
