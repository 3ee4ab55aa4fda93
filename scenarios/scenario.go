package scenarios

import (
	"path/filepath"

	"github.com/zeu5/rl-plot/common"
	"github.com/zeu5/rl-plot/util"
)

// Scenario ties one experiment's result file to the figure rendered from it.
type Scenario struct {
	Name   string
	Short  string
	Figure string

	render func(*common.Flags, string, string) error
}

// DataPath resolves the input file: the explicit flag if set, otherwise
// <data-root>/<name>/data.csv.
func (s *Scenario) DataPath(flags *common.Flags) string {
	if flags.DataPath != "" {
		return flags.DataPath
	}
	return filepath.Join(flags.DataRoot, s.Name, "data.csv")
}

// OutPath resolves the output figure: the explicit flag if set, otherwise
// alongside the input under <data-root>/<name>/.
func (s *Scenario) OutPath(flags *common.Flags) string {
	if flags.OutPath != "" {
		return flags.OutPath
	}
	return filepath.Join(flags.DataRoot, s.Name, s.Figure)
}

// Render loads the scenario's result file and writes its figure.
func (s *Scenario) Render(flags *common.Flags) error {
	out := s.OutPath(flags)
	if err := util.EnsureDir(out); err != nil {
		return err
	}
	return s.render(flags, s.DataPath(flags), out)
}

// All returns every known scenario.
func All() []*Scenario {
	return []*Scenario{
		CarRental(),
		Windy(),
		Bandit(),
	}
}
