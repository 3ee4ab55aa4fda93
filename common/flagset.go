package common

import (
	"path"

	"github.com/zeu5/rl-plot/util"
)

type Flags struct {
	GridFlags
	DataRoot string
	DataPath string
	OutPath  string

	Parallelism  int
	Debug        bool
	RecordConfig bool
}

type GridFlags struct {
	GridSize  int
	Cols      int
	MaxPanels int
}

func DefaultFlags() *Flags {
	return &Flags{
		GridFlags: GridFlags{
			GridSize:  20,
			Cols:      3,
			MaxPanels: 0,
		},
		DataRoot:     "results",
		DataPath:     "",
		OutPath:      "",
		Parallelism:  2,
		Debug:        false,
		RecordConfig: false,
	}
}

func (f *Flags) Record() {
	util.SaveJson(path.Join(f.DataRoot, "config.json"), f)
}
