package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zeu5/rl-plot/common"
)

var (
	flags        *common.Flags = common.DefaultFlags()
	dataRoot     string
	dataPath     string
	outPath      string
	gridSize     int
	cols         int
	maxPanels    int
	parallelism  int
	debug        bool
	recordConfig bool
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&dataRoot, "data-root", flags.DataRoot, "Root directory holding <scenario>/data.csv")
	cmd.PersistentFlags().StringVar(&dataPath, "data", flags.DataPath, "Input results file, overrides the per-scenario default")
	cmd.PersistentFlags().StringVar(&outPath, "out", flags.OutPath, "Output figure path, overrides the per-scenario default")
	cmd.PersistentFlags().IntVar(&gridSize, "grid-size", flags.GridSize, "Dimension of each square grid in grid-valued results")
	cmd.PersistentFlags().IntVar(&cols, "cols", flags.Cols, "Heatmap panels per row")
	cmd.PersistentFlags().IntVar(&maxPanels, "max-panels", flags.MaxPanels, "Cap on heatmap panels, 0 renders all")
	cmd.PersistentFlags().IntVar(&parallelism, "parallelism", flags.Parallelism, "Number of parallel renders for the all command")
	cmd.PersistentFlags().BoolVarP(&debug, "verbose", "v", flags.Debug, "Turn on debug logging")
	cmd.PersistentFlags().BoolVar(&recordConfig, "record-config", flags.RecordConfig, "Record the effective config as JSON under the data root")
}

func UpdateFlags() {
	flags.DataRoot = dataRoot
	flags.DataPath = dataPath
	flags.OutPath = outPath
	flags.GridSize = gridSize
	flags.Cols = cols
	flags.MaxPanels = maxPanels
	flags.Parallelism = parallelism
	flags.Debug = debug
	flags.RecordConfig = recordConfig
}
