package scenarios

import (
	"github.com/zeu5/rl-plot/common"
	"github.com/zeu5/rl-plot/dataset"
	"github.com/zeu5/rl-plot/render"
)

// CarRental renders the policy-iteration sweep over the car-rental MDP: one
// heatmap panel per policy table, indexed by the car counts at the two
// locations, with an all-zero panel for the initial policy.
func CarRental() *Scenario {
	return &Scenario{
		Name:   "carrental",
		Short:  "Car rental policy iteration heatmaps",
		Figure: "policy.png",
		render: func(flags *common.Flags, dataPath, outPath string) error {
			grids, err := dataset.LoadGridStack(dataPath, flags.GridSize)
			if err != nil {
				return err
			}
			grids.PrependZero()

			return render.RenderHeatmaps(grids, render.HeatmapConfig{
				TitlePrefix: "policy",
				XLabel:      "# cars at second location",
				YLabel:      "# cars at first location",
				Cols:        flags.Cols,
				MaxPanels:   flags.MaxPanels,
			}, outPath)
		},
	}
}
