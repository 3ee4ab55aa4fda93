package scenarios

import (
	"github.com/zeu5/rl-plot/common"
	"github.com/zeu5/rl-plot/dataset"
	"github.com/zeu5/rl-plot/render"
)

// Windy renders the SARSA windy-gridworld learning curve: episodes completed
// against cumulative time steps.
func Windy() *Scenario {
	return &Scenario{
		Name:   "windy",
		Short:  "Windy gridworld SARSA learning curve",
		Figure: "episodes.png",
		render: func(flags *common.Flags, dataPath, outPath string) error {
			table, err := dataset.LoadTable(dataPath)
			if err != nil {
				return err
			}
			steps, err := table.Floats("steps")
			if err != nil {
				return err
			}
			episodes, err := table.Floats("episodes")
			if err != nil {
				return err
			}

			return render.RenderCurve([]render.Series{
				{Name: "sarsa", X: steps, Y: episodes},
			}, render.CurveConfig{
				XLabel: "steps",
				YLabel: "episodes",
			}, outPath)
		},
	}
}
