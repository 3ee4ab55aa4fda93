package scenarios

import (
	"github.com/zeu5/rl-plot/common"
	"github.com/zeu5/rl-plot/dataset"
	"github.com/zeu5/rl-plot/render"
)

// Bandit renders the ten-armed testbed parameter study: average reward
// against each algorithm's parameter, one colored line per algorithm, on a
// log-2 horizontal axis.
func Bandit() *Scenario {
	return &Scenario{
		Name:   "bandit",
		Short:  "Ten-armed testbed parameter study",
		Figure: "fig.png",
		render: func(flags *common.Flags, dataPath, outPath string) error {
			table, err := dataset.LoadTable(dataPath)
			if err != nil {
				return err
			}
			groups, err := table.GroupBy("algo")
			if err != nil {
				return err
			}

			series := make([]render.Series, 0, len(groups))
			for _, g := range groups {
				params, err := g.Table.Floats("param")
				if err != nil {
					return err
				}
				rewards, err := g.Table.Floats("reward")
				if err != nil {
					return err
				}
				series = append(series, render.Series{Name: g.Key, X: params, Y: rewards})
			}

			return render.RenderCurve(series, render.CurveConfig{
				XLabel:    "param",
				YLabel:    "reward",
				Log2X:     true,
				LogExpMin: -7,
				LogExpMax: 2,
			}, outPath)
		},
	}
}
