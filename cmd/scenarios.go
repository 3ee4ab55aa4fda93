package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zeu5/rl-plot/scenarios"
)

func CarRentalCommand() *cobra.Command {
	return scenarioCommand(scenarios.CarRental())
}

func WindyCommand() *cobra.Command {
	return scenarioCommand(scenarios.Windy())
}

func BanditCommand() *cobra.Command {
	return scenarioCommand(scenarios.Bandit())
}

func scenarioCommand(s *scenarios.Scenario) *cobra.Command {
	return &cobra.Command{
		Use:   s.Name,
		Short: s.Short,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debugf("Reading %s", s.DataPath(flags))
			if err := s.Render(flags); err != nil {
				return err
			}
			log.Infof("Wrote %s", s.OutPath(flags))
			return nil
		},
	}
}
