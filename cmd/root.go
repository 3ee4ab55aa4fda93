package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rl-plot",
		Short: "Render RL experiment results as figures",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			UpdateFlags()
			if flags.Debug {
				log.SetLevel(log.DebugLevel)
			}
			if flags.RecordConfig {
				flags.Record()
			}
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		CarRentalCommand(),
		WindyCommand(),
		BanditCommand(),
		AllCommand(),
	)

	return cmd
}
