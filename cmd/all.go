package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/zeu5/rl-plot/scenarios"
)

func AllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Render every scenario's figure",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.DataPath != "" || flags.OutPath != "" {
				return fmt.Errorf("--data and --out apply to a single scenario, use --data-root with all")
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt) // channel for interrupts from os

			doneCh := make(chan struct{}) // channel for done signal from application

			ctx, cancel := context.WithCancel(context.Background())
			go func() { // start a go-routine
				select { // can wait on multiple channels
				case <-sigCh:
				case <-doneCh:
				}
				cancel()
			}()

			runner := scenarios.NewRunner(scenarios.All(), flags.Parallelism)
			err := runner.Run(ctx, flags)
			close(doneCh)
			return err
		},
	}
}
