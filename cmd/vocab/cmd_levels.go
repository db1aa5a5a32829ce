package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kapu/vocab-sampler-go/internal/adapter"
	"github.com/kapu/vocab-sampler-go/internal/app"
)

func newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Show how many dataset entries carry each level tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			total, counts, err := app.LevelDistribution(cfg.Dataset.Path, logger)
			if err != nil {
				return err
			}

			formatter := adapter.NewReportFormatter()
			// The table belongs on stdout; logs stay on stderr.
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLevelDistribution(cfg.Dataset.Path, total, counts))
			return nil
		},
	}
}
