package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/stsysd/eventgrapher/heatmap"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the dashboard to an SVG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			svg := heatmap.GenerateDashboardSVG(a.summary, nil)

			// "-" は標準出力
			if a.cfg.Output == "-" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), svg)
				return err
			}
			if err := os.WriteFile(a.cfg.Output, []byte(svg), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", a.cfg.Output, err)
			}
			log.Printf("Dashboard written to %s", a.cfg.Output)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "dashboard.svg", `output file ("-" for stdout)`)
	return cmd
}
