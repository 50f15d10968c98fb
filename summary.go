package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stsysd/eventgrapher/heatmap"
	"github.com/stsysd/eventgrapher/stats"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the statistics to the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), a.summary)
			return nil
		},
	}
}

// printSummary はダッシュボードと同じ文言を色付きで出力します。
func printSummary(w io.Writer, sum *stats.Summary) {
	color.New(color.Bold).Fprintln(w, strconv.Itoa(sum.Year)+" Events")
	for _, line := range heatmap.SummaryLines(sum) {
		color.New(color.FgHiCyan).Fprintln(w, "  "+line)
	}
	for _, line := range heatmap.DetailLines(sum) {
		c := color.New(color.FgWhite)
		if strings.HasSuffix(line, stats.NotAvailable) {
			c = color.New(color.FgYellow)
		}
		c.Fprintln(w, "  "+line)
	}
	fmt.Fprintln(w)
}
