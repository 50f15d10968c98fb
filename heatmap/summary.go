package heatmap

import (
	"fmt"
	"strconv"

	"github.com/stsysd/eventgrapher/stats"
)

// SummaryLines returns the left column: totals and per-category shares.
func SummaryLines(sum *stats.Summary) []string {
	lines := []string{
		fmt.Sprintf("Total: %d  (Avg: %s/day, %s/week)",
			sum.Total, stats.FormatAverage(sum.DailyAverage), stats.FormatAverage(sum.WeeklyAverage)),
	}
	for _, cs := range sum.Categories {
		lines = append(lines, fmt.Sprintf("%s: %d  (%s%%)", cs.Category.Title(), cs.Count, stats.FormatPercent(cs.Ratio)))
	}
	return lines
}

// DetailLines returns the right column: gaps and peaks.
func DetailLines(sum *stats.Summary) []string {
	return []string{
		"Longest Gap: " + stats.FormatGap(sum.LongestGap),
		"Shortest Gap: " + stats.FormatGap(sum.ShortestGap),
		"Peak Day: " + sum.PeakDay.String(),
		"Peak Week: " + sum.PeakWeek.String(),
	}
}

// DrawSummary draws the title and the two text columns; it returns the y just below the text.
func DrawSummary(c Canvas, sum *stats.Summary, o *Options) int {
	o = o.withDefaults()
	p := o.Palette

	title := o.Title
	if title == "" {
		title = strconv.Itoa(sum.Year) + " Events"
	}
	y := o.Padding * 2
	c.Text(o.Padding, y, title, TextStyle{Size: o.FontSize, Color: p.TextPrimary, Bold: true})
	y += o.lineHeight() + 3
	base := y

	body := TextStyle{Size: o.FontSize - 1, Color: p.TextSecondary, Bold: true}
	indent := o.Padding + o.Padding
	for _, line := range SummaryLines(sum) {
		c.Text(indent, y, line, body)
		y += o.lineHeight()
	}
	bottom := y

	y = base
	for _, line := range DetailLines(sum) {
		c.Text(o.Padding+o.TextColumn, y, line, body)
		y += o.lineHeight()
	}
	return max(bottom, y)
}
