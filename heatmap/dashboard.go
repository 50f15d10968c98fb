// Package heatmap renders the event dashboard as SVG.
// Charts draw onto a Canvas, so tests can record the calls instead of parsing markup.
package heatmap

import (
	"github.com/stsysd/eventgrapher/stats"
)

// RenderDashboard draws every panel of the dashboard onto c.
// Layout (top to bottom): summary text, annual heatmap with key,
// then the weekday x hour grid next to the weekday bars.
func RenderDashboard(c Canvas, sum *stats.Summary, opts *Options) {
	o := opts.withDefaults()

	textBottom := DrawSummary(c, sum, o)

	yearlyOrigin := Point{X: o.Padding + 55, Y: textBottom + o.lineHeight()}
	DrawYearly(c, sum, yearlyOrigin, o)

	// annual grid (7 rows) + axis + month labels + key
	weeklyY := yearlyOrigin.Y + 7*o.step() + 5*o.lineHeight() + 4*o.Padding
	weeklyOrigin := Point{X: yearlyOrigin.X, Y: weeklyY}
	DrawWeekly(c, sum.WeekHour, weeklyOrigin, o)

	barsOrigin := Point{X: weeklyOrigin.X + 24*o.step() + 4*o.Padding, Y: weeklyY}
	DrawWeekdayBars(c, sum.WeekdayByCategory, barsOrigin, o)
}

// GenerateDashboardSVG renders the dashboard into an SVG document.
// It returns an empty string when there is no summary.
func GenerateDashboardSVG(sum *stats.Summary, opts *Options) string {
	if sum == nil {
		return ""
	}
	o := opts.withDefaults()
	c := NewSVGCanvas(o.Width, o.Height, o.FontFamily, o.Palette.Background)
	RenderDashboard(c, sum, o)
	return c.String()
}
