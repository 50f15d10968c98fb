package heatmap

import (
	"fmt"

	"github.com/stsysd/eventgrapher/model"
	"github.com/stsysd/eventgrapher/stats"
)

// BarHeight is the height of the tallest weekday bar.
const BarHeight = 140

// DrawWeekdayBars draws one bar per weekday (Monday first), stacked by category,
// followed by a legend of the category colors.
func DrawWeekdayBars(c Canvas, byCategory map[model.Category]stats.WeekdayTable, origin Point, o *Options) {
	o = o.withDefaults()
	p := o.Palette

	var totals stats.WeekdayTable
	for _, table := range byCategory {
		for wd, n := range table {
			totals[wd] += n
		}
	}
	peak := totals.Max()

	barWidth := 2 * o.CellSize
	advance := barWidth + o.CellPadding*2
	baseline := origin.Y + BarHeight

	for col, wd := range weekdayOrder {
		x := origin.X + col*advance
		y := baseline
		for _, cat := range model.Categories() {
			n := byCategory[cat][wd]
			if n == 0 || peak == 0 {
				continue
			}
			h := n * BarHeight / peak
			if h == 0 {
				h = 1
			}
			y -= h
			tooltip := fmt.Sprintf("%s %s: %d", wd.String()[:3], cat.Title(), n)
			c.Rect(x, y, barWidth, h, p.Categories[cat], tooltip,
				Attr{Name: "data-weekday", Value: wd.String()},
				Attr{Name: "data-category", Value: cat.String()})
		}
		c.Text(x+barWidth/2, baseline+o.FontSize+4, weekdayShort[col],
			TextStyle{Size: o.FontSize, Color: p.Detail(), Bold: true, Anchor: "middle"})
	}

	right := origin.X + len(weekdayOrder)*advance - 2*o.CellPadding
	c.Line(origin.X-o.CellPadding, baseline, right, baseline, p.Detail(), 1)

	// legend
	legendX := right + 3*o.CellPadding
	for i, cat := range model.Categories() {
		y := origin.Y + i*o.lineHeight()
		c.Rect(legendX, y, o.CellSize/2+2, o.CellSize/2+2, p.Categories[cat], "")
		c.Text(legendX+o.CellSize, y+o.CellSize/2+1, cat.Title(),
			TextStyle{Size: o.FontSize - 2, Color: p.TextSecondary})
	}
}
