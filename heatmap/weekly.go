package heatmap

import (
	"fmt"
	"strconv"

	"github.com/stsysd/eventgrapher/stats"
)

// DrawWeekly draws a weekday x hour-of-day heatmap.
// Layout: 7 rows (Monday first) x 24 columns (hours).
// Colors are auto-scaled so that small datasets still show contrast.
func DrawWeekly(c Canvas, table stats.WeekHourTable, origin Point, o *Options) {
	o = o.withDefaults()
	p := o.Palette

	// at least 5 so that a single event does not paint the darkest color
	sup := max(5, table.Max()+1)

	for row, wd := range weekdayOrder {
		for hour := range stats.HoursPerDay {
			count := table.At(wd, hour)
			x := origin.X + hour*o.step()
			y := origin.Y + row*o.step()
			tooltip := fmt.Sprintf("%s %02d:00-%02d:59: %d", wd.String()[:3], hour, hour, count)
			c.Rect(x, y, o.CellSize, o.CellSize, p.Level(count, sup), tooltip,
				Attr{Name: "data-weekday", Value: wd.String()},
				Attr{Name: "data-hour", Value: strconv.Itoa(hour)},
				Attr{Name: "data-count", Value: strconv.Itoa(count)})
		}
	}

	// weekday labels
	labelStyle := TextStyle{Size: o.FontSize, Color: p.Detail(), Bold: true, Anchor: "middle"}
	for row, label := range weekdayShort {
		y := origin.Y + row*o.step() + o.CellSize/2 + o.FontSize/3
		c.Text(origin.X-3*o.CellPadding-o.CellSize/2, y, label, labelStyle)
	}

	// hour labels every 3 hours
	hourY := origin.Y + 7*o.step() + o.FontSize
	for hour := 0; hour < stats.HoursPerDay; hour += 3 {
		x := origin.X + hour*o.step() + o.CellSize/2
		c.Text(x, hourY, strconv.Itoa(hour), TextStyle{Size: o.FontSize - 2, Color: p.Detail(), Anchor: "middle"})
	}
}
