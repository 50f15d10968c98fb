// yearly.go
// Draws a GitHub-like annual activity heatmap, one cell per day of the dataset year.
package heatmap

import (
	"fmt"
	"strconv"
	"time"

	"github.com/stsysd/eventgrapher/model"
	"github.com/stsysd/eventgrapher/stats"
)

var (
	monthNames   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	weekdayOrder = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}
	weekdayShort = []string{"M", "T", "W", "T", "F", "S", "S"}
)

// weekdayRow maps a weekday to its row with Monday first.
func weekdayRow(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// YearlyLayout describes where each day of the year lands on the grid.
type YearlyLayout struct {
	Origin  Point
	Step    int
	Columns int
}

// yearlyLayout computes the number of week columns needed for the year.
func yearlyLayout(year *model.Year, origin Point, o *Options) YearlyLayout {
	first := year.First()
	offset := weekdayRow(first.Weekday())
	columns := (offset+year.Len()-1)/7 + 1
	return YearlyLayout{Origin: origin, Step: o.step(), Columns: columns}
}

// cell returns the top-left corner of the cell for the n-th day (0-based) of the year.
func (l YearlyLayout) cell(year *model.Year, n int) Point {
	offset := weekdayRow(year.First().Weekday())
	pos := offset + n
	return Point{
		X: l.Origin.X + (pos/7)*l.Step,
		Y: l.Origin.Y + (pos%7)*l.Step,
	}
}

// DrawYearly draws the annual heatmap with its axes, labels and key.
// Cells are colored by the number of events on that day and marked when the
// month changes or when the day has a shared or virtual event.
func DrawYearly(c Canvas, sum *stats.Summary, origin Point, o *Options) {
	o = o.withDefaults()
	year, err := model.NewYear(sum.Year)
	if err != nil {
		return
	}
	layout := yearlyLayout(year, origin, o)
	p := o.Palette

	// draw one cell per day
	currentMonth := time.January
	for n, day := range year.Days() {
		monthChange := false
		if day.Month != currentMonth {
			currentMonth = day.Month
			monthChange = true
		}
		count := sum.DayCount(day)
		shared := sum.HasCategoryOn(model.Shared, day)
		virtual := sum.HasCategoryOn(model.Virtual, day)

		pt := layout.cell(year, n)
		tooltip := fmt.Sprintf("%s: %d", stats.FormatDay(day), count)
		drawDayBox(c, pt, o, p.Color(count), monthChange, shared, virtual, tooltip,
			Attr{Name: "data-date", Value: day.String()},
			Attr{Name: "data-count", Value: strconv.Itoa(count)})
	}

	// axes
	gridHeight := 7*o.CellSize + 6*o.CellPadding
	axisX := origin.X - 2*o.CellPadding
	axisY := origin.Y + gridHeight + 2*o.CellPadding
	right := origin.X + layout.Columns*o.step() - o.CellPadding
	c.Line(axisX, origin.Y, axisX, axisY, p.Detail(), 1)
	c.Line(axisX, axisY, right, axisY, p.Detail(), 1)

	// weekday labels
	labelStyle := TextStyle{Size: o.FontSize, Color: p.Detail(), Bold: true, Anchor: "middle"}
	for row, label := range weekdayShort {
		y := origin.Y + row*o.step() + o.CellSize/2 + o.FontSize/3
		c.Text(axisX-3*o.CellPadding, y, label, labelStyle)
	}

	// month labels under the column where each month starts
	monthY := axisY + o.FontSize + 6
	for n, day := range year.Days() {
		if day.Day != 1 {
			continue
		}
		pt := layout.cell(year, n)
		c.Text(pt.X, monthY, monthNames[day.Month-1], TextStyle{Size: o.FontSize, Color: p.Detail(), Bold: true})
	}

	drawYearlyKey(c, Point{X: origin.X + 4*o.step(), Y: monthY + 2*o.lineHeight()}, o)
}

// drawDayBox draws one day cell with its optional markers.
func drawDayBox(c Canvas, pt Point, o *Options, fill string, monthChange, shared, virtual bool, tooltip string, attrs ...Attr) {
	size := o.CellSize
	marker := o.Palette.Marker
	c.Rect(pt.X, pt.Y, size, size, fill, tooltip, attrs...)

	if monthChange {
		c.Polygon([]Point{
			{X: pt.X, Y: pt.Y},
			{X: pt.X + size/3, Y: pt.Y},
			{X: pt.X, Y: pt.Y + size/3},
		}, marker)
	}
	cx, cy := pt.X+size/2, pt.Y+size/2
	if shared {
		c.Circle(cx, cy, size/4, marker, "", 0)
	} else if virtual {
		c.Circle(cx, cy, size/4-1, "", marker, 2)
	}
}

// drawYearlyKey draws the legend: one swatch per count bucket plus the three markers.
func drawYearlyKey(c Canvas, origin Point, o *Options) {
	p := o.Palette
	style := TextStyle{Size: o.FontSize, Color: p.Detail(), Italic: true}
	textY := origin.Y + o.CellSize/2 + o.FontSize/3
	x := origin.X
	advance := o.CellSize + 3*o.FontSize

	for level := range p.Levels {
		drawDayBox(c, Point{X: x, Y: origin.Y}, o, p.Levels[level], false, false, false, "")
		label := strconv.Itoa(level)
		if level == len(p.Levels)-1 {
			label += "+"
		}
		c.Text(x+o.CellSize+6, textY, label, style)
		x += advance
	}

	markers := []struct {
		label                        string
		monthChange, shared, virtual bool
	}{
		{"New Month", true, false, false},
		{"Shared", false, true, false},
		{"Virtual", false, false, true},
	}
	for _, m := range markers {
		drawDayBox(c, Point{X: x, Y: origin.Y}, o, p.Detail(), m.monthChange, m.shared, m.virtual, "")
		c.Text(x+o.CellSize+6, textY, m.label, style)
		x += o.CellSize + 6 + len(m.label)*o.FontSize*2/3 + o.FontSize
	}
}
