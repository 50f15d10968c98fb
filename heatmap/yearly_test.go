package heatmap

import (
	"testing"
	"time"

	"github.com/stsysd/eventgrapher/model"
	"github.com/stsysd/eventgrapher/parser"
	"github.com/stsysd/eventgrapher/stats"
	"github.com/stsysd/eventgrapher/store"
)

// recordingCanvas は描画呼び出しを記録するテスト用のCanvasです。
type recordingCanvas struct {
	rects    []recordedRect
	texts    []string
	circles  []recordedCircle
	polygons [][]Point
	lines    int
}

type recordedRect struct {
	x, y, w, h int
	fill       string
	tooltip    string
	attrs      map[string]string
}

type recordedCircle struct {
	cx, cy      int
	fill        string
	stroke      string
	strokeWidth int
}

func (r *recordingCanvas) Rect(x, y, w, h int, fill, tooltip string, attrs ...Attr) {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name] = a.Value
	}
	r.rects = append(r.rects, recordedRect{x: x, y: y, w: w, h: h, fill: fill, tooltip: tooltip, attrs: m})
}

func (r *recordingCanvas) Line(x1, y1, x2, y2 int, stroke string, width int) { r.lines++ }

func (r *recordingCanvas) Text(x, y int, text string, style TextStyle) {
	r.texts = append(r.texts, text)
}

func (r *recordingCanvas) Circle(cx, cy, rad int, fill, stroke string, strokeWidth int) {
	r.circles = append(r.circles, recordedCircle{cx: cx, cy: cy, fill: fill, stroke: stroke, strokeWidth: strokeWidth})
}

func (r *recordingCanvas) Polygon(points []Point, fill string) {
	r.polygons = append(r.polygons, points)
}

// dayRect は data-date 属性で日セルを探します。
func (r *recordingCanvas) dayRect(date string) (recordedRect, bool) {
	for _, rect := range r.rects {
		if rect.attrs["data-date"] == date {
			return rect, true
		}
	}
	return recordedRect{}, false
}

func (r *recordingCanvas) hasText(s string) bool {
	for _, t := range r.texts {
		if t == s {
			return true
		}
	}
	return false
}

func setupSummary(t *testing.T, year int, lines ...string) *stats.Summary {
	t.Helper()
	col := store.Build(lines, parser.New(time.UTC))
	y, err := model.NewYear(year)
	if err != nil {
		t.Fatalf("Failed to create year: %v", err)
	}
	return stats.Compute(col, y)
}

func TestDrawYearly_OneCellPerDay(t *testing.T) {
	tests := []struct {
		year int
		days int
	}{
		{2020, 366},
		{2021, 365},
	}

	for _, tt := range tests {
		sum := setupSummary(t, tt.year)
		c := &recordingCanvas{}
		DrawYearly(c, sum, Point{X: 70, Y: 170}, nil)

		cells := 0
		for _, r := range c.rects {
			if r.attrs["data-date"] != "" {
				cells++
			}
		}
		if cells != tt.days {
			t.Errorf("year %d: expected %d day cells, got %d", tt.year, tt.days, cells)
		}
	}
}

func TestDrawYearly_MondayFirstRows(t *testing.T) {
	sum := setupSummary(t, 2020)
	c := &recordingCanvas{}
	origin := Point{X: 70, Y: 170}
	DrawYearly(c, sum, origin, nil)

	step := DefaultOptions().step()

	// 2020-01-01は水曜日なので3行目（row=2）、1列目
	jan1, ok := c.dayRect("2020-01-01")
	if !ok {
		t.Fatal("Expected a cell for 2020-01-01")
	}
	if jan1.x != origin.X || jan1.y != origin.Y+2*step {
		t.Errorf("Unexpected position for 2020-01-01: (%d, %d)", jan1.x, jan1.y)
	}

	// 2020-01-05は日曜日なので最終行、1列目
	jan5, _ := c.dayRect("2020-01-05")
	if jan5.x != origin.X || jan5.y != origin.Y+6*step {
		t.Errorf("Unexpected position for 2020-01-05: (%d, %d)", jan5.x, jan5.y)
	}

	// 2020-01-06は月曜日なので2列目の先頭
	jan6, _ := c.dayRect("2020-01-06")
	if jan6.x != origin.X+step || jan6.y != origin.Y {
		t.Errorf("Unexpected position for 2020-01-06: (%d, %d)", jan6.x, jan6.y)
	}
}

func TestDrawYearly_ColorsAndMarkers(t *testing.T) {
	sum := setupSummary(t, 2020,
		"1.1.2020 2:00PM,1",
		"1.1.2020 4:00PM,12",
		"1.8.2020 9:00AM,123",
		"1.9.2020 9:00AM,1",
		"1.9.2020 10:00AM,1",
		"1.9.2020 11:00AM,1",
		"1.9.2020 12:00PM,1",
		"1.9.2020 1:00PM,1",
		"1.9.2020 2:00PM,1",
		"1.9.2020 3:00PM,1",
	)
	c := &recordingCanvas{}
	DrawYearly(c, sum, Point{X: 70, Y: 170}, nil)

	p := DefaultPalette()
	tests := []struct {
		date  string
		count string
		fill  string
	}{
		{"2020-01-01", "2", p.Levels[2]},
		{"2020-01-02", "0", p.Levels[0]},
		{"2020-01-08", "1", p.Levels[1]},
		{"2020-01-09", "7", p.Levels[6]},
	}
	for _, tt := range tests {
		r, ok := c.dayRect(tt.date)
		if !ok {
			t.Fatalf("Expected a cell for %s", tt.date)
		}
		if r.attrs["data-count"] != tt.count {
			t.Errorf("%s: expected count %s, got %s", tt.date, tt.count, r.attrs["data-count"])
		}
		if r.fill != tt.fill {
			t.Errorf("%s: expected fill %s, got %s", tt.date, tt.fill, r.fill)
		}
	}

	jan1, _ := c.dayRect("2020-01-01")
	if jan1.tooltip != "01.01.2020: 2" {
		t.Errorf("Unexpected tooltip: %q", jan1.tooltip)
	}

	// 共有イベントのある日は塗りつぶしの点、仮想イベントのみの日は輪
	var dots, rings int
	for _, ci := range c.circles {
		switch {
		case ci.fill != "":
			dots++
		case ci.stroke != "":
			rings++
		}
	}
	// キーにも1つずつ描かれる
	if dots != 2 {
		t.Errorf("Expected 2 shared dots (1 day + key), got %d", dots)
	}
	if rings != 2 {
		t.Errorf("Expected 2 virtual rings (1 day + key), got %d", rings)
	}

	// 月替わりの三角形: 2月から12月の11個 + キーの1個
	if len(c.polygons) != 12 {
		t.Errorf("Expected 12 month-change markers, got %d", len(c.polygons))
	}
}

func TestDrawYearly_Labels(t *testing.T) {
	sum := setupSummary(t, 2020)
	c := &recordingCanvas{}
	DrawYearly(c, sum, Point{X: 70, Y: 170}, nil)

	for _, label := range []string{"M", "W", "F", "S", "Jan", "Jun", "Dec", "0", "5", "6+", "New Month", "Shared", "Virtual"} {
		if !c.hasText(label) {
			t.Errorf("Expected label %q", label)
		}
	}
	if c.lines < 2 {
		t.Errorf("Expected both axes to be drawn, got %d lines", c.lines)
	}
}
