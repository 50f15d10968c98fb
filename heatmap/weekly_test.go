package heatmap

import (
	"testing"
)

func TestDrawWeekly_Grid(t *testing.T) {
	sum := setupSummary(t, 2020,
		"1.6.2020 9:15AM,1",  // Monday 9時
		"1.13.2020 9:45AM,1", // Monday 9時
		"1.5.2020 11:00PM,1", // Sunday 23時
	)
	c := &recordingCanvas{}
	origin := Point{X: 70, Y: 400}
	DrawWeekly(c, sum.WeekHour, origin, nil)

	if len(c.rects) != 7*24 {
		t.Fatalf("Expected %d cells, got %d", 7*24, len(c.rects))
	}

	step := DefaultOptions().step()
	p := DefaultPalette()
	sup := 5 // max(5, 2+1)

	for _, r := range c.rects {
		wd, hour, count := r.attrs["data-weekday"], r.attrs["data-hour"], r.attrs["data-count"]
		switch {
		case wd == "Monday" && hour == "9":
			if count != "2" || r.fill != p.Level(2, sup) {
				t.Errorf("Monday 9h: unexpected count %s / fill %s", count, r.fill)
			}
			if r.x != origin.X+9*step || r.y != origin.Y {
				t.Errorf("Monday 9h: unexpected position (%d, %d)", r.x, r.y)
			}
		case wd == "Sunday" && hour == "23":
			if count != "1" || r.fill != p.Level(1, sup) {
				t.Errorf("Sunday 23h: unexpected count %s / fill %s", count, r.fill)
			}
			if r.y != origin.Y+6*step {
				t.Errorf("Sunday should be the last row, got y=%d", r.y)
			}
		default:
			if count != "0" || r.fill != p.Levels[0] {
				t.Errorf("%s %sh: expected empty cell, got %s / %s", wd, hour, count, r.fill)
			}
		}
	}

	for _, label := range []string{"0", "12", "21"} {
		if !c.hasText(label) {
			t.Errorf("Expected hour label %q", label)
		}
	}
}

func TestPaletteLevel(t *testing.T) {
	tests := []struct {
		value, sup int
		expected   int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{4, 5, 4},
		{1, 1, 1},
		{10, 5, 6},
		{-1, 5, 0},
	}

	for _, tt := range tests {
		if got := levelFor(tt.value, tt.sup, 7); got != tt.expected {
			t.Errorf("levelFor(%d, %d): expected %d, got %d", tt.value, tt.sup, tt.expected, got)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		count    int
		expected string
	}{
		{0, "#eeeeee"},
		{1, "#bde7fa"},
		{5, "#876eba"},
		{6, "#ac73bf"},
		{42, "#ac73bf"},
	}

	for _, tt := range tests {
		if got := p.Color(tt.count); got != tt.expected {
			t.Errorf("Color(%d): expected %s, got %s", tt.count, tt.expected, got)
		}
	}
}
