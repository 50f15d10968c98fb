package heatmap

import "github.com/stsysd/eventgrapher/model"

// Palette holds the discrete colors used by every chart.
type Palette struct {
	Levels        []string // Levels[i] is the color for a count of i; the last entry covers everything above
	Background    string
	TextPrimary   string
	TextSecondary string
	Marker        string                    // color of the in-cell markers
	Categories    map[model.Category]string // bar colors per category
}

// DefaultPalette returns the blue-to-purple palette.
func DefaultPalette() *Palette {
	levels := []string{"#eeeeee", "#bde7fa", "#7bd0f5", "#45b5e6", "#648cc8", "#876eba", "#ac73bf"}
	return &Palette{
		Levels:        levels,
		Background:    "#ffffff",
		TextPrimary:   "#000000",
		TextSecondary: "#505050",
		Marker:        "#ffffff",
		Categories: map[model.Category]string{
			model.Solo:    levels[3],
			model.Shared:  levels[5],
			model.Virtual: levels[1],
		},
	}
}

// Color returns the color for a count bucket.
func (p *Palette) Color(count int) string {
	switch {
	case count <= 0:
		return p.Levels[0]
	case count >= len(p.Levels):
		return p.Levels[len(p.Levels)-1]
	}
	return p.Levels[count]
}

// Detail is the color used for axes, labels and the key.
func (p *Palette) Detail() string {
	return p.Color(4)
}

// Level returns the color for a value auto-scaled against sup.
// 0 always maps to the first color; 1..sup-1 are spread over the remaining levels.
func (p *Palette) Level(value, sup int) string {
	return p.Levels[levelFor(value, sup, len(p.Levels))]
}

func levelFor(value, sup, levels int) int {
	if value <= 0 {
		return 0
	}
	if sup <= 1 || levels <= 2 {
		return min(1, levels-1)
	}
	// 1以上の値を1からlevels-1の範囲に分散
	level := ((value-1)*(levels-2))/(sup-1) + 1
	if level >= levels {
		level = levels - 1
	}
	return level
}
