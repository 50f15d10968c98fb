package heatmap

// Options configures rendering parameters for the dashboard.
type Options struct {
	Width       int      // canvas width (px)
	Height      int      // canvas height (px)
	Padding     int      // outer padding (px)
	CellSize    int      // size of each grid cell (px)
	CellPadding int      // padding between cells (px)
	FontSize    int      // base font size (px)
	FontFamily  string   // font family for labels
	TextColumn  int      // x offset of the second statistics column (px)
	Palette     *Palette // colors keyed by count bucket
	Title       string   // overrides the "<year> Events" title
}

// DefaultOptions returns the fixed 1200x800 layout.
func DefaultOptions() *Options {
	return &Options{
		Width:       1200,
		Height:      800,
		Padding:     15,
		CellSize:    16,
		CellPadding: 4,
		FontSize:    15,
		FontFamily:  "sans-serif",
		TextColumn:  300,
		Palette:     DefaultPalette(),
	}
}

// withDefaults fills zero values from DefaultOptions.
func (o *Options) withDefaults() *Options {
	d := DefaultOptions()
	if o == nil {
		return d
	}
	merged := *o
	if merged.Width <= 0 {
		merged.Width = d.Width
	}
	if merged.Height <= 0 {
		merged.Height = d.Height
	}
	if merged.Padding <= 0 {
		merged.Padding = d.Padding
	}
	if merged.CellSize <= 0 {
		merged.CellSize = d.CellSize
	}
	if merged.CellPadding < 0 {
		merged.CellPadding = d.CellPadding
	}
	if merged.FontSize <= 0 {
		merged.FontSize = d.FontSize
	}
	if merged.FontFamily == "" {
		merged.FontFamily = d.FontFamily
	}
	if merged.TextColumn <= 0 {
		merged.TextColumn = d.TextColumn
	}
	if merged.Palette == nil {
		merged.Palette = d.Palette
	}
	return &merged
}

// step is the distance between two neighbouring cells.
func (o *Options) step() int {
	return o.CellSize + o.CellPadding
}

// lineHeight is the vertical advance of one line of body text.
func (o *Options) lineHeight() int {
	return o.FontSize + 5
}
