package heatmap

import (
	"fmt"
	"html"
	"strings"
)

// Point is a pixel coordinate on the canvas.
type Point struct {
	X, Y int
}

// Attr is an extra data attribute attached to a drawn element.
type Attr struct {
	Name  string
	Value string
}

// TextStyle configures how Text draws a string.
type TextStyle struct {
	Size   int
	Color  string
	Bold   bool
	Italic bool
	Anchor string // "start" (default), "middle" or "end"
}

// Canvas is the drawing surface the charts render onto.
type Canvas interface {
	Rect(x, y, w, h int, fill, tooltip string, attrs ...Attr)
	Line(x1, y1, x2, y2 int, stroke string, width int)
	Text(x, y int, text string, style TextStyle)
	Circle(cx, cy, r int, fill, stroke string, strokeWidth int)
	Polygon(points []Point, fill string)
}

// SVGCanvas is a Canvas that writes SVG markup.
type SVGCanvas struct {
	sb     strings.Builder
	width  int
	height int
}

var _ Canvas = (*SVGCanvas)(nil)

// NewSVGCanvas starts an SVG document of the given size filled with background.
func NewSVGCanvas(width, height int, fontFamily, background string) *SVGCanvas {
	c := &SVGCanvas{width: width, height: height}
	c.sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		width, height, width, height))
	c.sb.WriteString(fmt.Sprintf(`  <style>text{font-family:%s}</style>`+"\n", fontFamily))
	c.sb.WriteString(fmt.Sprintf(`  <rect x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n", width, height, background))
	return c
}

// Rect draws a filled rectangle with an optional tooltip.
func (c *SVGCanvas) Rect(x, y, w, h int, fill, tooltip string, attrs ...Attr) {
	c.sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"`, x, y, w, h, fill))
	for _, a := range attrs {
		c.sb.WriteString(fmt.Sprintf(` %s="%s"`, a.Name, html.EscapeString(a.Value)))
	}
	if tooltip == "" {
		c.sb.WriteString("/>\n")
		return
	}
	c.sb.WriteString(">\n")
	c.sb.WriteString(fmt.Sprintf(`    <title>%s</title>`+"\n", html.EscapeString(tooltip)))
	c.sb.WriteString(`  </rect>` + "\n")
}

// Line draws a straight line.
func (c *SVGCanvas) Line(x1, y1, x2, y2 int, stroke string, width int) {
	c.sb.WriteString(fmt.Sprintf(`  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%d"/>`+"\n",
		x1, y1, x2, y2, stroke, width))
}

// Text draws a string with its baseline at y.
func (c *SVGCanvas) Text(x, y int, text string, style TextStyle) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`font-size="%d" fill="%s"`, style.Size, style.Color))
	if style.Bold {
		sb.WriteString(` font-weight="bold"`)
	}
	if style.Italic {
		sb.WriteString(` font-style="italic"`)
	}
	if style.Anchor != "" && style.Anchor != "start" {
		sb.WriteString(fmt.Sprintf(` text-anchor="%s"`, style.Anchor))
	}
	c.sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" %s>%s</text>`+"\n", x, y, sb.String(), html.EscapeString(text)))
}

// Circle draws a circle; an empty fill or stroke is rendered as "none".
func (c *SVGCanvas) Circle(cx, cy, r int, fill, stroke string, strokeWidth int) {
	if fill == "" {
		fill = "none"
	}
	if stroke == "" {
		stroke = "none"
	}
	c.sb.WriteString(fmt.Sprintf(`  <circle cx="%d" cy="%d" r="%d" fill="%s" stroke="%s" stroke-width="%d"/>`+"\n",
		cx, cy, r, fill, stroke, strokeWidth))
}

// Polygon draws a filled polygon.
func (c *SVGCanvas) Polygon(points []Point, fill string) {
	coords := make([]string, 0, len(points))
	for _, p := range points {
		coords = append(coords, fmt.Sprintf("%d,%d", p.X, p.Y))
	}
	c.sb.WriteString(fmt.Sprintf(`  <polygon points="%s" fill="%s"/>`+"\n", strings.Join(coords, " "), fill))
}

// String closes the document and returns the SVG.
func (c *SVGCanvas) String() string {
	return c.sb.String() + `</svg>`
}
