package scale

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const (
	defaultHeight     = 80.0
	defaultFontSize   = 14.0
	defaultTrackColor = "#5b6770"
	defaultTextColor  = "#1f2933"
	trackY            = 0.35 // track line height as a fraction of the frame
	tickHalf          = 6.0
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	height     float64
	fontSize   float64
	trackColor string
	textColor  string
}

func WithHeight(h float64) SVGOption    { return func(r *svgRenderer) { r.height = h } }
func WithFontSize(s float64) SVGOption  { return func(r *svgRenderer) { r.fontSize = s } }
func WithTrackColor(c string) SVGOption { return func(r *svgRenderer) { r.trackColor = c } }
func WithTextColor(c string) SVGOption  { return func(r *svgRenderer) { r.textColor = c } }

// RenderSVG draws the scale track with one tick and text per label.
func RenderSVG(l Layout, opts ...SVGOption) []byte {
	r := svgRenderer{
		height:     defaultHeight,
		fontSize:   defaultFontSize,
		trackColor: defaultTrackColor,
		textColor:  defaultTextColor,
	}
	for _, opt := range opts {
		opt(&r)
	}

	y := r.height * trackY
	textY := y + tickHalf + r.fontSize*1.4

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, r.height, l.Width, r.height)
	fmt.Fprintf(&buf, `  <line class="track" x1="0" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="3" stroke-linecap="round"/>`+"\n",
		y, l.Width, y, escapeXML(r.trackColor))

	for _, lb := range l.Labels {
		fmt.Fprintf(&buf, `  <line class="tick" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="2"/>`+"\n",
			lb.X, y-tickHalf, lb.X, y+tickHalf, escapeXML(r.trackColor))
	}
	for _, lb := range l.Labels {
		fmt.Fprintf(&buf, `  <text class="label" x="%.2f" y="%.2f" text-anchor="%s" font-family="sans-serif" font-size="%.1f" fill="%s" data-index="%d" data-percent="%.4g">%s</text>`+"\n",
			lb.X, textY, lb.Anchor, r.fontSize, escapeXML(r.textColor), lb.Index, lb.Percent, escapeXML(lb.Text))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
