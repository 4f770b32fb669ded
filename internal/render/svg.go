package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/san-kum/hanoisim/internal/hanoi"
)

// SVG encodes a frame as a standalone SVG document.
func SVG(f Frame) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, f.Width, f.Height, f.Width, f.Height, hexColor(f.Background)))

	for _, r := range f.Rects {
		sb.WriteString(fmt.Sprintf(`<rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, r.Kind, r.X, r.Y, r.W, r.H, hexColor(r.Color)))
	}

	for _, t := range f.Texts {
		// svg anchors text at the baseline, frames at the top-left
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="DejaVu Sans, sans-serif" font-size="%d" fill="%s">%s</text>
`, t.X, t.Y+float32(t.Size), t.Size, hexColor(t.Color), html.EscapeString(t.Body)))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG writes SVG(f) to w.
func WriteSVG(w io.Writer, f Frame) error {
	_, err := io.WriteString(w, SVG(f))
	return err
}

func hexColor(c hanoi.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
