package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/portfolio/internal/render"
	"github.com/san-kum/portfolio/internal/viz"
)

// BarsSVG renders one frame of the visualizer as a standalone SVG: bars
// bottom-aligned, height in percent of the image, fill opacity from the
// render adapter and a vertical gradient in the theme's bar colors.
func BarsSVG(bars []render.Bar, width, height int, theme viz.Theme) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<defs>
<linearGradient id="bar" x1="0" y1="1" x2="0" y2="0">
<stop offset="0%%" stop-color="%s"/>
<stop offset="100%%" stop-color="%s"/>
</linearGradient>
</defs>
<rect width="100%%" height="100%%" fill="#000000"/>
<g fill="url(#bar)">
`, width, height, width, height, theme.BarLow, theme.BarHigh))

	if n := len(bars); n > 0 {
		const gap = 2.0
		slot := float64(width) / float64(n)
		barWidth := slot - gap
		if barWidth < 1 {
			barWidth = slot
		}
		for i, b := range bars {
			h := b.Height / 100 * float64(height)
			x := float64(i) * slot
			y := float64(height) - h
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="1" opacity="%.3f"/>
`, x, y, barWidth, h, b.Opacity))
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64, color string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.DotWidth()) * scale
	height := float64(canvas.DotHeight()) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#000000"/>
<g fill="%s">
`, width, height, width, height, color))

	r := scale * 0.4
	for y := 0; y < canvas.DotHeight(); y++ {
		for x := 0; x < canvas.DotWidth(); x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, r))
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// WriteFile writes svg to path, or to stdout when path is "-" or empty.
func WriteFile(path, svg string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(os.Stdout, svg)
		return err
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
