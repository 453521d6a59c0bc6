package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/portfolio/internal/render"
)

var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// BarChart draws bars bottom-aligned in a width x height cell area. Each
// bar's height is its percent of the area, drawn with eighth-block
// precision. The bars at highlight and highlight+1 use the accent color;
// pass -1 for none.
func BarChart(bars []render.Bar, width, height int, theme Theme, highlight int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	blank := strings.Repeat(" ", width)
	if len(bars) == 0 {
		rows := make([]string, height)
		for i := range rows {
			rows[i] = blank
		}
		return strings.Join(rows, "\n")
	}

	cols := Columns(len(bars), width)
	styles := make([]lipgloss.Style, len(bars))
	for i, b := range bars {
		c := Mix(theme.BarLow, theme.BarHigh, (b.Opacity-0.5)/0.5)
		if highlight >= 0 && (i == highlight || i == highlight+1) {
			c = theme.Accent
		}
		styles[i] = lipgloss.NewStyle().Foreground(c)
	}

	units := make([]int, len(bars))
	for i, b := range bars {
		units[i] = BarUnits(b.Height, height)
	}

	var out strings.Builder
	for row := 0; row < height; row++ {
		level := height - 1 - row
		x := 0
		for i := range bars {
			cell := string(eighths[cellFill(units[i], level)])
			out.WriteString(styles[i].Render(strings.Repeat(cell, cols[i].Width)))
			x += cols[i].Width
			if gap := cols[i].Gap; gap > 0 {
				out.WriteString(strings.Repeat(" ", gap))
				x += gap
			}
		}
		if x < width {
			out.WriteString(strings.Repeat(" ", width-x))
		}
		if row < height-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// BarUnits is a bar's height in eighths of a cell.
func BarUnits(percent float64, rows int) int {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return int(percent/100*float64(rows*8) + 0.5)
}

func cellFill(units, level int) int {
	fill := units - level*8
	if fill < 0 {
		return 0
	}
	if fill > 8 {
		return 8
	}
	return fill
}

// Column is the cell width of one bar and the blank gap after it.
type Column struct {
	Width int
	Gap   int
}

// Columns spreads n bars over width cells. Bars get a one-cell gap when
// there is room for it; leftover cells go to the leftmost bars. When there
// are more bars than cells, the extra bars get zero width.
func Columns(n, width int) []Column {
	cols := make([]Column, n)
	if n == 0 || width <= 0 {
		return cols
	}

	gap := 0
	if width >= 2*n {
		gap = 1
	}
	avail := width - gap*(n-1)
	base, extra := avail/n, avail%n
	for i := range cols {
		w := base
		if i < extra {
			w++
		}
		cols[i].Width = w
		if i < n-1 {
			cols[i].Gap = gap
		}
	}
	return cols
}
