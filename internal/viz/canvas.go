package viz

import (
	"strings"

	"github.com/san-kum/portfolio/internal/render"
)

const brailleBlank = 0x2800

// Braille dots of one cell, indexed [row][col]:
//
//	1 4
//	2 5
//	3 6
//	7 8
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells. Each cell holds 2x4 dots, so the dot
// resolution is (Width*2) x (Height*4) with y growing downwards.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) DotWidth() int  { return c.Width * 2 }
func (c *Canvas) DotHeight() int { return c.Height * 4 }

// Set turns on the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return
	}
	c.Grid[y/4][x/2] |= brailleDots[y%4][x%2]
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return false
	}
	return c.Grid[y/4][x/2]&brailleDots[y%4][x%2] != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// FillColumn lights the bottom n dots of dot column x.
func (c *Canvas) FillColumn(x, n int) {
	h := c.DotHeight()
	if n > h {
		n = h
	}
	for y := h - 1; y >= h-n; y-- {
		c.Set(x, y)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		b.WriteString(string(row))
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// DrawBars draws one dot column per bar, leaving a blank dot column
// between bars when the canvas is wide enough.
func (c *Canvas) DrawBars(bars []render.Bar) {
	c.Clear()
	cols := Columns(len(bars), c.DotWidth())
	x := 0
	for i, b := range bars {
		n := int(b.Height/100*float64(c.DotHeight()) + 0.5)
		for k := 0; k < cols[i].Width; k++ {
			c.FillColumn(x+k, n)
		}
		x += cols[i].Width + cols[i].Gap
	}
}
