package export

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/portfolio/internal/render"
	"github.com/san-kum/portfolio/internal/sequence"
	"github.com/san-kum/portfolio/internal/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type svgDoc struct {
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Groups []struct {
		Rects []struct {
			Height  float64 `xml:"height,attr"`
			Opacity float64 `xml:"opacity,attr"`
		} `xml:"rect"`
		Circles []struct{} `xml:"circle"`
	} `xml:"g"`
}

func parse(t *testing.T, s string) svgDoc {
	t.Helper()
	var doc svgDoc
	require.NoError(t, xml.Unmarshal([]byte(s), &doc))
	return doc
}

func TestBarsSVG(t *testing.T) {
	bars := render.Bars(sequence.Sequence{10, 50, 90})
	doc := parse(t, BarsSVG(bars, 300, 200, viz.ThemeMonochrome))

	assert.Equal(t, "300", doc.Width)
	require.Len(t, doc.Groups, 1)
	rects := doc.Groups[0].Rects
	require.Len(t, rects, 3)
	assert.InDelta(t, 20.0, rects[0].Height, 0.01)
	assert.InDelta(t, 180.0, rects[2].Height, 0.01)
	assert.InDelta(t, 0.75, rects[1].Opacity, 0.001)
}

func TestBarsSVGEmpty(t *testing.T) {
	doc := parse(t, BarsSVG(nil, 100, 50, viz.ThemeOcean))
	require.Len(t, doc.Groups, 1)
	assert.Empty(t, doc.Groups[0].Rects)
}

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	doc := parse(t, CanvasToSVG(c, 4, "#ffffff"))
	require.Len(t, doc.Groups, 1)
	assert.Len(t, doc.Groups[0].Circles, 2)
	assert.Equal(t, "", CanvasToSVG(nil, 4, "#ffffff"))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.svg")
	require.NoError(t, WriteFile(path, "<svg/>"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg"))
}
