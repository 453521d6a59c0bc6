// Package nav tracks which page section is in view and maps scroll
// progress onto animated properties.
package nav

type Section struct {
	ID    string
	Label string
}

var Sections = []Section{
	{ID: "home", Label: "Start"},
	{ID: "about", Label: "About"},
	{ID: "skills", Label: "Expertise"},
	{ID: "work", Label: "Work"},
	{ID: "contact", Label: "Contact"},
}

// ScrolledThreshold is how far the page must move before the nav bar
// switches to its compact look.
const ScrolledThreshold = 2

// Extent is the row range [Top, Bottom) a section occupies on the page.
type Extent struct {
	ID     string
	Top    int
	Bottom int
}

// Layout stacks sections of the given heights from row zero.
func Layout(ids []string, heights []int) []Extent {
	out := make([]Extent, 0, len(ids))
	top := 0
	for i, id := range ids {
		h := 0
		if i < len(heights) {
			h = heights[i]
		}
		out = append(out, Extent{ID: id, Top: top, Bottom: top + h})
		top += h
	}
	return out
}

// ActiveSection returns the last section whose extent contains the probe
// row, measured from the top of the viewport. The first section wins when
// nothing matches.
func ActiveSection(layout []Extent, scroll, probe int) string {
	if len(layout) == 0 {
		return ""
	}
	line := scroll + probe
	active := layout[0].ID
	for _, e := range layout {
		if e.Top <= line && line < e.Bottom {
			active = e.ID
		}
	}
	return active
}

// Offset returns the top row of the section, or -1.
func Offset(layout []Extent, id string) int {
	for _, e := range layout {
		if e.ID == id {
			return e.Top
		}
	}
	return -1
}

func IndexOf(id string) int {
	for i, s := range Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Progress is scroll over the scrollable range, clamped to [0, 1].
func Progress(scroll, total, viewport int) float64 {
	rng := total - viewport
	if rng <= 0 {
		return 1
	}
	return clamp(float64(scroll)/float64(rng), 0, 1)
}

func Scrolled(scroll int) bool {
	return scroll > ScrolledThreshold
}

// Transform maps p through the piecewise-linear curve defined by in and
// out, clamping outside the first and last stops. in must be ascending and
// the same length as out.
func Transform(p float64, in, out []float64) float64 {
	if len(in) == 0 || len(in) != len(out) {
		return 0
	}
	if p <= in[0] {
		return out[0]
	}
	last := len(in) - 1
	if p >= in[last] {
		return out[last]
	}
	for i := 1; i <= last; i++ {
		if p <= in[i] {
			span := in[i] - in[i-1]
			if span == 0 {
				return out[i]
			}
			t := (p - in[i-1]) / span
			return out[i-1] + t*(out[i]-out[i-1])
		}
	}
	return out[last]
}

// SectionProgress is how far a section has travelled through the viewport:
// 0 when its top enters at the bottom edge, 1 when its bottom leaves at the
// top edge.
func SectionProgress(e Extent, scroll, viewport int) float64 {
	start := e.Top - viewport
	end := e.Bottom
	if end <= start {
		return 0
	}
	return clamp(float64(scroll-start)/float64(end-start), 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
