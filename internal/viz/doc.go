// Package viz draws the portfolio in the terminal with lipgloss.
//
//   - [BarChart]: the sorting visualizer's bars with eighth-block tops
//   - [Canvas]: braille canvas for compact, high-resolution bars
//   - [Theme]: color schemes, cycled with the T key
//
// Bars are shaded between a theme's BarLow and BarHigh colors using the
// render adapter's opacity, the terminal stand-in for the site's
// translucent gray gradient.
package viz
