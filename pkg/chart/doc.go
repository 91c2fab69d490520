// Package chart composes the scale, path, animation and interaction
// packages into the six chart kinds: area, bar, pie, radar, radial and
// sparkline.
//
// Each kind has a pure Compute function that turns data, Options and a
// State snapshot into a Geometry. Compute never fails: empty or degenerate
// data produces an empty Geometry and unknown variant or palette names fall
// back to defaults. A Chart owns the per-instance state (legend, hover,
// animation driver) and renders its current Geometry as an SVG document of
// exactly Options.Width x Options.Height.
package chart
