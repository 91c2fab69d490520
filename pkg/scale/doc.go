// Package scale maps data values and category indices to pixel coordinates.
//
// It owns the plotting rectangle (what is left after axes and legend bands are
// reserved), the value range with its headroom, linear and index mappings,
// axis ticks, stacked accumulation and polar conversion. Every function is a
// pure computation over its inputs; nothing here keeps state between calls.
//
// Degenerate inputs are always defined: an empty sequence projects to empty
// geometry, a single point maps to the first position (spacing divides by
// max(n-1, 1)), and a zero-width value range is widened to exactly one unit.
package scale
