// Package data defines the caller-supplied records charts are drawn from.
//
// A Point is an open mapping from field name to value. Charts never assume a
// schema: they read fields through configurable keys, and every numeric read
// is defaulted so that missing, null or malformed values behave as 0.
package data

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Point is one entry of a data sequence, e.g. {"name": "Jan", "value": 42}.
type Point map[string]any

// Value returns the numeric value stored at key.
// Missing keys, nil, non-numeric strings, NaN and ±Inf all read as 0 so that
// no arithmetic downstream can produce a NaN coordinate.
func (p Point) Value(key string) float64 {
	if p == nil {
		return 0
	}
	return toFloat(p[key])
}

// Label returns the display string stored at key, or "" when missing.
func (p Point) Label(key string) string {
	if p == nil {
		return ""
	}
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(t)
	}
}

// Has reports whether key is present with a non-nil value.
func (p Point) Has(key string) bool {
	if p == nil {
		return false
	}
	v, ok := p[key]
	return ok && v != nil
}

func toFloat(v any) float64 {
	var f float64
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int8:
		f = float64(t)
	case int16:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint8:
		f = float64(t)
	case uint16:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case bool:
		if t {
			f = 1
		}
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Series is a named accessor into every Point of a data sequence.
type Series struct {
	Name string
	Key  string
}

// SeriesFromKeys builds one series per key, using the key as its name.
func SeriesFromKeys(keys []string) []Series {
	out := make([]Series, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		out = append(out, Series{Name: k, Key: k})
	}
	return out
}

// Values extracts the series values for every point, in order.
func (s Series) Values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value(s.Key)
	}
	return out
}

// Labels returns the label at key for every point.
func Labels(points []Point, key string) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Label(key)
	}
	return out
}

// NumericKeys returns the keys of the first point whose values are numeric,
// excluding skip, sorted for a stable series order. It lets callers chart
// "every numeric column" without naming them.
func NumericKeys(points []Point, skip ...string) []string {
	if len(points) == 0 {
		return nil
	}
	skipped := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipped[s] = true
	}
	var keys []string
	for k, v := range points[0] {
		if skipped[k] {
			continue
		}
		if isNumeric(v) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func isNumeric(v any) bool {
	switch t := v.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, json.Number:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return err == nil
	default:
		return false
	}
}
