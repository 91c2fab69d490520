package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Levels are the shade steps of a Shades table, lightest first.
var Levels = [...]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// Shades is a ramp of one hue indexed like Levels.
type Shades [len(Levels)]string

// blend amounts per level: toward white below 500, toward black above.
var shadeMix = [len(Levels)]float64{0.92, 0.82, 0.62, 0.42, 0.2, 0, 0.16, 0.32, 0.48, 0.62}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{R: 0.06, G: 0.07, B: 0.09}
)

// neutral is used when a color cannot be parsed.
const neutral = "#6b7280"

// Ramp derives a ten step shade table from a base color by blending in Lab
// space. base becomes level 500. An invalid base yields a gray ramp.
func Ramp(base string) Shades {
	c, err := colorful.Hex(base)
	if err != nil {
		c, _ = colorful.Hex(neutral)
	}
	var s Shades
	for i, mix := range shadeMix {
		target := white
		if Levels[i] > 500 {
			target = black
		}
		s[i] = c.BlendLab(target, mix).Clamped().Hex()
	}
	return s
}

// At returns the shade for level (50, 100, ... 900). Levels between steps
// round down; out of range levels clamp.
func (s Shades) At(level int) string {
	idx := 0
	for i, l := range Levels {
		if level >= l {
			idx = i
		}
	}
	return s[idx]
}

// Blend mixes two hex colors in Lab space; t=0 is a, t=1 is b.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return b
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
