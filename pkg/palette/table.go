package palette

// base colors of the single hue palettes.
var bases = [numPalettes]string{
	Blue:   "#3b82f6",
	Green:  "#22c55e",
	Purple: "#a855f7",
	Orange: "#f97316",
	Rose:   "#f43f5e",
	Teal:   "#14b8a6",
	Slate:  "#64748b",
	Multi:  "#3b82f6",
}

// seriesLevels orders the shades a single hue palette assigns to series.
var seriesLevels = []int{500, 300, 700, 400, 600, 200, 800, 900}

var multiSeries = []string{
	"#3b82f6", "#22c55e", "#f97316", "#a855f7",
	"#f43f5e", "#14b8a6", "#eab308", "#64748b",
}

// table is built once at init and only read afterwards.
var table = buildTable()

func buildTable() [numPalettes]StyleSet {
	var t [numPalettes]StyleSet
	for i := range t {
		n := Name(i)
		shades := Ramp(bases[n])
		set := StyleSet{
			Name:        n,
			Shades:      shades,
			Grid:        "#e5e7eb",
			Axis:        "#9ca3af",
			Text:        "#374151",
			Track:       shades.At(100),
			TooltipBG:   "#111827",
			TooltipText: "#f9fafb",
		}
		if n == Multi {
			set.Series = multiSeries
			set.Track = "#f3f4f6"
		} else {
			set.Series = make([]string, len(seriesLevels))
			for j, l := range seriesLevels {
				set.Series[j] = shades.At(l)
			}
		}
		t[i] = set
	}
	return t
}
