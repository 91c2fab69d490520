package scale

// Stacked holds the running totals for a stacked layout, indexed
// [series][point]. Hidden series get zero-height entries (base == top) so
// indices stay aligned with the caller's series list.
type Stacked struct {
	Bases  [][]float64
	Tops   [][]float64
	Totals []float64
}

// Stack accumulates values ([series][point]) bottom-up across the visible
// series, in order. visible may be shorter than values; missing entries
// count as visible.
func Stack(values [][]float64, visible []bool) Stacked {
	n := 0
	for _, row := range values {
		n = max(n, len(row))
	}
	st := Stacked{
		Bases:  make([][]float64, len(values)),
		Tops:   make([][]float64, len(values)),
		Totals: make([]float64, n),
	}
	for s := range values {
		st.Bases[s] = make([]float64, n)
		st.Tops[s] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		acc := 0.0
		for s, row := range values {
			st.Bases[s][i] = acc
			if isVisible(visible, s) && i < len(row) {
				acc += row[i]
			}
			st.Tops[s][i] = acc
		}
		st.Totals[i] = acc
	}
	return st
}

// Extent returns every base and top of the visible series, suitable for
// computing the value range of a stacked chart.
func (st Stacked) Extent(visible []bool) []float64 {
	var out []float64
	for s := range st.Tops {
		if !isVisible(visible, s) {
			continue
		}
		out = append(out, st.Bases[s]...)
		out = append(out, st.Tops[s]...)
	}
	return out
}

// TopVisible returns the index of the last visible series, or -1.
func TopVisible(visible []bool, n int) int {
	for s := n - 1; s >= 0; s-- {
		if isVisible(visible, s) {
			return s
		}
	}
	return -1
}

func isVisible(visible []bool, s int) bool {
	return s >= len(visible) || visible[s]
}
