package scale

// Index spaces n discrete positions uniformly: Pos(i) = Start + i*Step.
type Index struct {
	Start float64
	Step  float64
	N     int
}

// Points spaces n points across [lo, hi] with the first on lo and the last
// on hi. The step divides by max(n-1, 1) so a single point sits on lo.
func Points(n int, lo, hi float64) Index {
	return Index{Start: lo, Step: (hi - lo) / float64(max(n-1, 1)), N: n}
}

// Bands splits [lo, hi] into n equal slots and positions each index at the
// centre of its slot, as bar charts do.
func Bands(n int, lo, hi float64) Index {
	slot := (hi - lo) / float64(max(n, 1))
	return Index{Start: lo + slot/2, Step: slot, N: n}
}

// Pos returns the pixel position of index i.
func (ix Index) Pos(i int) float64 {
	return ix.Start + float64(i)*ix.Step
}

// Slot returns the width of one band (the step).
func (ix Index) Slot() float64 {
	return ix.Step
}
