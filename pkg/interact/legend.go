package interact

// Entry is one legend item. Color is the stable palette index of the
// series, independent of which other series are hidden.
type Entry struct {
	Name   string
	Color  int
	Hidden bool
}

// Legend tracks which series or slices are hidden.
type Legend struct {
	// Interactive enables Toggle.
	Interactive bool
	// OnToggle is called after a toggle with the entry index and whether
	// the entry is now shown.
	OnToggle func(index int, active bool)

	entries []Entry
}

// NewLegend returns an interactive legend with every entry shown.
func NewLegend(names []string) *Legend {
	l := &Legend{Interactive: true}
	l.Sync(names)
	return l
}

// Sync replaces the entry list, keeping the hidden flag of entries whose
// name survives.
func (l *Legend) Sync(names []string) {
	hidden := make(map[string]bool, len(l.entries))
	for _, e := range l.entries {
		if e.Hidden {
			hidden[e.Name] = true
		}
	}
	l.entries = make([]Entry, len(names))
	for i, n := range names {
		l.entries[i] = Entry{Name: n, Color: i, Hidden: hidden[n]}
	}
}

// Toggle flips the hidden flag of entry i and fires OnToggle. It reports
// whether anything changed; a non-interactive legend or an out of range
// index changes nothing.
func (l *Legend) Toggle(i int) bool {
	if !l.Interactive || i < 0 || i >= len(l.entries) {
		return false
	}
	l.entries[i].Hidden = !l.entries[i].Hidden
	if l.OnToggle != nil {
		l.OnToggle(i, !l.entries[i].Hidden)
	}
	return true
}

// SetHidden sets the hidden flag of entry i without firing OnToggle.
func (l *Legend) SetHidden(i int, hidden bool) {
	if i >= 0 && i < len(l.entries) {
		l.entries[i].Hidden = hidden
	}
}

// HideByName hides every entry whose name is listed.
func (l *Legend) HideByName(names ...string) {
	for _, n := range names {
		for i := range l.entries {
			if l.entries[i].Name == n {
				l.entries[i].Hidden = true
			}
		}
	}
}

// Hidden returns the hidden mask, indexed like the entries.
func (l *Legend) Hidden() []bool {
	out := make([]bool, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Hidden
	}
	return out
}

// Entries returns a copy of the entries.
func (l *Legend) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Len returns the number of entries.
func (l *Legend) Len() int { return len(l.entries) }

// ActiveCount returns the number of shown entries.
func (l *Legend) ActiveCount() int {
	n := 0
	for _, e := range l.entries {
		if !e.Hidden {
			n++
		}
	}
	return n
}
