package types

// Position is a cursor position inside a document.
//
// Ch is a byte offset into the UTF-8 text of line Line. All offsets in this
// module are byte offsets; hosts counting in runes or UTF-16 code units
// convert at their adapter.
type Position struct {
	Line int
	Ch   int
}

// Occurrence is one located bracket link within a single line.
// Immutable once produced by a scan.
type Occurrence struct {
	// Start and End are byte offsets of the full match within the line,
	// Start < End.
	Start int
	End   int

	// Inner is the text between the double brackets. Empty for the bare
	// marker "[[]]".
	Inner string

	// Full is the exact matched substring including brackets. Recorded at
	// scan time and compared against the live line before any rewrite; a
	// mismatch means the buffer moved on and the occurrence is dead.
	Full string

	// Line is the line index the occurrence was found on.
	Line int
}

// Key identifies an occurrence for suggestion dedup. Two scans of the same
// unchanged line produce equal keys, so a declined or converted occurrence is
// never offered twice.
type Key struct {
	Line  int
	Start int
	Inner string
}

// Key returns the dedup identity of the occurrence.
func (o Occurrence) Key() Key {
	return Key{Line: o.Line, Start: o.Start, Inner: o.Inner}
}
