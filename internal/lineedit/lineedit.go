// Package lineedit applies successive replacements to one line of text while
// keeping the caller's offsets valid.
package lineedit

// Splicer rewrites a single line through replacements expressed in the
// line's ORIGINAL byte coordinates. Each replacement shifts everything after
// it, so the splicer tracks the running length delta and adjusts internally;
// callers keep using the offsets their scan produced.
//
// Replacements must be non-overlapping and applied left to right.
type Splicer struct {
	line  string
	delta int
	count int
}

// New creates a splicer over the line's current content.
func New(line string) *Splicer {
	return &Splicer{line: line}
}

// Replace substitutes the original-coordinate range [start, end) with repl.
// Returns false without modifying anything when the adjusted range is out of
// bounds or inverted.
func (s *Splicer) Replace(start, end int, repl string) bool {
	from := start + s.delta
	to := end + s.delta
	if from < 0 || to > len(s.line) || from > to {
		return false
	}
	s.line = s.line[:from] + repl + s.line[to:]
	s.delta += len(repl) - (end - start)
	s.count++
	return true
}

// Current returns the text at the original-coordinate range [start, end),
// or "" when the adjusted range is out of bounds. Used for the re-validation
// step before a replacement.
func (s *Splicer) Current(start, end int) string {
	from := start + s.delta
	to := end + s.delta
	if from < 0 || to > len(s.line) || from > to {
		return ""
	}
	return s.line[from:to]
}

// Result returns the line after all replacements so far.
func (s *Splicer) Result() string {
	return s.line
}

// Count returns the number of replacements applied.
func (s *Splicer) Count() int {
	return s.count
}

// Changed reports whether any replacement was applied.
func (s *Splicer) Changed() bool {
	return s.count > 0
}
