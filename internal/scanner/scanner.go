// Package scanner locates wiki-style bracket links within a single line of
// text. Scans are pure functions: no state, deterministic, restartable.
package scanner

import (
	"regexp"

	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/types"
)

// linkRe matches [[text]] where text is one or more non-']' characters.
// No escaping or nesting is recognized; this mirrors the wiki wire format.
var linkRe = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// emptyRe matches exactly the empty marker [[]].
var emptyRe = regexp.MustCompile(`\[\[\]\]`)

// ScanLine returns all bracket-link occurrences on the line, left to right,
// non-overlapping, with byte offsets into content.
func ScanLine(content string, line int) []types.Occurrence {
	return scan(linkRe, content, line)
}

// ScanEmptyMarkers returns all empty-marker occurrences ("[[]]") on the line.
// Inner is always the empty string.
func ScanEmptyMarkers(content string, line int) []types.Occurrence {
	return scan(emptyRe, content, line)
}

func scan(re *regexp.Regexp, content string, line int) []types.Occurrence {
	idx := re.FindAllStringIndex(content, -1)
	if len(idx) == 0 {
		return nil
	}
	occs := make([]types.Occurrence, 0, len(idx))
	for _, m := range idx {
		start, end := m[0], m[1]
		occs = append(occs, types.Occurrence{
			Start: start,
			End:   end,
			Inner: content[start+2 : end-2],
			Full:  content[start:end],
			Line:  line,
		})
	}
	return occs
}
