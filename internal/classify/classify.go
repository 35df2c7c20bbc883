// Package classify decides whether a scanned occurrence should be acted on
// for the current cursor position.
package classify

import (
	"strings"

	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/types"
)

// InsideEmptyMarker reports whether the caret sits strictly between the
// opening and closing bracket pairs of an empty marker, i.e. inside "[[]]"
// with nothing else there.
func InsideEmptyMarker(occ types.Occurrence, cur types.Position) bool {
	if cur.Line != occ.Line {
		return false
	}
	return cur.Ch > occ.Start+1 && cur.Ch < occ.End-1
}

// NearCompletedMarker reports whether the caret lies within one byte of either
// boundary of the occurrence. Covers the common case of the caret landing
// right after the closing brackets as they are typed.
func NearCompletedMarker(occ types.Occurrence, cur types.Position) bool {
	if cur.Line != occ.Line {
		return false
	}
	return abs(cur.Ch-occ.Start) <= 1 || abs(cur.Ch-occ.End) <= 1
}

// Convertible reports whether the occurrence is still a candidate for pipe
// insertion. Inner text containing a pipe anywhere counts as already
// converted.
func Convertible(occ types.Occurrence) bool {
	return occ.Inner != "" && !strings.Contains(occ.Inner, "|")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
