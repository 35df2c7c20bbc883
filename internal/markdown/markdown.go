// Package markdown locates code regions in markdown source so that bracket
// links inside inline code or code blocks are never offered or rewritten.
package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Range is a half-open byte range [Start, Stop) into the scanned source.
type Range struct {
	Start int
	Stop  int
}

// CodeRanges parses the source as markdown and returns the byte ranges
// covered by fenced code blocks, indented code blocks and inline code spans,
// in document order.
func CodeRanges(source []byte) []Range {
	md := goldmark.New()
	reader := text.NewReader(source)
	doc := md.Parser().Parse(reader)

	var ranges []Range
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.FencedCodeBlock:
			ranges = appendSegments(ranges, v.Lines())
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			ranges = appendSegments(ranges, v.Lines())
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan:
			for c := v.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					ranges = append(ranges, Range{Start: t.Segment.Start, Stop: t.Segment.Stop})
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return ranges
}

// Overlaps reports whether [start, stop) intersects any of the ranges.
func Overlaps(ranges []Range, start, stop int) bool {
	for _, r := range ranges {
		if start < r.Stop && stop > r.Start {
			return true
		}
	}
	return false
}

func appendSegments(ranges []Range, lines *text.Segments) []Range {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		ranges = append(ranges, Range{Start: seg.Start, Stop: seg.Stop})
	}
	return ranges
}
