// Package wikimark detects wiki-style bracket links ([[text]]) as a user
// types and offers to convert them into the two-part [[canonical|displayed]]
// form, where canonical is the dictionary form used as the link target and
// displayed is the inflected surface form shown in running text. Written for
// authors working in case-rich languages, where the word in the sentence is
// not the word the cross-reference should point at.
//
// Core features:
//   - Debounced per-keystroke scanning of the cursor line
//   - Confirmation-gated pipe insertion for freshly typed links
//   - Auto-completion of the empty [[]] marker to [[|]]
//   - Whole-document and selection-wrap conversion commands
//   - Code-aware scanning: links inside inline code or code blocks are
//     left alone
//
// The host editor, the confirmation dialog and the notification sink are
// opaque collaborators behind small interfaces; see Editor, Confirmer and
// NotifyFunc. Every buffer write re-validates the target text first and
// silently stands down when the user kept typing.
//
// Example:
//
//	engine := wikimark.NewEngine(editor,
//		wikimark.WithConfirmer(dialog),
//		wikimark.WithNotifier(status.Notify),
//		wikimark.WithSettings(store),
//	)
//	defer engine.Close()
//
//	// from the host's change callback:
//	engine.HandleChange()
package wikimark

import (
	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/scanner"
	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/types"
)

// Re-exported value types.
type Position = types.Position
type Occurrence = types.Occurrence

// ScanLine returns all bracket-link occurrences on the line, left to right,
// with byte offsets into content.
func ScanLine(content string, line int) []Occurrence {
	return scanner.ScanLine(content, line)
}

// ScanEmptyMarkers returns all empty-marker ("[[]]") occurrences on the line.
func ScanEmptyMarkers(content string, line int) []Occurrence {
	return scanner.ScanEmptyMarkers(content, line)
}
