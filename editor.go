package wikimark

// Editor is the host text-editing surface the engine operates on. All calls
// are synchronous and immediately consistent: after ReplaceRange returns,
// GetLine reflects the new content.
//
// All offsets (cursor Ch, range bounds) are byte offsets into the UTF-8 text
// of the addressed line. Hosts counting in runes or UTF-16 code units convert
// in their adapter.
type Editor interface {
	// GetCursor returns the current caret position.
	GetCursor() Position

	// GetLine returns the content of line n without a trailing newline.
	GetLine(n int) string

	// LineCount returns the number of lines in the document.
	LineCount() int

	// ReplaceRange replaces the text between from and to with text.
	// from and to must address the same line; to.Ch is exclusive.
	ReplaceRange(text string, from, to Position)

	// SetCursor moves the caret.
	SetCursor(pos Position)

	// GetSelection returns the currently selected text, "" when nothing is
	// selected.
	GetSelection() string

	// ReplaceSelection replaces the current selection with text and leaves
	// the caret at the end of the inserted text.
	ReplaceSelection(text string)
}

// Confirmer presents the yes/no conversion dialog. Implementations invoke
// resolve with the user's choice; the engine tolerates hosts that call it
// more than once or never (an inactivity timeout resolves to decline).
type Confirmer interface {
	Confirm(subject string, resolve func(accepted bool))
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(subject string, resolve func(accepted bool))

// Confirm calls f.
func (f ConfirmerFunc) Confirm(subject string, resolve func(accepted bool)) {
	f(subject, resolve)
}

// NotifyFunc receives transient user-visible notices. Fire and forget.
type NotifyFunc func(message string)
