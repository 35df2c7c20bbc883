package wikimark

import (
	"fmt"
	"strings"

	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/classify"
	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/lineedit"
	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/markdown"
	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/scanner"
	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/types"
)

// stillValid re-reads the target range and compares it to the recorded match.
// A mismatch means the user kept typing and the occurrence is dead; the write
// is dropped silently. Not an error, not logged.
func stillValid(line string, occ types.Occurrence) bool {
	if occ.Start < 0 || occ.End > len(line) {
		return false
	}
	return line[occ.Start:occ.End] == occ.Full
}

// completeEmptyMarker rewrites [[]] to [[|]] after the processing delay and
// leaves the caret between the brackets and the pipe, ready for the
// dictionary form.
func (e *Engine) completeEmptyMarker(occ types.Occurrence, cfg Settings) {
	if !e.wait(cfg.ProcessingDelay()) {
		return
	}
	e.mu.Lock()
	defer func() {
		if r := recover(); r != nil {
			Logger.Printf("editor failure during empty-marker completion: %v", r)
		}
		e.mu.Unlock()
	}()

	line := e.editor.GetLine(occ.Line)
	if !stillValid(line, occ) {
		return
	}
	e.editor.ReplaceRange("[[|]]",
		Position{Line: occ.Line, Ch: occ.Start},
		Position{Line: occ.Line, Ch: occ.End})
	e.editor.SetCursor(Position{Line: occ.Line, Ch: occ.Start + 2})
	e.notify("Type the dictionary form before the pipe")
}

// insertPipe rewrites [[text]] to [[|text]] after the processing delay and
// places the caret right after the opening brackets, so the canonical form is
// typed first.
func (e *Engine) insertPipe(occ types.Occurrence, cfg Settings) {
	if !e.wait(cfg.ProcessingDelay()) {
		return
	}
	e.mu.Lock()
	defer func() {
		if r := recover(); r != nil {
			Logger.Printf("editor failure during pipe insertion: %v", r)
		}
		e.mu.Unlock()
	}()

	line := e.editor.GetLine(occ.Line)
	if !stillValid(line, occ) {
		return
	}
	e.editor.ReplaceRange("[[|"+occ.Inner+"]]",
		Position{Line: occ.Line, Ch: occ.Start},
		Position{Line: occ.Line, Ch: occ.End})
	e.editor.SetCursor(Position{Line: occ.Line, Ch: occ.Start + 2})
	e.notify(fmt.Sprintf("Converted %q, type the dictionary form", occ.Inner))
}

// declineConversion leaves the buffer untouched and moves the caret past the
// closing brackets. The occurrence stays in the offered-set, so it is never
// offered again.
func (e *Engine) declineConversion(occ types.Occurrence) {
	e.mu.Lock()
	defer func() {
		if r := recover(); r != nil {
			Logger.Printf("editor failure after declined conversion: %v", r)
		}
		e.mu.Unlock()
	}()

	line := e.editor.GetLine(occ.Line)
	if !stillValid(line, occ) {
		return
	}
	e.editor.SetCursor(Position{Line: occ.Line, Ch: occ.End})
}

// ConvertDocument converts every un-piped bracket link in the document to the
// pipe form, skipping links inside code regions. Reports the number of
// conversions; zero is reported distinctly. Replacements on one line are
// applied through a splicer so later offsets stay correct as earlier
// rewrites change the line's length.
func (e *Engine) ConvertDocument() int {
	e.mu.Lock()
	if e.busy || e.isClosed() {
		e.mu.Unlock()
		return 0
	}
	e.busy = true
	count := 0
	defer func() {
		if r := recover(); r != nil {
			Logger.Printf("editor failure during document conversion: %v", r)
		}
		e.busy = false
		e.mu.Unlock()
	}()

	n := e.editor.LineCount()
	lines := make([]string, n)
	for i := 0; i < n; i++ {
		lines[i] = e.editor.GetLine(i)
	}
	mask := markdown.CodeRanges([]byte(strings.Join(lines, "\n")))

	lineStart := 0
	for i, line := range lines {
		sp := lineedit.New(line)
		for _, occ := range scanner.ScanLine(line, i) {
			if !classify.Convertible(occ) {
				continue
			}
			if markdown.Overlaps(mask, lineStart+occ.Start, lineStart+occ.End) {
				continue
			}
			if sp.Current(occ.Start, occ.End) != occ.Full {
				continue
			}
			sp.Replace(occ.Start, occ.End, "[[|"+occ.Inner+"]]")
		}
		if sp.Changed() {
			e.editor.ReplaceRange(sp.Result(),
				Position{Line: i, Ch: 0},
				Position{Line: i, Ch: len(line)})
			count += sp.Count()
		}
		lineStart += len(line) + 1
	}

	if count == 0 {
		e.notify("No wiki links to convert")
	} else {
		e.notify(fmt.Sprintf("Converted %d wiki link(s)", count))
	}
	return count
}

// ConvertAtCursor immediately converts the bracket link under the caret,
// without a confirmation dialog. The user asked for this one by name.
func (e *Engine) ConvertAtCursor() {
	e.mu.Lock()
	defer func() {
		if r := recover(); r != nil {
			Logger.Printf("editor failure during cursor conversion: %v", r)
		}
		e.mu.Unlock()
	}()

	cur := e.editor.GetCursor()
	line := e.editor.GetLine(cur.Line)
	mask, lineOff := e.docMask(cur.Line)
	for _, occ := range scanner.ScanLine(line, cur.Line) {
		if cur.Ch < occ.Start || cur.Ch > occ.End {
			continue
		}
		if !classify.Convertible(occ) || markdown.Overlaps(mask, lineOff+occ.Start, lineOff+occ.End) {
			continue
		}
		e.offered.Mark(occ.Key())
		e.editor.ReplaceRange("[[|"+occ.Inner+"]]",
			Position{Line: occ.Line, Ch: occ.Start},
			Position{Line: occ.Line, Ch: occ.End})
		e.editor.SetCursor(Position{Line: occ.Line, Ch: occ.Start + 2})
		e.notify(fmt.Sprintf("Converted %q, type the dictionary form", occ.Inner))
		return
	}
	e.notify("No wiki link under cursor")
}

// WrapSelection wraps the current selection in link brackets, with a leading
// pipe placeholder when withPipe is set. The caret lands after the opening
// brackets (with pipe) or after the closing brackets (without), computed from
// the inserted length alone since the edit is selection-bounded.
func (e *Engine) WrapSelection(withPipe bool) {
	e.mu.Lock()
	defer func() {
		if r := recover(); r != nil {
			Logger.Printf("editor failure during selection wrap: %v", r)
		}
		e.mu.Unlock()
	}()

	sel := e.editor.GetSelection()
	if sel == "" {
		e.notify("Please select some text first")
		return
	}

	wrapped := "[[" + sel + "]]"
	if withPipe {
		wrapped = "[[|" + sel + "]]"
	}
	e.editor.ReplaceSelection(wrapped)

	// The host leaves the caret at the end of the inserted text. For a
	// single-line selection the opening brackets sit len(wrapped) bytes back
	// on the same line; for multi-line selections the caret stays put.
	if withPipe && !strings.Contains(sel, "\n") {
		cur := e.editor.GetCursor()
		e.editor.SetCursor(Position{Line: cur.Line, Ch: cur.Ch - len(wrapped) + 2})
	}
	e.notify("Wrapped selection as wiki link")
}
