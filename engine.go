package wikimark

import (
	"strings"
	"sync"
	"time"

	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/classify"
	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/markdown"
	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/scanner"
	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/session"
	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/types"
)

// Engine watches a document for freshly typed bracket links and converts them
// to the [[canonical|displayed]] form.
//
// Concurrency model: every turn against the editor (classification pass,
// delayed write, explicit command) runs under one mutex, so turns never
// interleave; no lock is held across the debounce timer, the processing delay
// or the confirmation wait. The document may change during any of those
// windows, which is why every write re-validates the target substring first.
type Engine struct {
	editor    Editor
	settings  SettingsStore
	notifier  NotifyFunc
	confirmer Confirmer

	offered *session.Cache
	deb     *Debouncer

	mu   sync.Mutex
	busy bool

	closed    chan struct{}
	closeOnce sync.Once
}

// NewEngine creates an engine over the host editor surface.
func NewEngine(editor Editor, opts ...Option) *Engine {
	e := &Engine{
		editor:  editor,
		offered: session.NewCache(),
		deb:     NewDebouncer(),
		closed:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.settings == nil {
		e.settings = StaticSettings(DefaultSettings())
	}
	return e
}

// HandleChange is the edit-notification entry point. Calls are cheap and may
// arrive on every keystroke; a classification pass runs only once the stream
// has been quiet for the configured delay.
func (e *Engine) HandleChange() {
	if e.isClosed() {
		return
	}
	e.deb.Trigger(e.conf().ProcessingDelay(), e.pass)
}

// Close tears the engine down: pending timers are cancelled, open
// confirmations resolve as declined, and the offered-set is cleared.
// Idempotent.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		close(e.closed)
		e.deb.Stop()
		e.offered.Clear()
	})
}

// ClearOffered forgets all previously offered occurrences, so they may be
// offered again. Hosts call this at document-close boundaries.
func (e *Engine) ClearOffered() {
	e.offered.Clear()
}

// OfferedCount returns the size of the offered-set. The set only ever grows
// within a session.
func (e *Engine) OfferedCount() int {
	return e.offered.Len()
}

// pass is one classification turn: scan the cursor line, pick at most one new
// occurrence, and schedule its conversion. A fresh pass is required for the
// next occurrence, which keeps rewrites on one line from corrupting each
// other's offsets.
func (e *Engine) pass() {
	e.mu.Lock()
	if e.busy || e.isClosed() {
		e.mu.Unlock()
		return
	}
	e.busy = true
	defer func() {
		if r := recover(); r != nil {
			Logger.Printf("editor failure during scan: %v", r)
		}
		e.busy = false
		e.mu.Unlock()
	}()

	cfg := e.conf()
	cur := e.editor.GetCursor()
	line := e.editor.GetLine(cur.Line)

	if cfg.AutoConvertEmpty {
		for _, occ := range scanner.ScanEmptyMarkers(line, cur.Line) {
			if !classify.InsideEmptyMarker(occ, cur) {
				continue
			}
			go e.completeEmptyMarker(occ, cfg)
			return
		}
	}

	if !cfg.AutoConvert {
		return
	}
	mask, lineOff := e.docMask(cur.Line)
	for _, occ := range scanner.ScanLine(line, cur.Line) {
		if !classify.Convertible(occ) {
			continue
		}
		if markdown.Overlaps(mask, lineOff+occ.Start, lineOff+occ.End) {
			continue
		}
		if e.offered.Seen(occ.Key()) {
			continue
		}
		if !classify.NearCompletedMarker(occ, cur) {
			continue
		}
		// Record before the confirmation opens: a second edit event firing
		// inside the confirmation window must not re-offer this occurrence.
		e.offered.Mark(occ.Key())
		go e.offerConversion(occ, cfg)
		return
	}
}

// offerConversion runs the confirmation gate for one occurrence, then the
// accepted or declined path.
func (e *Engine) offerConversion(occ types.Occurrence, cfg Settings) {
	g := newGate()
	if e.confirmer == nil {
		g.resolve(false)
	} else {
		func() {
			defer func() {
				if r := recover(); r != nil {
					Logger.Printf("confirmer failure: %v", r)
					g.resolve(false)
				}
			}()
			e.confirmer.Confirm(occ.Inner, g.resolve)
		}()
	}

	if g.await(cfg.ConfirmTimeout(), e.closed) {
		e.insertPipe(occ, cfg)
		return
	}
	if e.isClosed() {
		return
	}
	e.declineConversion(occ)
}

// docMask builds the code-region mask over the whole document and returns it
// together with the byte offset of line n within the joined source. A single
// line carries no fence context, so masking always reads the full document.
func (e *Engine) docMask(n int) ([]markdown.Range, int) {
	count := e.editor.LineCount()
	lines := make([]string, count)
	for i := 0; i < count; i++ {
		lines[i] = e.editor.GetLine(i)
	}
	mask := markdown.CodeRanges([]byte(strings.Join(lines, "\n")))
	off := 0
	for i := 0; i < n && i < count; i++ {
		off += len(lines[i]) + 1
	}
	return mask, off
}

// conf reads the live settings record. Consulted at every decision point so a
// store may change values between turns.
func (e *Engine) conf() Settings {
	return e.settings.Settings()
}

func (e *Engine) notify(message string) {
	if e.notifier == nil || !e.conf().Notifications {
		return
	}
	e.notifier(message)
}

func (e *Engine) isClosed() bool {
	select {
	case <-e.closed:
		return true
	default:
		return false
	}
}

// wait sleeps out the processing delay. Returns false when the engine closed
// in the meantime.
func (e *Engine) wait(d time.Duration) bool {
	if d <= 0 {
		return !e.isClosed()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-e.closed:
		return false
	}
}
