package wikimark

import (
	"sync"
	"time"
)

// gate is a one-shot confirmation result cell. Three triggers race to resolve
// it: the host's accept callback, the host's decline callback, and the
// inactivity timeout. Whichever writes first wins; every later trigger is a
// no-op. That holds even against hosts that invoke the resolve callback more
// than once.
type gate struct {
	once sync.Once
	ch   chan bool
}

func newGate() *gate {
	return &gate{ch: make(chan bool, 1)}
}

// resolve records the decision. Only the first call has any effect.
func (g *gate) resolve(accepted bool) {
	g.once.Do(func() {
		g.ch <- accepted
	})
}

// await blocks until the gate resolves. A timeout > 0 arms a timer that
// resolves to decline; timeout 0 waits indefinitely. Closing cancel resolves
// to decline immediately and cancels the timer, so teardown never leaves a
// detached callback armed.
func (g *gate) await(timeout time.Duration, cancel <-chan struct{}) bool {
	if timeout > 0 {
		t := time.AfterFunc(timeout, func() { g.resolve(false) })
		defer t.Stop()
	}
	select {
	case accepted := <-g.ch:
		return accepted
	case <-cancel:
		g.resolve(false)
		return false
	}
}
