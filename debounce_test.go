package wikimark

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := NewDebouncer()
	defer d.Stop()

	var fired int32
	for i := 0; i < 20; i++ {
		d.Trigger(30*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
		time.Sleep(time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&fired) == 1
	}, 2*time.Second, 2*time.Millisecond)

	// Quiet period over: no further fires.
	time.Sleep(60 * time.Millisecond)
	assert.EqualValues(t, 1, atomic.LoadInt32(&fired))
}

func TestDebouncer_NewTriggerReplacesPending(t *testing.T) {
	d := NewDebouncer()
	defer d.Stop()

	var got int32
	d.Trigger(20*time.Millisecond, func() { atomic.StoreInt32(&got, 1) })
	d.Trigger(20*time.Millisecond, func() { atomic.StoreInt32(&got, 2) })

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&got) != 0
	}, 2*time.Second, 2*time.Millisecond)
	assert.EqualValues(t, 2, atomic.LoadInt32(&got), "the later trigger replaces the earlier one")
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := NewDebouncer()

	var fired int32
	d.Trigger(20*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&fired))
}

func TestDebouncer_RejectsTriggersAfterStop(t *testing.T) {
	d := NewDebouncer()
	d.Stop()

	var fired int32
	d.Trigger(time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&fired))
}

func TestDebouncer_ZeroDelayStillDefers(t *testing.T) {
	d := NewDebouncer()
	defer d.Stop()

	done := make(chan struct{})
	d.Trigger(0, func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("zero-delay trigger never fired")
	}
}
