package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPumpEvents_StopsWhenNobodyReads(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	key := tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)
	out := make(chan tcell.Event, 1)

	done := make(chan struct{})
	go func() {
		pumpEvents(ctx, func() tcell.Event { return key }, out)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond) // out is full by now
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event pump still blocked after cancel")
	}
}

func TestPumpEvents_EndsOnClosedScreen(t *testing.T) {
	out := make(chan tcell.Event, 4)
	polls := 0
	pumpEvents(context.Background(), func() tcell.Event {
		polls++
		if polls > 2 {
			return nil
		}
		return tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	}, out)
	if len(out) != 2 {
		t.Fatalf("forwarded %d events, want 2", len(out))
	}
}
