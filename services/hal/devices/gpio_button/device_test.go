//go:build !rp2040

package gpio_button

import (
	"context"
	"testing"
	"time"

	"lightpanel-go/services/hal/internal/core"
	"lightpanel-go/services/hal/internal/platform"
	"lightpanel-go/types"
)

type chanEmitter chan core.Event

func (c chanEmitter) Emit(ev core.Event) bool {
	select {
	case c <- ev:
		return true
	default:
		return false
	}
}

func waitTag(t *testing.T, evs chanEmitter, want string, within time.Duration) {
	t.Helper()
	deadline := time.After(within)
	for {
		select {
		case ev := <-evs:
			if ev.IsEvent && ev.EventTag == want {
				return
			}
		case <-deadline:
			t.Fatalf("timeout waiting for %q", want)
		}
	}
}

func TestDevice_ShortPressEvent(t *testing.T) {
	reg, host := platform.NewHostRegistry()
	evs := make(chanEmitter, 64)
	dev, err := builder{}.Build(context.Background(), core.BuilderInput{
		ID:     "btn",
		Params: Params{Pin: 3, Pull: "up", Invert: true, DebounceMs: 5, LongPressMs: 1000, Name: "mode"},
		Res:    core.Resources{Reg: reg, Pub: evs},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer dev.Close()

	first := <-evs
	if v, ok := first.Payload.(types.ButtonValue); !ok || v.Pressed {
		t.Fatalf("initial value %#v", first.Payload)
	}

	pin := host.Pin(3)
	pin.Drive(false) // pressed (active low)
	time.Sleep(40 * time.Millisecond)
	pin.Drive(true)
	waitTag(t, evs, types.ButtonShort, 500*time.Millisecond)
}

func TestBuild_RejectsBadParams(t *testing.T) {
	reg, _ := platform.NewHostRegistry()
	_, err := builder{}.Build(context.Background(), core.BuilderInput{
		ID:     "btn",
		Params: "nope",
		Res:    core.Resources{Reg: reg, Pub: make(chanEmitter, 1)},
	})
	if err == nil {
		t.Fatal("expected error")
	}
}
