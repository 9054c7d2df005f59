//go:build !rp2040

package i2c_panel

import (
	"context"
	"errors"
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

func build(t *testing.T, reg core.ResourceRegistry, pub core.EventEmitter) core.Device {
	t.Helper()
	dev, err := builder{}.Build(context.Background(), core.BuilderInput{
		ID:     "panel",
		Params: Params{Bus: "i2c0"},
		Res:    core.Resources{Reg: reg, Pub: pub},
	})
	if err != nil {
		t.Fatal(err)
	}
	return dev
}

// lastBurst waits for a frame-sized write and returns it.
func lastBurst(t *testing.T, bus *platform.FakeI2C) []byte {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		ws := bus.Writes()
		for i := len(ws) - 1; i >= 0; i-- {
			if len(ws[i].W) == 1+4*outputs {
				return ws[i].W
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no frame written")
	return nil
}

func TestShow_WritesGammaDuties(t *testing.T) {
	reg, host := platform.NewHostRegistry()
	dev := build(t, reg, make(chanEmitter, 8))
	if err := dev.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer dev.Close()

	f := types.PanelFrame{}
	f.Mono[0] = 15
	f.Mono[2] = 8
	f.RGB[2] = 15
	if res, _ := dev.Control(core.CapAddr{}, "show", f); !res.OK {
		t.Fatalf("show: %v", res.Error)
	}
	w := lastBurst(t, host.I2C("i2c0"))
	if w[0] != 0x06 {
		t.Fatalf("burst starts at reg %#x", w[0])
	}
	ch := func(n int) []byte { return w[1+4*n : 5+4*n] }
	if c := ch(0); c[1] != 0x10 || c[3] != 0 {
		t.Fatalf("cell 0 not full on: % x", c)
	}
	if c := ch(1); c[3] != 0x10 {
		t.Fatalf("cell 1 not full off: % x", c)
	}
	if c := ch(2); uint16(c[2])|uint16(c[3])<<8 != gamma[8] {
		t.Fatalf("cell 2 duty: % x", c)
	}
	if c := ch(14); c[1] != 0x10 {
		t.Fatalf("blue not full on: % x", c)
	}
}

func TestControl_RejectsBadInput(t *testing.T) {
	reg, _ := platform.NewHostRegistry()
	dev := build(t, reg, make(chanEmitter, 8))
	if res, _ := dev.Control(core.CapAddr{}, "show", "bright"); res.OK {
		t.Fatal("bad payload accepted")
	}
	if res, _ := dev.Control(core.CapAddr{}, "blink", nil); res.OK {
		t.Fatal("unknown verb accepted")
	}
}

func TestWriteError_ReportsDegraded(t *testing.T) {
	reg, host := platform.NewHostRegistry()
	evs := make(chanEmitter, 8)
	dev := build(t, reg, evs)
	if err := dev.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer dev.Close()

	host.I2C("i2c0").Fail(errors.New("nack"))
	dev.Control(core.CapAddr{}, "off", nil)
	select {
	case ev := <-evs:
		if ev.Err != "io_error" {
			t.Fatalf("err %q", ev.Err)
		}
	case <-time.After(time.Second):
		t.Fatal("no error event")
	}
}

func TestInit_FailsWithoutChip(t *testing.T) {
	reg, host := platform.NewHostRegistry()
	host.I2C("i2c0").Fail(errors.New("nack"))
	dev := build(t, reg, make(chanEmitter, 1))
	if err := dev.Init(context.Background()); err == nil {
		t.Fatal("expected init error")
	}
}

func TestBuild_UnknownBus(t *testing.T) {
	reg, _ := platform.NewHostRegistry()
	_, err := builder{}.Build(context.Background(), core.BuilderInput{
		ID: "panel", Params: Params{Bus: "i2c9"}, Res: core.Resources{Reg: reg},
	})
	if err == nil {
		t.Fatal("expected unknown bus")
	}
}

func TestFill_ClampsLevels(t *testing.T) {
	var d [outputs]uint16
	f := types.PanelFrame{}
	f.Mono[3] = 200
	fill(d[:], &f)
	if d[3] != 4095 {
		t.Fatalf("clamped duty %d", d[3])
	}
}
