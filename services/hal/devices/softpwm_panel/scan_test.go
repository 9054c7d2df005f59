//go:build !rp2040

package softpwm_panel

import (
	"context"
	"testing"
	"time"

	"lightpanel-go/services/hal/internal/core"
	"lightpanel-go/services/hal/internal/platform"
	"lightpanel-go/types"
)

func newTestScanner(host *platform.Host) *scanner {
	s := &scanner{}
	for i := range s.led {
		s.led[i] = host.Pin(i)
	}
	s.mux[0], s.mux[1] = host.Pin(10), host.Pin(11)
	s.rgb[0] = host.Pin(12)
	s.init()
	return s
}

func TestScanner_HalvesAndCompare(t *testing.T) {
	_, host := platform.NewHostRegistry()
	s := newTestScanner(host)
	f := types.PanelFrame{}
	f.Mono[0] = 15
	f.Mono[6] = 4
	f.Mono[11] = 1
	f.RGB[0] = 8

	if !host.Pin(10).Get() || host.Pin(11).Get() {
		t.Fatal("right half should be selected after init")
	}

	// Steps 1..15 scan the right half with counters 1..15.
	s.step(&f)
	if !host.Pin(5).Get() {
		t.Fatal("cell 6 (level 4) should light pin 5 at counter 1")
	}
	if host.Pin(0).Get() {
		t.Fatal("cell 11 (level 1) should be off at counter 1")
	}
	for i := 2; i <= 15; i++ {
		s.step(&f)
	}
	if host.Pin(5).Get() || host.Pin(12).Get() {
		t.Fatal("pins should be off at counter 15")
	}

	// Step 16 wraps the counter and selects the left half.
	s.step(&f)
	if s.counter != 0 || !s.left {
		t.Fatalf("counter %d left %v", s.counter, s.left)
	}
	if host.Pin(10).Get() || !host.Pin(11).Get() {
		t.Fatal("mux pins did not flip")
	}
	if !host.Pin(0).Get() || host.Pin(5).Get() {
		t.Fatal("left half: cell 0 on pin 0, cell 5 off")
	}
	if !host.Pin(12).Get() {
		t.Fatal("rgb red should be on at counter 0")
	}
}

func TestScanner_DutyMatchesLevel(t *testing.T) {
	_, host := platform.NewHostRegistry()
	s := newTestScanner(host)
	f := types.PanelFrame{}
	for i := range f.Mono {
		f.Mono[i] = uint8(i + 2)
	}

	// Align to the start of a left window, then count over one full window.
	for !s.left || s.counter != 0 {
		s.step(&f)
	}
	var on [halfCells]int
	for n := 0; n < pwmLevels; n++ {
		for i := range on {
			if host.Pin(i).Get() {
				on[i]++
			}
		}
		s.step(&f)
	}
	for i := range on {
		if on[i] != int(f.Mono[i]) {
			t.Fatalf("pin %d on %d of 16, want %d", i, on[i], f.Mono[i])
		}
	}
}

func TestDevice_ShowAndClose(t *testing.T) {
	reg, host := platform.NewHostRegistry()
	dev, err := builder{}.Build(context.Background(), core.BuilderInput{
		ID:     "panel",
		Params: Params{LED: [6]int{0, 1, 2, 3, 4, 5}, Mux: [2]int{6, 7}, RGB: [3]int{8, -1, -1}, RefreshUs: 100},
		Res:    core.Resources{Reg: reg},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	res, _ := dev.Control(core.CapAddr{}, "show", types.PanelFrame{Mono: [12]uint8{15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}})
	if !res.OK {
		t.Fatalf("show rejected: %v", res.Error)
	}
	if res, _ := dev.Control(core.CapAddr{}, "show", 42); res.OK {
		t.Fatal("bad payload accepted")
	}
	time.Sleep(20 * time.Millisecond)
	if err := dev.Close(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 6; i++ {
		if host.Pin(i).Get() {
			t.Fatalf("pin %d still on after close", i)
		}
	}
	if _, owned := reg.Owner(0); owned {
		t.Fatal("pins not released")
	}
}

func TestBuild_PinConflictReleasesClaims(t *testing.T) {
	reg, _ := platform.NewHostRegistry()
	if _, err := reg.ClaimPin("other", 7, core.FuncGPIOIn); err != nil {
		t.Fatal(err)
	}
	_, err := builder{}.Build(context.Background(), core.BuilderInput{
		ID:     "panel",
		Params: Params{LED: [6]int{0, 1, 2, 3, 4, 5}, Mux: [2]int{6, 7}, RGB: [3]int{-1, -1, -1}},
		Res:    core.Resources{Reg: reg},
	})
	if err == nil {
		t.Fatal("expected conflict")
	}
	if _, owned := reg.Owner(0); owned {
		t.Fatal("partial claims not released")
	}
}
