//go:build !rp2040

package platform

import (
	"bytes"
	"testing"

	"lightpanel-go/errcode"
	"lightpanel-go/services/hal/internal/core"
)

func TestClaimPin_Ownership(t *testing.T) {
	reg, host := NewHostRegistry()

	ph, err := reg.ClaimPin("button", 3, core.FuncGPIOIn)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if ph.Pin() != 3 || ph.AsGPIO() != host.Pin(3) {
		t.Fatal("handle does not map to host pin")
	}
	if _, err := reg.ClaimPin("panel", 3, core.FuncGPIOOut); err != errcode.PinInUse {
		t.Fatalf("second owner err = %v", err)
	}
	if _, err := reg.ClaimPin("panel", 99, core.FuncGPIOOut); err != errcode.UnknownPin {
		t.Fatalf("bad pin err = %v", err)
	}

	reg.ReleasePin("panel", 3) // not the owner: no effect
	if owner, _ := reg.Owner(3); owner != "button" {
		t.Fatalf("owner %q", owner)
	}
	reg.ReleasePin("button", 3)
	if _, ok := reg.Owner(3); ok {
		t.Fatal("pin still owned")
	}
}

func TestClaimPin_WrongViewPanics(t *testing.T) {
	reg, _ := NewHostRegistry()
	ph, err := reg.ClaimPin("battery", 26, core.FuncADC)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("AsGPIO on an ADC claim should panic")
		}
	}()
	_ = ph.AsGPIO()
}

func TestClaimI2C(t *testing.T) {
	reg, host := NewHostRegistry()
	b, err := reg.ClaimI2C("panel", "i2c0")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Tx(0x40, []byte{1, 2}, nil); err != nil {
		t.Fatal(err)
	}
	w := host.I2C("i2c0").Writes()
	if len(w) != 1 || w[0].Addr != 0x40 || !bytes.Equal(w[0].W, []byte{1, 2}) {
		t.Fatalf("writes %+v", w)
	}
	if _, err := reg.ClaimI2C("panel", "i2c9"); err != errcode.UnknownBus {
		t.Fatalf("unknown bus err = %v", err)
	}
}

func TestFakePin_PullIdle(t *testing.T) {
	_, host := NewHostRegistry()
	p := host.Pin(5)
	_ = p.ConfigureInput(core.PullUp)
	if !p.Get() {
		t.Fatal("pull-up input should idle high")
	}
	p.Drive(false)
	_ = p.ConfigureInput(core.PullUp)
	if p.Get() {
		t.Fatal("driven level should win over the pull")
	}
}

func TestMemFlash_WriteClearsBitsOnly(t *testing.T) {
	f := NewMemFlash(8192, 4096)
	_, _ = f.WriteAt([]byte{0x0F}, 10)
	_, _ = f.WriteAt([]byte{0xF3}, 10)
	b := make([]byte, 1)
	_, _ = f.ReadAt(b, 10)
	if b[0] != 0x03 {
		t.Fatalf("got %#x", b[0])
	}
	if err := f.EraseBlocks(0, 1); err != nil {
		t.Fatal(err)
	}
	_, _ = f.ReadAt(b, 10)
	if b[0] != 0xFF || f.Erases() != 1 {
		t.Fatalf("after erase %#x erases %d", b[0], f.Erases())
	}
	if _, err := f.ReadAt(b, 8192); err == nil {
		t.Fatal("read past end")
	}
}
