//go:build rp2040

package platform

import (
	"context"
	"sync"
	"time"

	"lightpanel-go/errcode"
	"lightpanel-go/services/hal/internal/core"

	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"
)

// -----------------------------------------------------------------------------
// GPIO and ADC
// -----------------------------------------------------------------------------

type rp2GPIO struct {
	p machine.Pin
	n int
}

func (r *rp2GPIO) Number() int { return r.n }

func (r *rp2GPIO) ConfigureInput(pull core.Pull) error {
	mode := machine.PinInput
	switch pull {
	case core.PullUp:
		mode = machine.PinInputPullup
	case core.PullDown:
		mode = machine.PinInputPulldown
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2GPIO) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2GPIO) Set(b bool) { r.p.Set(b) }
func (r *rp2GPIO) Get() bool  { return r.p.Get() }

// ADC reference is the 3.3 V rail.
const adcRefMilliV = 3300

type rp2ADC struct{ a machine.ADC }

func (r *rp2ADC) ReadMilliVolts() (uint16, error) {
	return uint16(uint32(r.a.Get()) * adcRefMilliV / 0xFFFF), nil
}

// -----------------------------------------------------------------------------
// I²C owner (one worker per bus)
// -----------------------------------------------------------------------------

type i2cReq struct {
	addr uint16
	w, r []byte
	done chan error
}

type i2cOwner struct {
	hw   *machine.I2C
	reqs chan i2cReq
}

func newI2COwner(hw *machine.I2C) *i2cOwner {
	o := &i2cOwner{hw: hw, reqs: make(chan i2cReq, 8)}
	go o.loop()
	return o
}

func (o *i2cOwner) loop() {
	for req := range o.reqs {
		req.done <- o.hw.Tx(req.addr, req.w, req.r)
	}
}

// driversI2C adapts the owner to tinygo.org/x/drivers.I2C with a deadline.
type driversI2C struct {
	o       *i2cOwner
	timeout time.Duration
}

var _ drivers.I2C = (*driversI2C)(nil)

func (d *driversI2C) Tx(addr uint16, w, r []byte) error {
	req := i2cReq{addr: addr, w: w, r: r, done: make(chan error, 1)}
	t := time.NewTimer(d.timeout)
	defer t.Stop()
	select {
	case d.o.reqs <- req:
	case <-t.C:
		return errcode.Busy
	}
	select {
	case err := <-req.done:
		return err
	case <-t.C:
		return errcode.Timeout
	}
}

// -----------------------------------------------------------------------------
// Backend
// -----------------------------------------------------------------------------

type rp2 struct {
	mu   sync.Mutex
	i2c0 *i2cOwner
}

func (b *rp2) validPin(n int) bool        { return n >= 0 && n <= 29 }
func (b *rp2) gpio(n int) core.GPIOHandle { return &rp2GPIO{p: machine.Pin(n), n: n} }

func (b *rp2) adc(n int) (core.ADCHandle, error) {
	if n < 26 || n > 29 {
		return nil, errcode.Unsupported
	}
	machine.InitADC()
	a := machine.ADC{Pin: machine.Pin(n)}
	a.Configure(machine.ADCConfig{})
	return &rp2ADC{a: a}, nil
}

func (b *rp2) reset(n int) {
	machine.Pin(n).Configure(machine.PinConfig{Mode: machine.PinInput})
}

func (b *rp2) i2c(id core.ResourceID) (drivers.I2C, bool) {
	if id != "i2c0" {
		return nil, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.i2c0 == nil {
		hw := machine.I2C0
		_ = hw.Configure(machine.I2CConfig{
			Frequency: 400 * machine.KHz,
			SDA:       machine.I2C0_SDA_PIN,
			SCL:       machine.I2C0_SCL_PIN,
		})
		b.i2c0 = newI2COwner(hw)
	}
	return &driversI2C{o: b.i2c0, timeout: 250 * time.Millisecond}, true
}

var defaultReg = newRegistry(&rp2{})

func Default() *Registry { return defaultReg }

// -----------------------------------------------------------------------------
// Console and flash
// -----------------------------------------------------------------------------

type uartPort struct {
	once sync.Once
	u    *uartx.UART
}

func (p *uartPort) init() {
	p.once.Do(func() {
		_ = p.u.Configure(uartx.UARTConfig{
			BaudRate: 115200,
			TX:       machine.UART0_TX_PIN,
			RX:       machine.UART0_RX_PIN,
		})
	})
}

func (p *uartPort) Write(b []byte) (int, error) { p.init(); return p.u.Write(b) }

func (p *uartPort) RecvSomeContext(ctx context.Context, buf []byte) (int, error) {
	p.init()
	return p.u.RecvSomeContext(ctx, buf)
}

var console = &uartPort{u: uartx.UART0}

func Console() core.SerialPort { return console }

// Flash is the region of on-board flash after the program image.
func Flash() core.BlockDevice { return machine.Flash }
