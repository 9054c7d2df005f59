//go:build !rp2040

package platform

import (
	"bufio"
	"context"
	"errors"
	"os"
	"sync"

	"lightpanel-go/services/hal/internal/core"

	"tinygo.org/x/drivers"
)

const hostPins = 30

// ----------------------------- GPIO (host) -----------------------------------

// FakePin is an in-memory pin. Inputs configured with a pull resistor
// idle at the pulled level until a test drives them.
type FakePin struct {
	mu     sync.RWMutex
	number int
	level  bool
	out    bool
	driven bool
	sets   int
}

func (p *FakePin) Number() int { return p.number }

func (p *FakePin) ConfigureInput(pull core.Pull) error {
	p.mu.Lock()
	p.out = false
	if !p.driven {
		p.level = pull == core.PullUp
	}
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.out = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.sets++
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

// Drive sets the level seen by an input, as external hardware would.
func (p *FakePin) Drive(level bool) {
	p.mu.Lock()
	p.level = level
	p.driven = true
	p.mu.Unlock()
}

// IsOutput reports the configured direction.
func (p *FakePin) IsOutput() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.out
}

// ----------------------------- ADC (host) ------------------------------------

type FakeADC struct {
	mu  sync.Mutex
	mv  uint16
	err error
}

func (a *FakeADC) Set(mv uint16, err error) {
	a.mu.Lock()
	a.mv, a.err = mv, err
	a.mu.Unlock()
}

func (a *FakeADC) ReadMilliVolts() (uint16, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mv, a.err
}

// ----------------------------- I²C (host) ------------------------------------

// FakeI2C records every write for inspection.
type FakeI2C struct {
	mu     sync.Mutex
	writes []I2CWrite
	err    error
}

type I2CWrite struct {
	Addr uint16
	W    []byte
}

var _ drivers.I2C = (*FakeI2C)(nil)

func (f *FakeI2C) Tx(addr uint16, w, r []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, I2CWrite{Addr: addr, W: append([]byte(nil), w...)})
	for i := range r {
		r[i] = 0
	}
	return nil
}

// Fail makes every later transfer return err; nil heals the bus.
func (f *FakeI2C) Fail(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func (f *FakeI2C) Writes() []I2CWrite {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]I2CWrite(nil), f.writes...)
}

// ----------------------------- backend ---------------------------------------

// Host is the backend used off-target: by tests and the terminal simulator.
type Host struct {
	mu    sync.Mutex
	pins  map[int]*FakePin
	adcs  map[int]*FakeADC
	buses map[core.ResourceID]*FakeI2C
}

func NewHost() *Host {
	return &Host{
		pins: map[int]*FakePin{},
		adcs: map[int]*FakeADC{},
		buses: map[core.ResourceID]*FakeI2C{
			"i2c0": {},
			"i2c1": {},
		},
	}
}

// NewHostRegistry returns a registry over a fresh Host and the Host itself
// so tests can drive pins and inspect buses.
func NewHostRegistry() (*Registry, *Host) {
	h := NewHost()
	return newRegistry(h), h
}

func (h *Host) Pin(n int) *FakePin {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.pins[n]
	if !ok {
		p = &FakePin{number: n}
		h.pins[n] = p
	}
	return p
}

func (h *Host) ADC(n int) *FakeADC {
	h.mu.Lock()
	defer h.mu.Unlock()
	a, ok := h.adcs[n]
	if !ok {
		a = &FakeADC{mv: 3000}
		h.adcs[n] = a
	}
	return a
}

func (h *Host) I2C(id string) *FakeI2C {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buses[core.ResourceID(id)]
}

func (h *Host) validPin(n int) bool               { return n >= 0 && n < hostPins }
func (h *Host) gpio(n int) core.GPIOHandle        { return h.Pin(n) }
func (h *Host) adc(n int) (core.ADCHandle, error) { return h.ADC(n), nil }
func (h *Host) reset(n int)                       { _ = h.Pin(n).ConfigureInput(core.PullNone) }
func (h *Host) i2c(id core.ResourceID) (drivers.I2C, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.buses[id]
	if !ok {
		return nil, false
	}
	return b, true
}

// ----------------------------- defaults --------------------------------------

var (
	defaultOnce sync.Once
	defaultHost *Host
	defaultReg  *Registry
)

func initDefault() {
	defaultOnce.Do(func() {
		defaultHost = NewHost()
		defaultReg = newRegistry(defaultHost)
	})
}

// Default returns the process-wide registry for this target.
func Default() *Registry { initDefault(); return defaultReg }

// DefaultHost exposes the fakes behind Default.
func DefaultHost() *Host { initDefault(); return defaultHost }

// ----------------------------- console ---------------------------------------

type stdioPort struct {
	once  sync.Once
	lines chan []byte
}

var console = &stdioPort{}

func (p *stdioPort) Write(b []byte) (int, error) { return os.Stdout.Write(b) }

func (p *stdioPort) RecvSomeContext(ctx context.Context, buf []byte) (int, error) {
	p.once.Do(func() {
		p.lines = make(chan []byte, 4)
		go func() {
			sc := bufio.NewScanner(os.Stdin)
			for sc.Scan() {
				p.lines <- append(sc.Bytes(), '\n')
			}
			close(p.lines)
		}()
	})
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return 0, errors.New("console closed")
		}
		return copy(buf, l), nil
	}
}

// Console returns the serial port used by the command console.
func Console() core.SerialPort { return console }

// ----------------------------- flash -----------------------------------------

// MemFlash emulates NOR flash: erased bytes read 0xFF and writes only
// clear bits.
type MemFlash struct {
	mu     sync.Mutex
	data   []byte
	block  int64
	erases int
}

func NewMemFlash(size, block int64) *MemFlash {
	f := &MemFlash{data: make([]byte, size), block: block}
	for i := range f.data {
		f.data[i] = 0xFF
	}
	return f
}

var errRange = errors.New("flash: out of range")

func (f *MemFlash) ReadAt(p []byte, off int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if off < 0 || off+int64(len(p)) > int64(len(f.data)) {
		return 0, errRange
	}
	return copy(p, f.data[off:]), nil
}

func (f *MemFlash) WriteAt(p []byte, off int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if off < 0 || off+int64(len(p)) > int64(len(f.data)) {
		return 0, errRange
	}
	for i, b := range p {
		f.data[off+int64(i)] &= b
	}
	return len(p), nil
}

func (f *MemFlash) Size() int64           { return int64(len(f.data)) }
func (f *MemFlash) EraseBlockSize() int64 { return f.block }

func (f *MemFlash) EraseBlocks(start, n int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	lo, hi := start*f.block, (start+n)*f.block
	if lo < 0 || hi > int64(len(f.data)) {
		return errRange
	}
	for i := lo; i < hi; i++ {
		f.data[i] = 0xFF
	}
	f.erases++
	return nil
}

// Erases counts EraseBlocks calls.
func (f *MemFlash) Erases() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.erases
}

var flash = NewMemFlash(64*1024, 4096)

// Flash returns the block device reserved for settings.
func Flash() core.BlockDevice { return flash }
