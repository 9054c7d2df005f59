// Package platform owns the board resources the HAL hands to devices:
// pins (GPIO or ADC), I2C buses, the console serial port and flash.
// Target specifics live behind a backend chosen by build tags.
package platform

import (
	"sync"

	"lightpanel-go/errcode"
	"lightpanel-go/services/hal/internal/core"

	"tinygo.org/x/drivers"
)

// backend is what a build target supplies to the shared registry.
type backend interface {
	validPin(n int) bool
	gpio(n int) core.GPIOHandle
	adc(n int) (core.ADCHandle, error)
	i2c(id core.ResourceID) (drivers.I2C, bool)
	reset(n int)
}

var _ core.ResourceRegistry = (*Registry)(nil)

type pinOwner struct {
	devID string
	fn    core.PinFunc
}

// Registry tracks which device owns which pin or bus.
type Registry struct {
	mu   sync.Mutex
	be   backend
	pins map[int]pinOwner
	i2c  map[core.ResourceID][]string // bus -> devIDs sharing it
}

func newRegistry(be backend) *Registry {
	return &Registry{be: be, pins: map[int]pinOwner{}, i2c: map[core.ResourceID][]string{}}
}

type pinHandle struct {
	n    int
	fn   core.PinFunc
	gpio core.GPIOHandle
	adc  core.ADCHandle
}

func (h *pinHandle) Pin() int { return h.n }

func (h *pinHandle) AsGPIO() core.GPIOHandle {
	if h.fn != core.FuncGPIOIn && h.fn != core.FuncGPIOOut {
		panic("pin not claimed for GPIO")
	}
	return h.gpio
}

func (h *pinHandle) AsADC() core.ADCHandle {
	if h.fn != core.FuncADC {
		panic("pin not claimed for ADC")
	}
	return h.adc
}

func (r *Registry) ClaimPin(devID string, n int, fn core.PinFunc) (core.PinHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.be.validPin(n) {
		return nil, errcode.UnknownPin
	}
	if o, inUse := r.pins[n]; inUse && o.devID != devID {
		return nil, errcode.PinInUse
	}
	ph := &pinHandle{n: n, fn: fn}
	switch fn {
	case core.FuncGPIOIn, core.FuncGPIOOut:
		ph.gpio = r.be.gpio(n)
	case core.FuncADC:
		a, err := r.be.adc(n)
		if err != nil {
			return nil, err
		}
		ph.adc = a
	default:
		return nil, errcode.Unsupported
	}
	r.pins[n] = pinOwner{devID: devID, fn: fn}
	return ph, nil
}

func (r *Registry) ReleasePin(devID string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.pins[n]; ok && o.devID == devID {
		r.be.reset(n)
		delete(r.pins, n)
	}
}

// ClaimI2C hands out a shared bus. Transfers are serialised by the backend.
func (r *Registry) ClaimI2C(devID string, id core.ResourceID) (drivers.I2C, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.be.i2c(id)
	if !ok {
		return nil, errcode.UnknownBus
	}
	r.i2c[id] = append(r.i2c[id], devID)
	return b, nil
}

func (r *Registry) ReleaseI2C(devID string, id core.ResourceID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := r.i2c[id]
	for i, u := range users {
		if u == devID {
			r.i2c[id] = append(users[:i], users[i+1:]...)
			return
		}
	}
}

// Owner reports the device holding pin n.
func (r *Registry) Owner(n int) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.pins[n]
	return o.devID, ok
}
