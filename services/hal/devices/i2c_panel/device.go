package i2c_panel

import (
	"context"
	"sync"

	"lightpanel-go/drivers/pca9685"
	"lightpanel-go/errcode"
	"lightpanel-go/services/hal/internal/core"
	"lightpanel-go/types"
	"lightpanel-go/x/timex"
)

// Channel layout on the expander: cells 0..11 then red, green, blue.
const (
	monoFirst = 0
	rgbFirst  = 12
	outputs   = 15
)

// gamma maps a 4-bit level to a 12-bit duty (roughly level^2.2).
var gamma = [16]uint16{
	0, 11, 50, 123, 231, 376, 559, 781,
	1043, 1346, 1690, 2077, 2507, 2981, 3499, 4095,
}

type Device struct {
	id     string
	params Params
	drv    pca9685.Device

	pub core.EventEmitter
	reg core.ResourceRegistry

	dom  string
	name string
	a    core.CapAddr

	// Latest frame wins; the writer goroutine drains it.
	mu      sync.Mutex
	pending types.PanelFrame
	kick    chan struct{}

	cancel context.CancelFunc
	done   chan struct{}
}

func (d *Device) ID() string { return d.id }

func (d *Device) Capabilities() []core.CapabilitySpec {
	return []core.CapabilitySpec{{
		Domain: d.dom,
		Kind:   types.KindPanel,
		Name:   d.name,
		Info: types.Info{SchemaVersion: 1, Driver: "i2c_panel", Detail: types.PanelInfo{
			Cells:  12,
			RGB:    true,
			Levels: len(gamma),
			Bus:    d.params.Bus,
			Addr:   d.params.Addr,
		}},
	}}
}

func (d *Device) Init(ctx context.Context) error {
	d.a = core.CapAddr{Domain: d.dom, Kind: types.KindPanel, Name: d.name}
	err := d.drv.Configure(pca9685.Config{
		Address: d.params.Addr,
		FreqHz:  d.params.FreqHz,
		Invert:  d.params.Invert,
	})
	if err != nil {
		return errcode.Wrap(errcode.MapDriverErr(err), "pca9685.configure", err)
	}
	if err := d.drv.AllOff(); err != nil {
		return errcode.Wrap(errcode.MapDriverErr(err), "pca9685.alloff", err)
	}
	ctx, d.cancel = context.WithCancel(ctx)
	d.done = make(chan struct{})
	go d.writer(ctx)
	return nil
}

func (d *Device) Close() error {
	if d.cancel != nil {
		d.cancel()
		<-d.done
		d.cancel = nil
	}
	d.reg.ReleaseI2C(d.id, core.ResourceID(d.params.Bus))
	return nil
}

func (d *Device) Control(_ core.CapAddr, verb string, payload any) (core.EnqueueResult, error) {
	var f types.PanelFrame
	switch verb {
	case "show":
		var code errcode.Code
		if f, code = core.As[types.PanelFrame](payload); code != "" {
			return core.EnqueueResult{OK: false, Error: code}, nil
		}
	case "off":
	default:
		return core.EnqueueResult{OK: false, Error: errcode.Unsupported}, nil
	}
	d.mu.Lock()
	d.pending = f
	d.mu.Unlock()
	select {
	case d.kick <- struct{}{}:
	default:
	}
	return core.EnqueueResult{OK: true}, nil
}

func (d *Device) writer(ctx context.Context) {
	defer close(d.done)
	var duties [outputs]uint16
	for {
		select {
		case <-ctx.Done():
			_ = d.drv.AllOff()
			return
		case <-d.kick:
		}
		d.mu.Lock()
		f := d.pending
		d.mu.Unlock()

		fill(duties[:], &f)
		if err := d.drv.SetDuties(monoFirst, duties[:]); err != nil {
			d.pub.Emit(core.Event{Addr: d.a, Err: string(errcode.MapDriverErr(err)), TSms: timex.NowMs()})
		}
	}
}

// fill converts a frame into expander duties. Levels above 15 clamp.
func fill(dst []uint16, f *types.PanelFrame) {
	for i, v := range f.Mono {
		dst[monoFirst+i] = gamma[min(v, 15)]
	}
	for i, v := range f.RGB {
		dst[rgbFirst+i] = gamma[min(v, 15)]
	}
}
