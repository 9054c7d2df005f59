package softpwm_panel

import (
	"context"
	"sync"
	"time"

	"lightpanel-go/errcode"
	"lightpanel-go/services/hal/internal/core"
	"lightpanel-go/types"
)

type Device struct {
	id      string
	params  Params
	reg     core.ResourceRegistry
	claimed []int

	dom  string
	name string

	mu    sync.Mutex
	frame types.PanelFrame
	sc    scanner

	cancel context.CancelFunc
	done   chan struct{}
}

func (d *Device) ID() string { return d.id }

func (d *Device) Capabilities() []core.CapabilitySpec {
	return []core.CapabilitySpec{{
		Domain: d.dom,
		Kind:   types.KindPanel,
		Name:   d.name,
		Info: types.Info{SchemaVersion: 1, Driver: "softpwm_panel", Detail: types.PanelInfo{
			Cells:  12,
			RGB:    d.sc.rgb[0] != nil || d.sc.rgb[1] != nil || d.sc.rgb[2] != nil,
			Levels: pwmLevels,
		}},
	}}
}

func (d *Device) Init(ctx context.Context) error {
	d.sc.init()
	ctx, d.cancel = context.WithCancel(ctx)
	d.done = make(chan struct{})
	go d.refreshLoop(ctx)
	return nil
}

func (d *Device) Close() error {
	if d.cancel != nil {
		d.cancel()
		<-d.done
		d.cancel = nil
	}
	d.releaseAll()
	return nil
}

func (d *Device) releaseAll() {
	for _, n := range d.claimed {
		d.reg.ReleasePin(d.id, n)
	}
	d.claimed = nil
}

func (d *Device) Control(_ core.CapAddr, verb string, payload any) (core.EnqueueResult, error) {
	switch verb {
	case "show":
		f, code := core.As[types.PanelFrame](payload)
		if code != "" {
			return core.EnqueueResult{OK: false, Error: code}, nil
		}
		d.mu.Lock()
		d.frame = f
		d.mu.Unlock()
		return core.EnqueueResult{OK: true}, nil
	case "off":
		d.mu.Lock()
		d.frame = types.PanelFrame{}
		d.mu.Unlock()
		return core.EnqueueResult{OK: true}, nil
	default:
		return core.EnqueueResult{OK: false, Error: errcode.Unsupported}, nil
	}
}

func (d *Device) refreshLoop(ctx context.Context) {
	defer close(d.done)
	t := time.NewTicker(time.Duration(d.params.RefreshUs) * time.Microsecond)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			d.mu.Lock()
			d.sc.dark()
			d.mu.Unlock()
			return
		case <-t.C:
			d.mu.Lock()
			d.sc.step(&d.frame)
			d.mu.Unlock()
		}
	}
}
