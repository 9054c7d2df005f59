package gpio_button

import (
	"context"
	"time"

	"lightpanel-go/errcode"
	"lightpanel-go/services/hal/internal/core"
	"lightpanel-go/types"
)

type Device struct {
	id     string
	params Params
	gpio   core.GPIOHandle

	pub core.EventEmitter
	reg core.ResourceRegistry

	dom  string
	name string
	a    core.CapAddr

	cancel context.CancelFunc
	done   chan struct{}
}

func (d *Device) ID() string { return d.id }

func (d *Device) Capabilities() []core.CapabilitySpec {
	return []core.CapabilitySpec{{
		Domain: d.dom,
		Kind:   types.KindButton,
		Name:   d.name,
		Info: types.Info{SchemaVersion: 1, Driver: "gpio_button", Detail: types.ButtonInfo{
			Pin:         d.params.Pin,
			DebounceMs:  d.params.DebounceMs,
			LongPressMs: d.params.LongPressMs,
		}},
	}}
}

func (d *Device) Init(ctx context.Context) error {
	d.a = core.CapAddr{Domain: d.dom, Kind: types.KindButton, Name: d.name}
	down := d.down()
	d.pub.Emit(core.Event{Addr: d.a, Payload: types.ButtonValue{Pressed: down}})
	if down {
		println("[hal] button held at start-up, waiting for release")
	}

	ctx, d.cancel = context.WithCancel(ctx)
	d.done = make(chan struct{})
	go d.pollLoop(ctx, newDebouncer(uint32(d.params.DebounceMs), uint32(d.params.LongPressMs), down))
	return nil
}

func (d *Device) Close() error {
	if d.cancel != nil {
		d.cancel()
		<-d.done
	}
	d.reg.ReleasePin(d.id, d.params.Pin)
	return nil
}

func (d *Device) Control(_ core.CapAddr, verb string, _ any) (core.EnqueueResult, error) {
	switch verb {
	case "read":
		d.pub.Emit(core.Event{Addr: d.a, Payload: types.ButtonValue{Pressed: d.down()}})
		return core.EnqueueResult{OK: true}, nil
	default:
		return core.EnqueueResult{OK: false, Error: errcode.Unsupported}, nil
	}
}

func (d *Device) pollLoop(ctx context.Context, db *debouncer) {
	defer close(d.done)
	t := time.NewTicker(time.Duration(d.params.PollMs) * time.Millisecond)
	defer t.Stop()
	start := time.Now()
	was := db.pressed()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			ms := uint32(now.Sub(start).Milliseconds())
			if tag := db.step(ms, d.down()); tag != "" {
				d.pub.Emit(core.Event{Addr: d.a, IsEvent: true, EventTag: tag, Payload: tag})
			}
			if p := db.pressed(); p != was {
				was = p
				d.pub.Emit(core.Event{Addr: d.a, Payload: types.ButtonValue{Pressed: p}})
			}
		}
	}
}

func (d *Device) down() bool {
	if d.params.Invert {
		return !d.gpio.Get()
	}
	return d.gpio.Get()
}
