package adc_battery

import (
	"context"

	"lightpanel-go/errcode"
	"lightpanel-go/services/hal/internal/core"
	"lightpanel-go/types"
	"lightpanel-go/x/mathx"
	"lightpanel-go/x/timex"
)

type Device struct {
	id     string
	params Params
	adc    core.ADCHandle

	pub core.EventEmitter
	reg core.ResourceRegistry

	dom  string
	name string
	a    core.CapAddr
}

func (d *Device) ID() string { return d.id }

func (d *Device) Capabilities() []core.CapabilitySpec {
	return []core.CapabilitySpec{{
		Domain: d.dom,
		Kind:   types.KindBattery,
		Name:   d.name,
		Info:   types.Info{SchemaVersion: 1, Driver: "adc_battery", Detail: types.BatteryInfo{Pin: d.params.Pin}},
	}}
}

// Init publishes one sample so the value is retained before anyone asks.
func (d *Device) Init(ctx context.Context) error {
	d.a = core.CapAddr{Domain: d.dom, Kind: types.KindBattery, Name: d.name}
	d.sample()
	return nil
}

func (d *Device) Close() error {
	d.reg.ReleasePin(d.id, d.params.Pin)
	return nil
}

func (d *Device) Control(_ core.CapAddr, verb string, _ any) (core.EnqueueResult, error) {
	switch verb {
	case "read":
		d.sample()
		return core.EnqueueResult{OK: true}, nil
	default:
		return core.EnqueueResult{OK: false, Error: errcode.Unsupported}, nil
	}
}

func (d *Device) sample() {
	ts := timex.NowMs()
	mv, err := d.adc.ReadMilliVolts()
	if err != nil {
		d.pub.Emit(core.Event{Addr: d.a, Err: string(errcode.MapDriverErr(err)), TSms: ts})
		return
	}
	d.pub.Emit(core.Event{Addr: d.a, Payload: types.BatteryValue{MilliV: d.scale(mv)}, TSms: ts})
}

func (d *Device) scale(mv uint16) uint16 {
	v := uint32(mv) * uint32(d.params.DividerNum) / uint32(d.params.DividerDen)
	return uint16(mathx.Clamp(v, 0, 0xFFFF))
}
