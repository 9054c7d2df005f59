package adc_battery

import (
	"context"

	"lightpanel-go/errcode"
	"lightpanel-go/services/hal/internal/core"
	"lightpanel-go/x/strx"
)

func init() { core.RegisterBuilder("adc_battery", builder{}) }

// Params describe a battery sensed through a resistor divider. The pack
// voltage is pin mV * DividerNum / DividerDen; both default to 1.
type Params struct {
	Pin        int
	DividerNum uint16
	DividerDen uint16
	Domain     string
	Name       string
}

type builder struct{}

func (builder) Build(ctx context.Context, in core.BuilderInput) (core.Device, error) {
	p, ok := in.Params.(Params)
	if !ok || p.Pin < 0 {
		return nil, errcode.InvalidParams
	}
	if p.DividerNum == 0 {
		p.DividerNum = 1
	}
	if p.DividerDen == 0 {
		p.DividerDen = 1
	}
	ph, err := in.Res.Reg.ClaimPin(in.ID, p.Pin, core.FuncADC)
	if err != nil {
		return nil, err
	}
	return &Device{
		id:     in.ID,
		params: p,
		adc:    ph.AsADC(),
		pub:    in.Res.Pub,
		reg:    in.Res.Reg,
		dom:    strx.Coalesce(p.Domain, "power"),
		name:   strx.Coalesce(p.Name, in.ID),
	}, nil
}
