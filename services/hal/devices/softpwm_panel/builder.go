package softpwm_panel

import (
	"context"

	"lightpanel-go/errcode"
	"lightpanel-go/services/hal/internal/core"
	"lightpanel-go/x/strx"
)

func init() { core.RegisterBuilder("softpwm_panel", builder{}) }

type Params struct {
	LED       [6]int // common pins, cell order of the left half
	Mux       [2]int // half-select pins
	RGB       [3]int // red, green, blue; negative means absent
	ActiveLow bool
	RefreshUs uint32 // one counter step; default 250
	Domain    string
	Name      string
}

type builder struct{}

func (builder) Build(ctx context.Context, in core.BuilderInput) (core.Device, error) {
	p, ok := in.Params.(Params)
	if !ok {
		return nil, errcode.InvalidParams
	}
	if p.RefreshUs == 0 {
		p.RefreshUs = 250
	}
	d := &Device{
		id:     in.ID,
		params: p,
		reg:    in.Res.Reg,
		dom:    strx.Coalesce(p.Domain, "io"),
		name:   strx.Coalesce(p.Name, in.ID),
	}
	d.sc.activeLow = p.ActiveLow

	claim := func(n int) (core.GPIOHandle, error) {
		ph, err := in.Res.Reg.ClaimPin(in.ID, n, core.FuncGPIOOut)
		if err != nil {
			d.releaseAll()
			return nil, err
		}
		d.claimed = append(d.claimed, n)
		return ph.AsGPIO(), nil
	}
	var err error
	for i, n := range p.LED {
		if d.sc.led[i], err = claim(n); err != nil {
			return nil, err
		}
	}
	for i, n := range p.Mux {
		if d.sc.mux[i], err = claim(n); err != nil {
			return nil, err
		}
	}
	for i, n := range p.RGB {
		if n < 0 {
			continue
		}
		if d.sc.rgb[i], err = claim(n); err != nil {
			return nil, err
		}
	}
	return d, nil
}
