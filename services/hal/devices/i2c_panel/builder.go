package i2c_panel

import (
	"context"

	"lightpanel-go/drivers/pca9685"
	"lightpanel-go/errcode"
	"lightpanel-go/services/hal/internal/core"
	"lightpanel-go/x/strx"
)

func init() { core.RegisterBuilder("i2c_panel", builder{}) }

type Params struct {
	Bus    string // e.g. "i2c0"
	Addr   uint16 // defaults to pca9685.Address if zero
	FreqHz uint32 // PWM frequency; default 1000
	Invert bool
	Domain string
	Name   string
}

type builder struct{}

func (builder) Build(ctx context.Context, in core.BuilderInput) (core.Device, error) {
	p, ok := in.Params.(Params)
	if !ok || p.Bus == "" {
		return nil, errcode.InvalidParams
	}
	if p.Addr == 0 {
		p.Addr = pca9685.Address
	}
	if p.FreqHz == 0 {
		p.FreqHz = 1000
	}
	if _, err := pca9685.Prescale(p.FreqHz); err != nil {
		return nil, errcode.InvalidParams
	}
	i2c, err := in.Res.Reg.ClaimI2C(in.ID, core.ResourceID(p.Bus))
	if err != nil {
		return nil, err
	}
	return &Device{
		id:     in.ID,
		params: p,
		drv:    pca9685.New(i2c),
		pub:    in.Res.Pub,
		reg:    in.Res.Reg,
		dom:    strx.Coalesce(p.Domain, "io"),
		name:   strx.Coalesce(p.Name, in.ID),
		kick:   make(chan struct{}, 1),
	}, nil
}
