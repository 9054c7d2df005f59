package gpio_button

import (
	"context"

	"lightpanel-go/errcode"
	"lightpanel-go/services/hal/internal/core"
	"lightpanel-go/x/strx"
)

func init() { core.RegisterBuilder("gpio_button", builder{}) }

type Params struct {
	Pin         int
	Pull        string // "none","up","down"
	Invert      bool   // true if pressed == low
	DebounceMs  uint16 // default 50
	LongPressMs uint16 // default 2000
	PollMs      uint16 // default 1
	Domain      string
	Name        string
}

type builder struct{}

func (builder) Build(ctx context.Context, in core.BuilderInput) (core.Device, error) {
	p, ok := in.Params.(Params)
	if !ok || p.Pin < 0 {
		return nil, errcode.InvalidParams
	}
	ph, err := in.Res.Reg.ClaimPin(in.ID, p.Pin, core.FuncGPIOIn)
	if err != nil {
		return nil, err
	}
	gpio := ph.AsGPIO()
	switch p.Pull {
	case "up":
		_ = gpio.ConfigureInput(core.PullUp)
	case "down":
		_ = gpio.ConfigureInput(core.PullDown)
	default:
		_ = gpio.ConfigureInput(core.PullNone)
	}
	if p.DebounceMs == 0 {
		p.DebounceMs = 50
	}
	if p.LongPressMs == 0 {
		p.LongPressMs = 2000
	}
	if p.PollMs == 0 {
		p.PollMs = 1
	}
	return &Device{
		id:     in.ID,
		params: p,
		gpio:   gpio,
		pub:    in.Res.Pub,
		reg:    in.Res.Reg,
		dom:    strx.Coalesce(p.Domain, "io"),
		name:   strx.Coalesce(p.Name, in.ID),
	}, nil
}
