package main

import (
	"context"
	"fmt"
	"time"

	"lightpanel-go/bus"
	"lightpanel-go/types"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	warmWhite = colorful.Color{R: 1, G: 0.82, B: 0.55}
	unlit     = colorful.Color{R: 0.08, G: 0.08, B: 0.08}
)

type view struct {
	screen tcell.Screen
	sku    string
	frame  types.PanelFrame
	state  types.AnimationState
	power  types.PowerState
}

func newView(s tcell.Screen, sku string) *view { return &view{screen: s, sku: sku} }

// level blends from unlit towards c in Lab space so low levels stay
// distinguishable.
func level(c colorful.Color, v uint8) tcell.Color {
	t := float64(min(v, 15)) / 15
	r, g, b := unlit.BlendLab(c, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func rgbColor(rgb [3]uint8) tcell.Color {
	c := colorful.Color{R: float64(rgb[0]) / 15, G: float64(rgb[1]) / 15, B: float64(rgb[2]) / 15}
	if rgb == ([3]uint8{}) {
		c = unlit
	}
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (v *view) cell(x, y int, col tcell.Color) {
	st := tcell.StyleDefault.Foreground(col)
	for dx := 0; dx < 4; dx++ {
		v.screen.SetContent(x+dx, y, '█', nil, st)
		v.screen.SetContent(x+dx, y+1, '█', nil, st)
	}
}

func (v *view) text(x, y int, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// draw lays the two carry chains out as rows, the RGB cell between them.
func (v *view) draw() {
	v.screen.Clear()
	for i := 0; i < 6; i++ {
		v.cell(2+6*i, 1, level(warmWhite, v.frame.Mono[i]))
		v.cell(2+6*i, 7, level(warmWhite, v.frame.Mono[6+i]))
	}
	v.cell(2+6*2+3, 4, rgbColor(v.frame.RGB))

	status := fmt.Sprintf("%s  #%d %s  (%d)", v.sku, v.state.Index, v.state.Name, v.state.Count)
	if v.power.State == types.PowerOff {
		status += "  OFF: " + v.power.Reason
	}
	v.text(2, 10, status)
	v.text(2, 12, "space press  l long  n next  0-9 select  o off  q quit")
	v.screen.Show()
}

func (v *view) run(ctx context.Context, conn *bus.Connection, onKey func(rune)) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	frames := conn.Subscribe(bus.T("hal", "cap", "io", "panel", "+", "control", "+"))
	state := conn.Subscribe(bus.T("animation", "state"))
	power := conn.Subscribe(bus.T("power", "state"))
	defer conn.Disconnect()

	events := make(chan tcell.Event, 16)
	go pumpEvents(ctx, v.screen.PollEvent, events)

	redraw := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer redraw.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case m := <-frames.Channel():
			switch m.Topic.At(6) {
			case "show":
				if f, ok := m.Payload.(types.PanelFrame); ok {
					v.frame = f
				}
			case "off":
				v.frame = types.PanelFrame{}
			}
		case m := <-state.Channel():
			v.state, _ = m.Payload.(types.AnimationState)
		case m := <-power.Channel():
			v.power, _ = m.Payload.(types.PowerState)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
				if ev.Key() == tcell.KeyRune {
					onKey(ev.Rune())
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		case <-redraw.C:
			v.draw()
		}
	}
}

// pumpEvents forwards polled events until the screen closes or ctx ends.
func pumpEvents(ctx context.Context, poll func() tcell.Event, out chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}
