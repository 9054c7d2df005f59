// Command panelsim runs the full panel firmware on the host and draws the
// panel in the terminal.
//
//	space  short press     l  long press (hold 2.5 s)
//	n      next            0-9 select
//	o      off             q  quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"lightpanel-go/animation"
	"lightpanel-go/animation/catalog"
	"lightpanel-go/bus"
	"lightpanel-go/services/config"
	"lightpanel-go/services/hal"
	"lightpanel-go/services/persist"
	"lightpanel-go/services/player"
	"lightpanel-go/services/uptime"
	"lightpanel-go/types"

	"github.com/gdamore/tcell/v2"
)

// Must match the board plan in services/config.
const (
	buttonPin  = 15
	batteryPin = 26
)

func main() {
	sku := flag.String("sku", catalog.Karifa, "product: "+fmt.Sprint(catalog.SKUs()))
	mv := flag.Uint("battery", 2900, "cell voltage in mV")
	mute := flag.Bool("mute", false, "no button clicks")
	flag.Parse()

	if _, ok := catalog.Lookup(*sku); !ok {
		fmt.Fprintf(os.Stderr, "unknown sku %q\n", *sku)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	snd := newClicker(!*mute)
	defer snd.close()

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), config.CtxDeviceKey, *sku))
	defer cancel()

	board := hal.DefaultHost()
	board.ADC(batteryPin).Set(uint16(*mv), nil)
	board.Pin(buttonPin).Drive(true)

	b := bus.NewBus(16)
	go hal.Run(ctx, b.NewConnection("hal"))
	clock := animation.NewSystemClock()
	persist.New(hal.Flash()).Start(ctx, b.NewConnection("persist"))
	player.New(clock).Start(ctx, b.NewConnection("player"))
	uptime.New(clock).Start(ctx, b.NewConnection("uptime"))
	config.NewConfigService().Start(ctx, b.NewConnection("config"))

	ui := b.NewConnection("ui")
	v := newView(screen, *sku)
	v.run(ctx, ui, func(key rune) {
		switch key {
		case ' ':
			snd.click()
			go press(board.Pin(buttonPin), 120*time.Millisecond)
		case 'l':
			snd.click()
			go press(board.Pin(buttonPin), 2500*time.Millisecond)
		case 'n':
			ui.Publish(ui.NewMessage(bus.T("animation", "control", "next"), nil, false))
		case 'o':
			ui.Publish(ui.NewMessage(bus.T("animation", "control", "off"), nil, false))
		default:
			if key >= '0' && key <= '9' {
				ui.Publish(ui.NewMessage(bus.T("animation", "control", "select"),
					types.AnimationSelect{Index: int(key - '0')}, false))
			}
		}
	})
}

// press holds the active-low button down for d.
func press(p *hal.FakePin, d time.Duration) {
	p.Drive(false)
	time.Sleep(d)
	p.Drive(true)
}
