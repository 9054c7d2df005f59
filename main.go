// Firmware entry point for the LED panels. The product is chosen at build
// time:
//
//	tinygo flash -target=pico -ldflags="-X main.sku=hopehely" .
package main

import (
	"context"
	"time"

	"lightpanel-go/animation"
	"lightpanel-go/bus"
	"lightpanel-go/services/config"
	"lightpanel-go/services/console"
	"lightpanel-go/services/hal"
	"lightpanel-go/services/persist"
	"lightpanel-go/services/player"
	"lightpanel-go/services/uptime"
	"lightpanel-go/types"
)

var sku = "karifa"

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[main] boot", sku)

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, sku)
	b := bus.NewBus(8)

	println("[main] starting hal …")
	go hal.Run(ctx, b.NewConnection("hal"))

	clock := animation.NewSystemClock()
	persist.New(hal.Flash()).Start(ctx, b.NewConnection("persist"))
	player.New(clock).Start(ctx, b.NewConnection("player"))
	uptime.New(clock).Start(ctx, b.NewConnection("uptime"))
	console.New(hal.Console()).Start(ctx, b.NewConnection("console"))

	println("[main] publishing config …")
	config.NewConfigService().Start(ctx, b.NewConnection("config"))

	mon := b.NewConnection("main").Subscribe(bus.T("power", "state"))
	for m := range mon.Channel() {
		if ps, ok := m.Payload.(types.PowerState); ok {
			println("[main] power", ps.State, ps.Reason)
		}
	}
}
