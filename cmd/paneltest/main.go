// Command paneltest brings up only the HAL for one product and walks test
// patterns across the panel while printing every hal/ message. Used on the
// bench to check the LED wiring.
package main

import (
	"context"
	"runtime"
	"time"

	"lightpanel-go/bus"
	"lightpanel-go/services/config"
	"lightpanel-go/services/hal"
	"lightpanel-go/types"
	"lightpanel-go/x/conv"
)

var sku = "karifa"

const (
	stepDelay = 150 * time.Millisecond
	dwell     = time.Second
)

// itoa formats without fmt.
func itoa(i int) string {
	var buf [20]byte
	return string(conv.Itoa(buf[:], int64(i)))
}

func printTopicWith(prefix string, t bus.Topic) {
	print(prefix, " ")
	for i := 0; i < t.Len(); i++ {
		if i > 0 {
			print("/")
		}
		print(t.At(i))
	}
	println()
}

// patterns yields the frames of one test cycle: each cell alone, a level
// ramp on all cells, then each RGB channel.
func patterns() []types.PanelFrame {
	var out []types.PanelFrame
	for i := 0; i < 12; i++ {
		var f types.PanelFrame
		f.Mono[i] = 15
		out = append(out, f)
	}
	for lv := uint8(0); lv <= 15; lv++ {
		var f types.PanelFrame
		for i := range f.Mono {
			f.Mono[i] = lv
		}
		out = append(out, f)
	}
	for c := 0; c < 3; c++ {
		var f types.PanelFrame
		f.RGB[c] = 15
		out = append(out, f)
	}
	return out
}

func main() {
	time.Sleep(3 * time.Second)
	board, ok := config.EmbeddedConfigLookup(sku)
	if !ok {
		println("[main] unknown sku", sku)
		return
	}
	ctx := context.Background()

	println("[main] bootstrapping bus …")
	b := bus.NewBus(4)
	ui := b.NewConnection("ui")

	println("[main] subscribing to hal/# for diagnostics …")
	mon := ui.Subscribe(bus.T("hal", "#"))
	go func() {
		for m := range mon.Channel() {
			if m.Topic.Len() > 5 && m.Topic.At(5) == "control" {
				continue // our own frames
			}
			printTopicWith("[monitor] <-", m.Topic)
		}
	}()

	println("[main] starting hal.Run …")
	go hal.Run(ctx, b.NewConnection("hal"))
	ui.Publish(ui.NewMessage(bus.T("config", "hal"), board.HAL, true))
	time.Sleep(250 * time.Millisecond)

	show := bus.T("hal", "cap", "io", "panel", config.PanelName, "control", "show")
	read := bus.T("hal", "cap", "power", "battery", config.BatteryName, "control", "read")

	for cycle := 1; ; cycle++ {
		println("[main] cycle", itoa(cycle))
		for _, f := range patterns() {
			if _, err := ui.RequestWait(ctx, ui.NewMessage(show, f, false)); err != nil {
				println("[main] show error:", err.Error())
			}
			time.Sleep(stepDelay)
		}
		// Panels without a battery gauge answer unknown_capability.
		if reply, err := ui.RequestWait(ctx, ui.NewMessage(read, nil, false)); err != nil {
			println("[main] read error:", err.Error())
		} else if e, ok := reply.Payload.(types.ErrorReply); ok {
			println("[main] read:", e.Error)
		}
		printMem()
		time.Sleep(dwell)
	}
}

// printMem prints a compact snapshot of TinyGo runtime memory stats.
func printMem() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	println(
		"[mem]",
		"alloc:", uint32(ms.Alloc),
		"heapInuse:", uint32(ms.HeapInuse),
		"mallocs:", uint32(ms.Mallocs),
		"frees:", uint32(ms.Frees),
	)
}
