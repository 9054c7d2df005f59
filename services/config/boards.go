package config

import (
	"errors"

	"lightpanel-go/animation/catalog"
	"lightpanel-go/services/hal/devices/adc_battery"
	"lightpanel-go/services/hal/devices/gpio_button"
	"lightpanel-go/services/hal/devices/i2c_panel"
	"lightpanel-go/services/hal/devices/softpwm_panel"
	"lightpanel-go/types"
)

var errMissingDevice = errors.New("missing device ID in context")

// Capability names shared by every board.
const (
	PanelName   = "front"
	ButtonName  = "mode"
	BatteryName = "cell"
)

// Battery gauge layouts.
const (
	LayoutMirrored = "mirrored"
	LayoutLinear   = "linear"
	LayoutPairs    = "pairs"
)

// Five hours of play before the panel switches itself off.
const autoOffMs = 5 * 60 * 60 * 1000

// Pin plan shared by the multiplexed boards: six common lines, two half
// selects, optional RGB, button to ground, cell voltage on ADC0.
var (
	ledPins = [6]int{0, 1, 2, 3, 4, 5}
	muxPins = [2]int{6, 7}
	rgbPins = [3]int{8, 9, 10}
	noRGB   = [3]int{-1, -1, -1}
)

const (
	buttonPin  = 15
	batteryPin = 26
)

func button() types.Device {
	return types.Device{ID: "button0", Type: "gpio_button", Params: gpio_button.Params{
		Pin: buttonPin, Pull: "up", Invert: true, Name: ButtonName,
	}}
}

func battery() types.Device {
	return types.Device{ID: "battery0", Type: "adc_battery", Params: adc_battery.Params{
		Pin: batteryPin, Name: BatteryName,
	}}
}

func softPanel(rgb [3]int) types.Device {
	return types.Device{ID: "panel0", Type: "softpwm_panel", Params: softpwm_panel.Params{
		LED: ledPins, Mux: muxPins, RGB: rgb, Name: PanelName,
	}}
}

func i2cPanel() types.Device {
	return types.Device{ID: "panel0", Type: "i2c_panel", Params: i2c_panel.Params{
		Bus: "i2c0", Name: PanelName,
	}}
}

// multiplexed describes a coin-cell board with the soft-PWM panel.
func multiplexed(sku string, rgb [3]int, layout string, full [3]uint8) Board {
	return Board{
		HAL: types.HALConfig{Devices: []types.Device{softPanel(rgb), button(), battery()}},
		Player: types.PlayerConfig{
			SKU: sku, TickMs: 1,
			Panel: PanelName, Button: ButtonName, Battery: BatteryName,
			BatteryLayout: layout, BatteryShowMs: 2000, BatteryFull: full,
		},
		Uptime:  types.UptimeConfig{AutoOffMs: autoOffMs, TickMs: 1000},
		Persist: types.PersistConfig{Size: 4096},
	}
}

// expander describes a board driving its LEDs through a PCA9685. These
// have no battery gauge.
func expander(sku string) Board {
	return Board{
		HAL: types.HALConfig{Devices: []types.Device{i2cPanel(), button()}},
		Player: types.PlayerConfig{
			SKU: sku, TickMs: 1,
			Panel: PanelName, Button: ButtonName,
		},
		Uptime:  types.UptimeConfig{AutoOffMs: autoOffMs, TickMs: 1000},
		Persist: types.PersistConfig{Size: 4096},
	}
}

var boards = map[string]Board{
	catalog.Karifa:   multiplexed(catalog.Karifa, rgbPins, LayoutMirrored, [3]uint8{15, 0, 0}),
	catalog.Hoember:  multiplexed(catalog.Hoember, rgbPins, LayoutMirrored, [3]uint8{15, 15, 0}),
	catalog.Hopehely: multiplexed(catalog.Hopehely, rgbPins, LayoutLinear, [3]uint8{15, 15, 15}),
	catalog.Mezi:     multiplexed(catalog.Mezi, noRGB, LayoutPairs, [3]uint8{}),
	catalog.Ajandek:  expander(catalog.Ajandek),
	catalog.Rudolf:   expander(catalog.Rudolf),
}
