// Package hal runs the hardware abstraction service. Devices are built from
// the retained config/hal message and each capability is exposed under
// hal/cap/<domain>/<kind>/<name>/...
package hal

import (
	"context"

	"lightpanel-go/bus"
	"lightpanel-go/services/hal/internal/core"
	"lightpanel-go/services/hal/internal/platform"

	// Device builders register themselves.
	_ "lightpanel-go/services/hal/devices/adc_battery"
	_ "lightpanel-go/services/hal/devices/gpio_button"
	_ "lightpanel-go/services/hal/devices/i2c_panel"
	_ "lightpanel-go/services/hal/devices/softpwm_panel"
)

type (
	Registry    = platform.Registry
	SerialPort  = core.SerialPort
	BlockDevice = core.BlockDevice
)

// Run serves the HAL on the target's default resources until ctx ends.
func Run(ctx context.Context, conn *bus.Connection) {
	RunWith(ctx, conn, platform.Default())
}

// RunWith serves the HAL over an explicit registry.
func RunWith(ctx context.Context, conn *bus.Connection, reg *Registry) {
	core.NewHAL(conn, reg).Run(ctx)
}

// Console is the serial port the command console reads from.
func Console() SerialPort { return platform.Console() }

// Flash is the block device holding persisted settings.
func Flash() BlockDevice { return platform.Flash() }
