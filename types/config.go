package types

// HAL configuration supplied on topic "config/hal".

type HALConfig struct {
	Devices []Device `json:"devices"`
}

type Device struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Params any    `json:"params,omitempty"`
}

// PlayerConfig is published on "config/player".
type PlayerConfig struct {
	SKU           string `json:"sku"`
	TickMs        uint16 `json:"tick_ms"`         // engine cycle period
	Panel         string `json:"panel"`           // panel capability name
	Button        string `json:"button"`          // button capability name
	Battery       string `json:"battery"`         // battery capability name, "" disables
	BatteryLayout string `json:"battery_layout"`  // "mirrored", "linear", "pairs"
	BatteryShowMs uint16 `json:"battery_show_ms"` // 0 skips the boot display
	// BatteryFull is the RGB colour lit when the gauge reaches its top level.
	BatteryFull [3]uint8 `json:"battery_full"`
}

// UptimeConfig is published on "config/uptime".
type UptimeConfig struct {
	AutoOffMs uint32 `json:"auto_off_ms"` // 0 disables auto-off
	TickMs    uint16 `json:"tick_ms"`
}

// PersistConfig is published on "config/persist".
type PersistConfig struct {
	Offset   int64 `json:"offset"` // byte offset of the record block on the device
	Size     int64 `json:"size"`   // bytes reserved, a multiple of the erase block
	Disabled bool  `json:"disabled"`
}
