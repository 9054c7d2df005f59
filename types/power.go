package types

type BatteryInfo struct {
	Pin int `json:"pin"`
}

// Retained value: hal/cap/power/battery/<name>/value
type BatteryValue struct {
	MilliV uint16 `json:"mV"`
}

// PowerState is retained on "power/state".
type PowerState struct {
	State  string `json:"state"`            // "on" or "off"
	Reason string `json:"reason,omitempty"` // "auto_off", "button", "request"
}

const (
	PowerOn  = "on"
	PowerOff = "off"
)

// PowerOffRequest is the payload of "power/control/off".
type PowerOffRequest struct {
	Reason string `json:"reason,omitempty"`
}
