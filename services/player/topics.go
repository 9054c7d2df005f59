package player

import "lightpanel-go/bus"

var (
	topicConfigPlayer = bus.T("config", "player")
	topicRecord       = bus.T("persist", "record")
	topicSave         = bus.T("persist", "control", "save")
	topicControl      = bus.T("animation", "control", "+")
	topicState        = bus.T("animation", "state")
	topicPowerOff     = bus.T("power", "control", "off")
	topicPowerState   = bus.T("power", "state")
	topicButtons      = bus.T("hal", "cap", "io", "button", "+", "event", "+")
	topicBatteries    = bus.T("hal", "cap", "power", "battery", "+", "value")
)

func panelControl(name, verb string) bus.Topic {
	return bus.T("hal", "cap", "io", "panel", name, "control", verb)
}

func batteryRead(name string) bus.Topic {
	return bus.T("hal", "cap", "power", "battery", name, "control", "read")
}
