package types

// PanelFrame is the payload of the panel "show" control. Levels are 0..15.
type PanelFrame struct {
	Mono [12]uint8 `json:"mono"`
	RGB  [3]uint8  `json:"rgb"`
}

type PanelInfo struct {
	Cells  int    `json:"cells"`
	RGB    bool   `json:"rgb"`
	Levels int    `json:"levels"`
	Bus    string `json:"bus,omitempty"`
	Addr   uint16 `json:"addr,omitempty"`
}

// Button event tags published under hal/cap/io/button/<name>/event/<tag>.
const (
	ButtonShort        = "short"
	ButtonLong         = "long"
	ButtonReleasedLong = "released_long"
)

type ButtonInfo struct {
	Pin         int    `json:"pin"`
	DebounceMs  uint16 `json:"debounce_ms"`
	LongPressMs uint16 `json:"long_press_ms"`
}

type ButtonValue struct {
	Pressed bool `json:"pressed"`
}
