package types

// AnimationState is retained on "animation/state".
type AnimationState struct {
	SKU   string `json:"sku"`
	Index int    `json:"index"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Off   bool   `json:"off,omitempty"`
}

// AnimationSelect is the payload of "animation/control/select".
type AnimationSelect struct {
	Index int `json:"index"`
}

// PersistSave is the payload of "persist/control/save".
type PersistSave struct {
	Index uint8 `json:"index"`
}

// PersistRecord is retained on "persist/record" once loaded or saved.
type PersistRecord struct {
	Index uint8 `json:"index"`
	Valid bool  `json:"valid"`
}
