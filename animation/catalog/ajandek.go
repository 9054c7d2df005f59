package catalog

import "lightpanel-go/animation"

var steppingAjandek = animation.Program{
	{83, d{15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{83, d{0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{83, d{0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{83, d{0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{83, d{0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{83, d{0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0}, load, 0},
	{83, d{0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0}, load, 0},
	{83, d{0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0}, load, 0},
	{83, d{0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0}, load, 0},
	{83, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0}, load, 0},
	{83, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0}, load, 0},
	{83, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15}, load, 0},
}

var split2Ajandek = animation.Program{
	{500, d{15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0}, load, 0},
	{500, d{0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15}, load, 0},
}

var openCloseAjandek = animation.Program{
	{100, d{15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}, load, 0},
	{30, d{-1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1}, add | repeat, 14},
	{30, d{0, -1, 0, 0, 0, 0, 0, 0, 0, 0, -1, 0}, add | repeat, 14},
	{30, d{0, 0, -1, 0, 0, 0, 0, 0, 0, -1, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, 0, -1, 0, 0, -1, 0, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, 0, 0, -1, -1, 0, 0, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, -1, 0, 0, 0, 0, -1, 0, 0, 0}, add | repeat, 14},
	{100, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{30, d{0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0}, add | repeat, 14},
	{30, d{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0}, add | repeat, 14},
	{30, d{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, add | repeat, 14},
}

var masni = animation.Program{
	{100, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{30, d{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, add | repeat, 14},
	{30, d{-1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1}, add | repeat, 14},
	{30, d{0, -1, 1, 0, 0, 0, 0, 0, 0, 1, -1, 0}, add | repeat, 14},
	{30, d{0, 0, -1, 1, 0, 0, 0, 0, 1, -1, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, -1, 1, 0, 0, 1, -1, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, 0, -1, 1, 1, -1, 0, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, 1, 0, -1, -1, 0, 1, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, -1, 0, 0, 0, 0, -1, 0, 0, 0}, add | repeat, 14},
}

var aroundFillAjandek = animation.Program{
	{100, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{30, d{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0}, add | repeat, 14},
	{30, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, add | repeat, 14},
	{30, d{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
	{30, d{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0}, add | repeat, 14},
	{200, d{15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}, load, 0},
}

var aroundAjandek = animation.Program{
	{25, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{5, d{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
	{5, d{0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0}, add | repeat, 14},
	{5, d{0, 0, 0, -1, 0, 0, 0, 1, 0, 0, 0, 0}, add | repeat, 14},
	{5, d{0, 0, 0, 0, 0, 0, -1, 0, 0, 1, 0, 0}, add | repeat, 14},
	{5, d{0, 0, 0, 0, 0, 0, 0, -1, 0, 0, 1, 0}, add | repeat, 14},
	{5, d{0, 0, 0, 0, 0, 0, 0, 0, 0, -1, 0, 1}, add | repeat, 14},
	{5, d{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1, 0}, add | repeat, 14},
	{5, d{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1}, add | repeat, 14},
	{5, d{-1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
	{5, d{0, -1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
	{5, d{0, 0, -1, 0, 0, 1, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
	{5, d{0, 0, 0, 0, -1, 0, 0, 0, 1, 0, 0, 0}, add | repeat, 14},
	{5, d{0, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
	{5, d{0, 0, 0, 0, 0, 0, 0, 0, -1, 0, 0, 0}, add | repeat, 14},
}

var ajandek = animation.Catalog{
	SKU: "ajandekcsomag",
	Animations: []animation.Animation{
		{Name: "retro", Mono: retroVersion, RGB: blacknessRGB},
		{Name: "soft_flashing", Mono: softFlashing, RGB: blacknessRGB},
		{Name: "disco", Mono: disco, RGB: blacknessRGB},
		{Name: "fade_ring", Mono: fadeRing, RGB: blacknessRGB},
		{Name: "flasher", Mono: genericFlasher, RGB: blacknessRGB},
		{Name: "random_fade", Mono: pseudoRandomFade, RGB: blacknessRGB},
		{Name: "around_fill", Mono: aroundFillAjandek, RGB: blacknessRGB},
		{Name: "stepping", Mono: steppingAjandek, RGB: blacknessRGB},
		{Name: "split", Mono: split2Ajandek, RGB: blacknessRGB},
		{Name: "sparkle", Mono: sparkle, RGB: blacknessRGB},
		{Name: "open_close", Mono: openCloseAjandek, RGB: blacknessRGB},
		{Name: "ying_yang", Mono: yingYang, RGB: blacknessRGB},
		{Name: "ribbon", Mono: masni, RGB: blacknessRGB},
		{Name: "around", Mono: aroundAjandek, RGB: blacknessRGB},
		{Name: "blackness", Mono: blackness, RGB: blacknessRGB},
	},
}
