package catalog

import "lightpanel-go/animation"

var steppingMezi = animation.Program{
	{100, d{15, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{100, d{12, 3, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{100, d{9, 6, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{100, d{6, 9, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0}, load, 0},
	{100, d{3, 12, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0}, load, 0},
	{100, d{0, 15, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0}, load, 0},
	{100, d{3, 12, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0}, load, 0},
	{100, d{6, 9, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0}, load, 0},
	{100, d{9, 6, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0}, load, 0},
	{100, d{12, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15}, load, 0},
}

var steppingMeziRGB = animation.RGBProgram{
	{1000, c{0, 0, 0}, load, 0},
}

var split2Mezi = animation.Program{
	{500, d{15, 0, 15, 0, 15, 0, 8, 8, 15, 0, 15, 0}, load, 0},
	{500, d{0, 15, 0, 15, 0, 15, 8, 8, 0, 15, 0, 15}, load, 0},
}

var split2MeziRGB = animation.RGBProgram{
	{1000, c{0, 0, 0}, load, 0},
}

var flasherNoEyesMezi = animation.Program{
	{500, d{15, 15, 15, 15, 15, 15, 8, 8, 15, 15, 15, 15}, load, 0},
	{500, d{0, 0, 0, 0, 0, 0, 8, 8, 0, 0, 0, 0}, load, 0},
}

var flasherNoEyesMeziRGB = animation.RGBProgram{
	{1000, c{0, 0, 0}, load, 0},
}

var mezi = animation.Catalog{
	SKU: "mezi",
	Animations: []animation.Animation{
		{Name: "retro", Mono: retroVersion, RGB: retroVersionRGB},
		{Name: "soft_flashing", Mono: softFlashing, RGB: softFlashingRGB},
		{Name: "disco", Mono: disco, RGB: discoRGB},
		{Name: "fade_ring", Mono: fadeRing, RGB: fadeRingRGB},
		{Name: "flasher", Mono: genericFlasher, RGB: genericFlasherRGB},
		{Name: "random_fade", Mono: pseudoRandomFade, RGB: pseudoRandomFadeRGB},
		{Name: "stepping", Mono: steppingMezi, RGB: steppingMeziRGB},
		{Name: "split", Mono: split2Mezi, RGB: split2MeziRGB},
		{Name: "sparkle", Mono: sparkle, RGB: sparkleRGB},
		{Name: "flasher_no_eyes", Mono: flasherNoEyesMezi, RGB: flasherNoEyesMeziRGB},
		{Name: "blackness", Mono: blackness, RGB: blacknessRGB},
	},
}
