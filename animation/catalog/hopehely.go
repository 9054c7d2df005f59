package catalog

import "lightpanel-go/animation"

var softFlashingRGBHopehely = animation.RGBProgram{
	{125, c{0, 0, 0}, load, 0},
	{125, c{0, 0, 1}, add | repeat, 14},
	{125, c{0, 0, 15}, load, 0},
	{125, c{0, 0, -1}, add | repeat, 14},
}

var fadeRingRGBHopehely = animation.RGBProgram{
	{40, c{15, 1, 15}, load, 0},
	{40, c{-1, 0, -1}, add | repeat, 13},
	{40, c{1, 0, 1}, add | repeat, 13},
}

var pseudoRandomFadeRGBHopehely = animation.RGBProgram{
	{9966, c{0, 0, 0}, load, 0},
	{66, c{1, 1, 0}, add | repeat, 14},
	{66, c{-1, -1, 0}, add | repeat, 14},
	{1980, c{0, 0, 0}, load, 0},
}

var sparkleRGBHopehely = animation.RGBProgram{
	{500, c{0, 0, 15}, load, 0},
	{250, c{1, 3, 15}, load, 0},
	{250, c{2, 6, 15}, load, 0},
	{500, c{3, 10, 15}, load, 0},
	{250, c{2, 6, 15}, load, 0},
	{250, c{1, 3, 15}, load, 0},
}

var raceHopehely = animation.Program{
	{100, d{5, 10, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rshift | repeat, 10},
	{70, d{5, 10, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{70, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rshift | repeat, 10},
	{40, d{5, 10, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{40, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rshift | repeat, 10},
}

var raceRGBHopehely = animation.RGBProgram{
	{90, c{0, 0, 0}, load, 0},
	{37, c{1, 0, 0}, add | repeat, 14},
	{37, c{-1, 0, 0}, add | repeat, 14},
	{30, c{0, 0, 0}, load, 0},
	{27, c{0, 1, 0}, add | repeat, 14},
	{27, c{0, -1, 0}, add | repeat, 14},
	{30, c{0, 0, 0}, load, 0},
	{15, c{0, 0, 1}, add | repeat, 14},
	{15, c{0, 0, -1}, add | repeat, 14},
}

var iceHopehely = animation.Program{
	{300, d{0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0}, load, 0},
	{300, d{0, 0, 0, 0, 0, 15, 10, 15, 0, 0, 0, 0}, load, 0},
	{300, d{0, 0, 0, 0, 15, 10, 5, 10, 15, 0, 0, 0}, load, 0},
	{300, d{0, 0, 0, 15, 10, 5, 0, 5, 10, 15, 0, 0}, load, 0},
	{300, d{0, 0, 15, 10, 5, 0, 0, 0, 5, 10, 15, 0}, load, 0},
	{300, d{0, 15, 10, 5, 0, 0, 0, 0, 0, 5, 10, 15}, load, 0},
	{300, d{15, 10, 5, 0, 0, 0, 0, 0, 0, 0, 5, 10}, load, 0},
	{300, d{10, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5}, load, 0},
	{300, d{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{300, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
}

var iceRGBHopehely = animation.RGBProgram{
	{105, c{0, 15, 15}, load, 0},
	{93, c{0, -1, 0}, add | repeat, 14},
	{105, c{0, 0, 15}, load, 0},
	{93, c{0, 1, 0}, add | repeat, 14},
}

var shootingStarHopehely = animation.Program{
	{100, d{5, 10, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rshift | repeat, 10},
}

var shootingStarHopehelyRGB = animation.RGBProgram{
	{50, c{15, 0, 0}, load, 0},
	{50, c{15, 5, 0}, load, 0},
	{50, c{15, 9, 0}, load, 0},
	{50, c{15, 13, 0}, load, 0},
	{50, c{12, 15, 0}, load, 0},
	{50, c{8, 15, 0}, load, 0},
	{50, c{3, 15, 0}, load, 0},
	{50, c{0, 15, 1}, load, 0},
	{50, c{0, 15, 6}, load, 0},
	{50, c{0, 15, 11}, load, 0},
	{50, c{0, 15, 15}, load, 0},
	{50, c{0, 10, 15}, load, 0},
	{50, c{0, 6, 15}, load, 0},
	{50, c{0, 1, 15}, load, 0},
	{50, c{3, 0, 15}, load, 0},
	{50, c{8, 0, 15}, load, 0},
	{50, c{12, 0, 15}, load, 0},
	{50, c{15, 0, 14}, load, 0},
	{50, c{15, 0, 9}, load, 0},
	{50, c{15, 0, 5}, load, 0},
}

var kittHopehely = animation.Program{
	{100, d{15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{100, d{0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15}, load, 0},
	{100, d{0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 15, 0}, load, 0},
	{100, d{0, 0, 0, 15, 0, 0, 0, 0, 0, 15, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 15, 0, 0, 0, 15, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 0, 15, 0, 15, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 0, 15, 0, 15, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 15, 0, 0, 0, 15, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 15, 0, 0, 0, 0, 0, 15, 0, 0}, load, 0},
	{100, d{0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 15, 0}, load, 0},
	{100, d{0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15}, load, 0},
}

var kittHopehelyRGB = animation.RGBProgram{
	{100, c{8, 8, 0}, load, 0},
	{500, c{0, 0, 0}, load, 0},
	{100, c{8, 8, 0}, load, 0},
	{500, c{0, 0, 0}, load, 0},
}

var split2FadeHopehely = animation.Program{
	{200, d{15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0}, load, 0},
	{200, d{12, 3, 12, 3, 12, 3, 12, 3, 12, 3, 12, 3}, load, 0},
	{200, d{9, 6, 9, 6, 9, 6, 9, 6, 9, 6, 9, 6}, load, 0},
	{200, d{6, 9, 6, 9, 6, 9, 6, 9, 6, 9, 6, 9}, load, 0},
	{200, d{3, 12, 3, 12, 3, 12, 3, 12, 3, 12, 3, 12}, load, 0},
	{200, d{0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15}, load, 0},
	{200, d{3, 12, 3, 12, 3, 12, 3, 12, 3, 12, 3, 12}, load, 0},
	{200, d{6, 9, 6, 9, 6, 9, 6, 9, 6, 9, 6, 9}, load, 0},
	{200, d{9, 6, 9, 6, 9, 6, 9, 6, 9, 6, 9, 6}, load, 0},
	{200, d{12, 3, 12, 3, 12, 3, 12, 3, 12, 3, 12, 3}, load, 0},
}

var split2FadeHopehelyRGB = animation.RGBProgram{
	{200, c{15, 15, 15}, load, 0},
	{200, c{12, 12, 15}, load, 0},
	{200, c{9, 9, 15}, load, 0},
	{200, c{6, 6, 15}, load, 0},
	{200, c{3, 3, 15}, load, 0},
	{200, c{0, 0, 15}, load, 0},
	{200, c{3, 3, 15}, load, 0},
	{200, c{6, 6, 15}, load, 0},
	{200, c{9, 9, 15}, load, 0},
	{200, c{12, 12, 15}, load, 0},
}

var split2FadeEaseHopehely = animation.Program{
	{200, d{15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0}, load, 0},
	{200, d{13, 2, 13, 2, 13, 2, 13, 2, 13, 2, 13, 2}, load, 0},
	{200, d{10, 5, 10, 5, 10, 5, 10, 5, 10, 5, 10, 5}, load, 0},
	{200, d{5, 10, 5, 10, 5, 10, 5, 10, 5, 10, 5, 10}, load, 0},
	{200, d{2, 13, 2, 13, 2, 13, 2, 13, 2, 13, 2, 13}, load, 0},
	{200, d{0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15}, load, 0},
	{200, d{2, 13, 2, 13, 2, 13, 2, 13, 2, 13, 2, 13}, load, 0},
	{200, d{5, 10, 5, 10, 5, 10, 5, 10, 5, 10, 5, 10}, load, 0},
	{200, d{10, 5, 10, 5, 10, 5, 10, 5, 10, 5, 10, 5}, load, 0},
	{200, d{13, 2, 13, 2, 13, 2, 13, 2, 13, 2, 13, 2}, load, 0},
}

var split2FadeEaseHopehelyRGB = animation.RGBProgram{
	{200, c{15, 15, 0}, load, 0},
	{200, c{13, 13, 0}, load, 0},
	{200, c{10, 10, 0}, load, 0},
	{200, c{5, 5, 0}, load, 0},
	{200, c{2, 2, 0}, load, 0},
	{200, c{0, 0, 0}, load, 0},
	{200, c{2, 2, 0}, load, 0},
	{200, c{5, 5, 0}, load, 0},
	{200, c{10, 10, 0}, load, 0},
	{200, c{13, 13, 0}, load, 0},
}

var hopehely = animation.Catalog{
	SKU: "hopehely",
	Animations: []animation.Animation{
		{Name: "retro", Mono: retroVersion, RGB: retroVersionRGBYellow},
		{Name: "soft_flashing", Mono: softFlashing, RGB: softFlashingRGBHopehely},
		{Name: "shooting_star", Mono: shootingStarHopehely, RGB: shootingStarHopehelyRGB},
		{Name: "split_fade_ease", Mono: split2FadeEaseHopehely, RGB: split2FadeEaseHopehelyRGB},
		{Name: "flasher", Mono: genericFlasher, RGB: genericFlasherRGB},
		{Name: "kitt", Mono: kittHopehely, RGB: kittHopehelyRGB},
		{Name: "disco", Mono: disco, RGB: discoRGB},
		{Name: "fade_ring", Mono: fadeRing, RGB: fadeRingRGBHopehely},
		{Name: "ying_yang", Mono: yingYang, RGB: yingYangRGB},
		{Name: "random_fade", Mono: pseudoRandomFade, RGB: pseudoRandomFadeRGBHopehely},
		{Name: "race", Mono: raceHopehely, RGB: raceRGBHopehely},
		{Name: "sparkle", Mono: sparkle, RGB: sparkleRGBHopehely},
		{Name: "ice", Mono: iceHopehely, RGB: iceRGBHopehely},
		{Name: "split_fade", Mono: split2FadeHopehely, RGB: split2FadeHopehelyRGB},
		{Name: "stepping", Mono: stepping, RGB: steppingRGB},
		{Name: "blackness", Mono: blackness, RGB: blacknessRGB},
	},
}
