package catalog

import "lightpanel-go/animation"

var fadeRingRGBRudolf = animation.RGBProgram{
	{40, c{0, 0, 0}, load, 0},
	{40, c{1, 0, 0}, add | repeat, 13},
	{40, c{-1, 0, 0}, add | repeat, 13},
}

var starLaunchRudolf = animation.Program{
	{400, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{200, d{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{200, d{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5}, usource | repeat, 7},
	{200, d{15, 15, 15, 0, 0, 5, 0, 0, 0, 15, 15, 15}, load, 0},
	{200, d{0, 0, 0, 0, 0, 5, 5, 0, 0, 0, 0, 0}, dsource | repeat, 10},
	{200, d{15, 15, 15, 15, 15, 15, 15, 15, 10, 15, 15, 15}, load, 0},
	{200, d{0, 0, 0, -5, 0, 0, 0, 0, -5, 0, 0, 0}, usource | repeat, 7},
	{200, d{15, 15, 15, 0, 0, 0, 0, 0, 0, 10, 15, 15}, load, 0},
	{200, d{0, 0, -5, 0, 0, 0, 0, 0, 0, -5, 0, 0}, dsource | repeat, 8},
}

var discoRudolf = animation.Program{
	{40, d{0, 15, 0, 15, 15, 15, 15, 15, 15, 15, 0, 15}, load, 0},
	{40, d{1, 2, 1, 1, 2, 1, 2, 1, 2, 2, 1, 2}, div | repeat, 3},
	{100, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{40, d{15, 0, 15, 15, 15, 15, 15, 15, 15, 0, 15, 0}, load, 0},
	{40, d{2, 1, 2, 2, 1, 2, 1, 2, 1, 1, 2, 1}, div | repeat, 3},
	{100, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
}

var discoRGBRudolf = animation.RGBProgram{
	{40, c{0, 0, 15}, load, 0},
	{40, c{2, 1, 2}, div | repeat, 3},
	{100, c{0, 0, 0}, load, 0},
	{40, c{0, 15, 0}, load, 0},
	{40, c{2, 2, 1}, div | repeat, 3},
	{100, c{0, 0, 0}, load, 0},
}

var split2Rudolf = animation.Program{
	{500, d{15, 0, 15, 0, 0, 0, 15, 15, 15, 0, 15, 0}, load, 0},
	{500, d{0, 15, 0, 15, 15, 15, 0, 0, 0, 15, 0, 15}, load, 0},
}

var rudolfIntro = animation.Program{
	{40, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{40, d{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0}, add | repeat, 14},
	{40, d{1, 1, 1, -1, -1, -1, -1, -1, -1, 1, 1, 1}, add | repeat, 14},
	{40, d{-1, -1, -1, 0, 0, 0, 0, 0, 0, -1, -1, -1}, add | repeat, 14},
	{40, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
}

var rudolfIntroRGB = animation.RGBProgram{
	{40, c{0, 0, 0}, load, 0},
	{40, c{0, 0, 0}, add | repeat, 14},
	{40, c{0, 0, 0}, add | repeat, 14},
	{40, c{1, 1, 1}, add | repeat, 14},
	{40, c{-1, -1, -1}, add | repeat, 14},
}

var kittRudolf = animation.Program{
	{200, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{100, d{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5}, load, 0},
	{100, d{10, 5, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10}, load, 0},
	{100, d{15, 10, 5, 0, 0, 0, 0, 0, 0, 5, 10, 15}, load, 0},
	{100, d{10, 15, 10, 0, 0, 5, 5, 0, 0, 10, 15, 10}, load, 0},
	{100, d{5, 10, 15, 0, 5, 10, 10, 5, 0, 15, 10, 5}, load, 0},
	{100, d{0, 5, 10, 5, 10, 15, 15, 10, 5, 10, 5, 0}, load, 0},
	{100, d{0, 0, 5, 10, 15, 10, 10, 15, 10, 5, 0, 0}, load, 0},
	{100, d{0, 0, 0, 15, 10, 5, 5, 10, 15, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 10, 5, 0, 0, 5, 10, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 5, 0, 0, 0, 0, 5, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 5, 0, 0, 0, 0, 5, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 10, 5, 0, 0, 5, 10, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 15, 10, 5, 5, 10, 15, 0, 0, 0}, load, 0},
	{100, d{0, 0, 5, 10, 15, 10, 10, 15, 10, 5, 0, 0}, load, 0},
	{100, d{0, 5, 10, 5, 10, 15, 15, 10, 5, 10, 5, 0}, load, 0},
	{100, d{5, 10, 15, 0, 5, 10, 10, 5, 0, 15, 10, 5}, load, 0},
	{100, d{10, 15, 10, 0, 0, 5, 5, 0, 0, 10, 15, 10}, load, 0},
	{100, d{15, 10, 5, 0, 0, 0, 0, 0, 0, 5, 10, 15}, load, 0},
	{100, d{10, 5, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10}, load, 0},
	{100, d{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5}, load, 0},
}

var gamerBlinkingRudolf = animation.Program{
	{2240, d{15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}, load, 0},
	{200, d{15, 15, 15, 0, 0, 0, 0, 0, 0, 15, 15, 15}, load, 0},
	{200, d{15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}, load, 0},
	{200, d{15, 15, 15, 0, 0, 0, 0, 0, 0, 15, 15, 15}, load, 0},
	{200, d{15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}, load, 0},
	{200, d{0, 0, 0, 15, 15, 15, 15, 15, 15, 0, 0, 0}, load, 0},
	{200, d{15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}, load, 0},
	{200, d{0, 0, 0, 15, 15, 15, 15, 15, 15, 0, 0, 0}, load, 0},
}

var gamerBlinkingRudolfRGB = animation.RGBProgram{
	{40, c{15, 0, 0}, load, 0},
	{40, c{0, 1, 0}, add | repeat, 14},
	{40, c{-1, 0, 0}, add | repeat, 14},
	{40, c{0, 0, 1}, add | repeat, 14},
	{40, c{0, -1, 0}, add | repeat, 14},
	{40, c{1, 0, 0}, add | repeat, 14},
	{40, c{0, 0, -1}, add | repeat, 14},
}

var snakeRudolf = animation.Program{
	{150, d{0, 5, 10, 0, 0, 15, 0, 0, 0, 0, 0, 0}, load, 0},
	{150, d{0, 0, 5, 0, 0, 10, 15, 0, 0, 0, 0, 0}, load, 0},
	{150, d{0, 0, 0, 0, 0, 5, 10, 0, 15, 0, 0, 0}, load, 0},
	{150, d{0, 0, 0, 0, 0, 0, 5, 15, 10, 0, 0, 0}, load, 0},
	{150, d{0, 0, 0, 0, 15, 0, 0, 10, 5, 0, 0, 0}, load, 0},
	{150, d{0, 0, 0, 15, 10, 0, 0, 5, 0, 0, 0, 0}, load, 0},
	{150, d{0, 0, 0, 10, 5, 15, 0, 0, 0, 0, 0, 0}, load, 0},
	{150, d{0, 0, 0, 5, 0, 10, 15, 0, 0, 0, 0, 0}, load, 0},
	{150, d{0, 0, 0, 0, 0, 5, 10, 0, 0, 15, 0, 0}, load, 0},
	{150, d{0, 0, 0, 0, 0, 0, 5, 0, 0, 10, 15, 0}, load, 0},
	{150, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10, 15}, load, 0},
	{150, d{15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10}, load, 0},
	{150, d{10, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5}, load, 0},
	{150, d{5, 10, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
}

var snakeRudolfRGB = animation.RGBProgram{
	{525, c{15, 0, 0}, load, 0},
	{525, c{15, 15, 15}, load, 0},
	{525, c{0, 15, 0}, load, 0},
	{525, c{15, 0, 15}, load, 0},
}

var iceRudolf = animation.Program{
	{300, d{0, 0, 0, 0, 0, 15, 15, 0, 0, 0, 0, 0}, load, 0},
	{300, d{0, 0, 15, 0, 15, 10, 10, 15, 0, 15, 0, 0}, load, 0},
	{300, d{0, 15, 10, 15, 10, 5, 5, 10, 15, 10, 15, 0}, load, 0},
	{300, d{15, 10, 5, 10, 5, 0, 0, 5, 10, 5, 10, 15}, load, 0},
	{300, d{10, 5, 0, 5, 0, 0, 0, 0, 5, 0, 5, 10}, load, 0},
	{300, d{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5}, load, 0},
	{300, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
}

var iceRudolfRGB = animation.RGBProgram{
	{150, c{0, 15, 15}, load, 0},
	{60, c{0, -1, 0}, add | repeat, 14},
	{150, c{0, 0, 15}, load, 0},
	{60, c{0, 1, 0}, add | repeat, 14},
}

var rudolf = animation.Catalog{
	SKU: "rudolf",
	Animations: []animation.Animation{
		{Name: "intro", Mono: rudolfIntro, RGB: rudolfIntroRGB},
		{Name: "soft_flashing", Mono: softFlashing, RGB: softFlashingRGB},
		{Name: "flicker", Mono: flicker, RGB: flickerRGB},
		{Name: "star_launch", Mono: starLaunchRudolf, RGB: starLaunchRGB},
		{Name: "disco", Mono: discoRudolf, RGB: discoRGBRudolf},
		{Name: "gamer_blink", Mono: gamerBlinkingRudolf, RGB: gamerBlinkingRudolfRGB},
		{Name: "flasher", Mono: genericFlasher, RGB: genericFlasherRGB},
		{Name: "kitt", Mono: kittRudolf, RGB: kittRGB},
		{Name: "pingpong", Mono: pingpong, RGB: pingpongRGB},
		{Name: "fade_ring", Mono: fadeRing, RGB: fadeRingRGBRudolf},
		{Name: "snake", Mono: snakeRudolf, RGB: snakeRudolfRGB},
		{Name: "stepping", Mono: stepping, RGB: steppingRGB},
		{Name: "sparkle", Mono: sparkle, RGB: sparkleRGB},
		{Name: "race", Mono: race, RGB: raceRGB},
		{Name: "random_fade", Mono: pseudoRandomFade, RGB: pseudoRandomFadeRGB},
		{Name: "ice", Mono: iceRudolf, RGB: iceRudolfRGB},
		{Name: "split", Mono: split2Rudolf, RGB: split2RGB},
		{Name: "blackness", Mono: blackness, RGB: blacknessRGB},
	},
}
