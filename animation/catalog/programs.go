package catalog

import "lightpanel-go/animation"

// Short names keep the tables readable.
type (
	d = animation.Deltas
	c = animation.RGBDeltas
)

const (
	load    = animation.Load
	add     = animation.Add
	rshift  = animation.RShift
	lshift  = animation.LShift
	div     = animation.Div
	usource = animation.USource
	dsource = animation.DSource
	repeat  = animation.Repeat
)

// Programs shared by more than one product.

var retroVersion = animation.Program{
	{133, d{15, 0, 15, 0, 0, 15, 15, 0, 15, 0, 0, 15}, load, 0},
	{133, d{0, 15, 0, 15, 15, 0, 0, 15, 0, 15, 15, 0}, load, 0},
	{133, d{15, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0}, load, 0},
	{133, d{0, 15, 0, 15, 15, 0, 0, 15, 0, 15, 15, 0}, load, 0},
	{133, d{15, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0}, load, 0},
	{133, d{0, 0, 0, 15, 0, 0, 0, 0, 0, 15, 0, 0}, load, 0},
	{133, d{15, 0, 15, 0, 0, 15, 15, 0, 0, 15, 0, 15}, load, 0},
	{133, d{0, 0, 0, 15, 0, 0, 0, 0, 0, 15, 0, 0}, load, 0},
}

var retroVersionRGB = animation.RGBProgram{
	{133, c{15, 0, 0}, load, 0},
	{665, c{0, 0, 0}, load, 0},
	{133, c{15, 0, 0}, load, 0},
	{133, c{0, 0, 0}, load, 0},
}

var retroVersionRGBYellow = animation.RGBProgram{
	{133, c{15, 15, 0}, load, 0},
	{665, c{0, 0, 0}, load, 0},
	{133, c{15, 15, 0}, load, 0},
	{133, c{0, 0, 0}, load, 0},
}

var softFlashing = animation.Program{
	{125, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{125, d{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, add | repeat, 14},
	{125, d{15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}, load, 0},
	{125, d{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, add | repeat, 14},
}

var softFlashingRGB = animation.RGBProgram{
	{125, c{0, 0, 0}, load, 0},
	{125, c{1, 0, 0}, add | repeat, 14},
	{125, c{15, 0, 0}, load, 0},
	{125, c{-1, 0, 0}, add | repeat, 14},
}

var fadeRing = animation.Program{
	{40, d{15, 1, 15, 1, 15, 1, 1, 15, 1, 15, 1, 15}, load, 0},
	{40, d{-1, 1, -1, 1, -1, 1, 1, -1, 1, -1, 1, -1}, add | repeat, 13},
	{40, d{1, -1, 1, -1, 1, -1, -1, 1, -1, 1, -1, 1}, add | repeat, 13},
}

var fadeRingRGB = animation.RGBProgram{
	{40, c{15, 1, 0}, load, 0},
	{40, c{-1, 0, 0}, add | repeat, 13},
	{40, c{1, 0, 0}, add | repeat, 13},
}

var starLaunch = animation.Program{
	{400, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{200, d{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{200, d{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5}, usource | repeat, 18},
	{200, d{15, 15, 15, 15, 15, 15, 10, 15, 15, 15, 15, 15}, load, 0},
	{200, d{0, 0, 0, 0, 0, -5, -5, 0, 0, 0, 0, 0}, dsource | repeat, 16},
}

var starLaunchRGB = animation.RGBProgram{
	{4000, c{0, 0, 0}, load, 0},
	{800, c{15, 15, 0}, load, 0},
	{200, c{0, -1, 0}, add | repeat, 9},
	{200, c{-3, -1, 0}, add | repeat, 4},
	{200, c{0, 0, 0}, load, 0},
}

var genericFlasher = animation.Program{
	{500, d{15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}, load, 0},
	{500, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
}

var genericFlasherRGB = animation.RGBProgram{
	{500, c{7, 7, 7}, load, 0},
	{500, c{0, 0, 0}, load, 0},
}

var kitt = animation.Program{
	{200, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{100, d{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5}, load, 0},
	{100, d{10, 5, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10}, load, 0},
	{100, d{15, 10, 5, 0, 0, 0, 0, 0, 0, 5, 10, 15}, load, 0},
	{100, d{10, 15, 10, 5, 0, 0, 0, 0, 5, 10, 15, 10}, load, 0},
	{100, d{5, 10, 15, 10, 5, 0, 0, 5, 10, 15, 10, 5}, load, 0},
	{100, d{0, 5, 10, 15, 10, 5, 5, 10, 15, 10, 5, 0}, load, 0},
	{100, d{0, 0, 5, 10, 15, 10, 10, 15, 10, 5, 0, 0}, load, 0},
	{100, d{0, 0, 0, 5, 10, 15, 15, 10, 5, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 5, 10, 10, 5, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 0, 5, 5, 0, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 0, 5, 5, 0, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 5, 10, 10, 5, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 5, 10, 15, 15, 10, 5, 0, 0, 0}, load, 0},
	{100, d{0, 0, 5, 10, 15, 10, 10, 15, 10, 5, 0, 0}, load, 0},
	{100, d{0, 5, 10, 15, 10, 5, 5, 10, 15, 10, 5, 0}, load, 0},
	{100, d{5, 10, 15, 10, 5, 0, 0, 5, 10, 15, 10, 5}, load, 0},
	{100, d{10, 15, 10, 5, 0, 0, 0, 0, 5, 10, 15, 10}, load, 0},
	{100, d{15, 10, 5, 0, 0, 0, 0, 0, 0, 5, 10, 15}, load, 0},
	{100, d{10, 5, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10}, load, 0},
	{100, d{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5}, load, 0},
}

var kittRGB = animation.RGBProgram{
	{800, c{0, 0, 0}, load, 0},
	{100, c{5, 0, 0}, add | repeat, 3},
	{100, c{-5, 0, 0}, add | repeat, 3},
	{1300, c{0, 0, 0}, load, 0},
}

var disco = animation.Program{
	{40, d{0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15}, load, 0},
	{40, d{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2}, div | repeat, 3},
	{100, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{40, d{15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0}, load, 0},
	{40, d{2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1}, div | repeat, 3},
	{100, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
}

var discoRGB = animation.RGBProgram{
	{40, c{15, 0, 15}, load, 0},
	{40, c{2, 1, 2}, div | repeat, 3},
	{100, c{0, 0, 0}, load, 0},
	{40, c{0, 15, 0}, load, 0},
	{40, c{2, 1, 2}, div | repeat, 3},
	{100, c{0, 0, 0}, load, 0},
}

var pseudoRandomFade = animation.Program{
	{66, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{66, d{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0}, add | repeat, 14},
	{66, d{0, 0, 1, 0, 0, 0, 0, -1, 0, 0, 0, 0}, add | repeat, 14},
	{66, d{0, 0, -1, 0, 0, 0, 0, 0, 0, 0, 1, 0}, add | repeat, 14},
	{66, d{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1, 0}, add | repeat, 14},
	{66, d{-1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
	{66, d{0, 0, 0, 0, 0, -1, 0, 1, 0, 0, 0, 0}, add | repeat, 14},
	{66, d{0, 0, 0, 0, 0, 0, 0, -1, 0, 0, 0, 1}, add | repeat, 14},
	{66, d{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1}, add | repeat, 14},
	{66, d{0, -1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
	{66, d{0, 0, 0, -1, 0, 0, 1, 0, 0, 0, 0, 0}, add | repeat, 14},
	{66, d{0, 0, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0}, add | repeat, 14},
	{66, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0}, add | repeat, 14},
	{66, d{0, 0, 0, 0, 1, 0, 0, 0, 0, -1, 0, 0}, add | repeat, 14},
	{66, d{0, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0}, add | repeat, 14},
}

var pseudoRandomFadeRGB = animation.RGBProgram{
	{9966, c{0, 0, 0}, load, 0},
	{66, c{1, 0, 0}, add | repeat, 14},
	{66, c{-1, 0, 0}, add | repeat, 14},
	{1980, c{0, 0, 0}, load, 0},
}

var crissCross = animation.Program{
	{350, d{15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{350, d{0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{350, d{0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0}, load, 0},
	{350, d{0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{350, d{0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0}, load, 0},
	{350, d{0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0}, load, 0},
	{350, d{0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0}, load, 0},
	{350, d{0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{350, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0}, load, 0},
	{350, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15}, load, 0},
	{350, d{0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{350, d{0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0}, load, 0},
}

var crissCrossRGB = animation.RGBProgram{
	{1050, c{0, 15, 15}, load, 0},
	{1050, c{15, 0, 0}, load, 0},
	{1050, c{2, 10, 10}, load, 0},
	{1050, c{15, 15, 0}, load, 0},
}

var flicker = animation.Program{
	{200, d{0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0}, load, 0},
	{200, d{0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{200, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0}, load, 0},
	{200, d{0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0}, load, 0},
	{200, d{15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{200, d{0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{200, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15}, load, 0},
	{200, d{0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0}, load, 0},
	{200, d{0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{200, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0}, load, 0},
}

var flickerRGB = animation.RGBProgram{
	{400, c{15, 0, 0}, load, 0},
	{100, c{15, 15, 0}, load, 0},
	{800, c{15, 0, 0}, load, 0},
	{100, c{15, 15, 0}, load, 0},
	{500, c{15, 0, 0}, load, 0},
	{100, c{15, 15, 0}, load, 0},
}

var pingpong = animation.Program{
	{175, d{15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{175, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rshift | repeat, 4},
	{175, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{175, d{0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0}, load, 0},
	{175, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rshift | repeat, 4},
	{175, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{175, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15}, load, 0},
	{175, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, lshift | repeat, 4},
	{175, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{175, d{0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0}, load, 0},
	{175, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, lshift | repeat, 4},
	{175, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
}

var pingpongRGB = animation.RGBProgram{
	{1050, c{15, 15, 0}, load, 0},
	{2450, c{0, 15, 15}, load, 0},
	{1400, c{15, 15, 0}, load, 0},
}

var sparkle = animation.Program{
	{200, d{4, 4, 4, 4, 15, 4, 4, 4, 4, 4, 4, 4}, load, 0},
	{200, d{4, 15, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}, load, 0},
	{200, d{4, 4, 4, 4, 4, 4, 15, 4, 4, 4, 4, 4}, load, 0},
	{200, d{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 15, 4}, load, 0},
	{200, d{4, 4, 15, 4, 4, 4, 4, 4, 4, 4, 4, 4}, load, 0},
	{200, d{15, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}, load, 0},
	{200, d{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 15}, load, 0},
	{200, d{4, 4, 4, 15, 4, 4, 4, 4, 4, 4, 4, 4}, load, 0},
	{200, d{4, 4, 4, 4, 4, 4, 4, 4, 4, 15, 4, 4}, load, 0},
	{200, d{4, 4, 4, 4, 4, 15, 4, 4, 4, 4, 4, 4}, load, 0},
}

var sparkleRGB = animation.RGBProgram{
	{500, c{15, 0, 0}, load, 0},
	{250, c{15, 3, 1}, load, 0},
	{250, c{15, 6, 2}, load, 0},
	{500, c{15, 10, 3}, load, 0},
	{250, c{15, 6, 2}, load, 0},
	{250, c{15, 3, 1}, load, 0},
}

var split2 = animation.Program{
	{500, d{15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0}, load, 0},
	{500, d{0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15}, load, 0},
}

var split2RGB = animation.RGBProgram{
	{333, c{15, 0, 15}, load, 0},
	{333, c{0, 15, 15}, load, 0},
	{334, c{15, 15, 0}, load, 0},
}

var stepping = animation.Program{
	{350, d{15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{350, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rshift | repeat, 10},
}

var steppingRGB = animation.RGBProgram{
	{350, c{15, 0, 0}, load, 0},
	{350, c{15, 6, 0}, load, 0},
	{350, c{15, 10, 0}, load, 0},
	{350, c{15, 15, 0}, load, 0},
	{350, c{0, 15, 0}, load, 0},
	{350, c{0, 10, 0}, load, 0},
	{350, c{2, 10, 10}, load, 0},
	{350, c{0, 15, 15}, load, 0},
	{350, c{7, 5, 10}, load, 0},
	{350, c{15, 0, 15}, load, 0},
	{350, c{15, 12, 12}, load, 0},
}

var race = animation.Program{
	{100, d{5, 10, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rshift | repeat, 2},
	{100, d{0, 0, 0, 0, 5, 10, 0, 0, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 0, 5, 15, 0, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 0, 0, 10, 15, 0, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 0, 0, 5, 10, 15, 0, 0, 0}, load, 0},
	{100, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rshift | repeat, 4},
	{70, d{5, 10, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{70, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rshift | repeat, 2},
	{70, d{0, 0, 0, 0, 5, 10, 0, 0, 0, 0, 0, 0}, load, 0},
	{70, d{0, 0, 0, 0, 0, 5, 15, 0, 0, 0, 0, 0}, load, 0},
	{70, d{0, 0, 0, 0, 0, 0, 10, 15, 0, 0, 0, 0}, load, 0},
	{70, d{0, 0, 0, 0, 0, 0, 5, 10, 15, 0, 0, 0}, load, 0},
	{70, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rshift | repeat, 4},
	{40, d{5, 10, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
	{40, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rshift | repeat, 2},
	{40, d{0, 0, 0, 0, 5, 10, 0, 0, 0, 0, 0, 0}, load, 0},
	{40, d{0, 0, 0, 0, 0, 5, 15, 0, 0, 0, 0, 0}, load, 0},
	{40, d{0, 0, 0, 0, 0, 0, 10, 15, 0, 0, 0, 0}, load, 0},
	{40, d{0, 0, 0, 0, 0, 0, 5, 10, 15, 0, 0, 0}, load, 0},
	{40, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rshift | repeat, 4},
}

var raceRGB = animation.RGBProgram{
	{400, c{0, 0, 0}, load, 0},
	{100, c{15, 0, 0}, load, 0},
	{100, c{-5, 0, 0}, add | repeat, 1},
	{600, c{0, 0, 0}, load, 0},
	{280, c{0, 0, 0}, load, 0},
	{70, c{15, 0, 0}, load, 0},
	{70, c{-5, 0, 0}, add | repeat, 1},
	{420, c{0, 0, 0}, load, 0},
	{160, c{0, 0, 0}, load, 0},
	{40, c{15, 0, 0}, load, 0},
	{40, c{-5, 0, 0}, add | repeat, 1},
	{240, c{0, 0, 0}, load, 0},
}

var yingYang = animation.Program{
	{150, d{0, 5, 10, 15, 0, 0, 0, 5, 10, 15, 0, 0}, load, 0},
	{150, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rshift | repeat, 4},
}

var yingYangRGB = animation.RGBProgram{
	{450, c{2, 6, 15}, load, 0},
	{450, c{15, 8, 1}, load, 0},
}

var ice = animation.Program{
	{300, d{0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0}, load, 0},
	{300, d{0, 0, 0, 0, 15, 10, 0, 0, 0, 0, 0, 0}, load, 0},
	{300, d{0, 0, 0, 15, 10, 5, 15, 0, 0, 0, 0, 0}, load, 0},
	{300, d{0, 0, 15, 10, 5, 0, 10, 15, 0, 0, 0, 0}, load, 0},
	{300, d{0, 15, 10, 5, 0, 0, 5, 10, 15, 0, 0, 0}, load, 0},
	{300, d{15, 10, 5, 0, 0, 0, 0, 5, 10, 15, 0, 0}, load, 0},
	{300, d{15, 5, 0, 0, 0, 0, 0, 0, 5, 10, 15, 0}, load, 0},
	{300, d{15, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10, 15}, load, 0},
	{300, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 15}, load, 0},
	{300, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15}, load, 0},
	{300, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
}

var iceRGB = animation.RGBProgram{
	{194, c{0, 15, 15}, load, 0},
	{194, c{0, -1, 0}, add | repeat, 15},
}

var blackness = animation.Program{
	{65535, d{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, load, 0},
}

var blacknessRGB = animation.RGBProgram{
	{65535, c{0, 0, 0}, load, 0},
}
