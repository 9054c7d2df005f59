// Package catalog holds the animation sets shipped for each panel product.
package catalog

import (
	"strings"

	"lightpanel-go/animation"
)

const (
	Karifa   = "karifa"
	Hoember  = "hoember"
	Hopehely = "hopehely"
	Mezi     = "mezi"
	Ajandek  = "ajandekcsomag"
	Rudolf   = "rudolf"
)

var bySKU = map[string]*animation.Catalog{
	Karifa:   &karifa,
	Hoember:  &hoember,
	Hopehely: &hopehely,
	Mezi:     &mezi,
	Ajandek:  &ajandek,
	Rudolf:   &rudolf,
}

// Lookup returns the catalog for a product name, case-insensitively.
func Lookup(sku string) (*animation.Catalog, bool) {
	c, ok := bySKU[strings.ToLower(sku)]
	return c, ok
}

// SKUs lists the known product names in a stable order.
func SKUs() []string {
	return []string{Karifa, Hoember, Hopehely, Mezi, Ajandek, Rudolf}
}

var karifa = animation.Catalog{
	SKU: "karifa",
	Animations: []animation.Animation{
		{Name: "retro", Mono: retroVersion, RGB: retroVersionRGB},
		{Name: "soft_flashing", Mono: softFlashing, RGB: softFlashingRGB},
		{Name: "disco", Mono: disco, RGB: discoRGB},
		{Name: "star_launch", Mono: starLaunch, RGB: starLaunchRGB},
		{Name: "criss_cross", Mono: crissCross, RGB: crissCrossRGB},
		{Name: "flasher", Mono: genericFlasher, RGB: genericFlasherRGB},
		{Name: "kitt", Mono: kitt, RGB: kittRGB},
		{Name: "pingpong", Mono: pingpong, RGB: pingpongRGB},
		{Name: "fade_ring", Mono: fadeRing, RGB: fadeRingRGB},
		{Name: "ying_yang", Mono: yingYang, RGB: yingYangRGB},
		{Name: "random_fade", Mono: pseudoRandomFade, RGB: pseudoRandomFadeRGB},
		{Name: "flicker", Mono: flicker, RGB: flickerRGB},
		{Name: "race", Mono: race, RGB: raceRGB},
		{Name: "sparkle", Mono: sparkle, RGB: sparkleRGB},
		{Name: "ice", Mono: ice, RGB: iceRGB},
		{Name: "split", Mono: split2, RGB: split2RGB},
		{Name: "stepping", Mono: stepping, RGB: steppingRGB},
		{Name: "blackness", Mono: blackness, RGB: blacknessRGB},
	},
}

var hoember = animation.Catalog{
	SKU: "hoember",
	Animations: []animation.Animation{
		{Name: "retro", Mono: retroVersion, RGB: retroVersionRGBYellow},
		{Name: "soft_flashing", Mono: softFlashing, RGB: softFlashingRGB},
		{Name: "disco", Mono: disco, RGB: discoRGB},
		{Name: "star_launch", Mono: starLaunch, RGB: starLaunchRGB},
		{Name: "criss_cross", Mono: crissCross, RGB: crissCrossRGB},
		{Name: "flasher", Mono: genericFlasher, RGB: genericFlasherRGB},
		{Name: "kitt", Mono: kitt, RGB: kittRGB},
		{Name: "pingpong", Mono: pingpong, RGB: pingpongRGB},
		{Name: "fade_ring", Mono: fadeRing, RGB: fadeRingRGB},
		{Name: "ying_yang", Mono: yingYang, RGB: yingYangRGB},
		{Name: "random_fade", Mono: pseudoRandomFade, RGB: pseudoRandomFadeRGB},
		{Name: "flicker", Mono: flicker, RGB: flickerRGB},
		{Name: "race", Mono: race, RGB: raceRGB},
		{Name: "sparkle", Mono: sparkle, RGB: sparkleRGB},
		{Name: "ice", Mono: ice, RGB: iceRGB},
		{Name: "split", Mono: split2, RGB: split2RGB},
		{Name: "stepping", Mono: stepping, RGB: steppingRGB},
		{Name: "blackness", Mono: blackness, RGB: blacknessRGB},
	},
}
