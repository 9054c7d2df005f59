package catalog

import (
	"testing"

	"lightpanel-go/animation"
)

func TestCatalogs_Valid(t *testing.T) {
	want := map[string]int{
		Karifa:   18,
		Hoember:  18,
		Hopehely: 16,
		Mezi:     11,
		Ajandek:  15,
		Rudolf:   18,
	}
	for _, sku := range SKUs() {
		cat, ok := Lookup(sku)
		if !ok {
			t.Fatalf("%s: missing", sku)
		}
		if cat.SKU != sku {
			t.Fatalf("%s: catalog named %q", sku, cat.SKU)
		}
		if err := cat.Validate(); err != nil {
			t.Fatalf("%s: %v", sku, err)
		}
		if cat.Len() != want[sku] {
			t.Fatalf("%s: %d animations, want %d", sku, cat.Len(), want[sku])
		}
		if name := cat.Animations[cat.Blackness()].Name; name != "blackness" {
			t.Fatalf("%s: last animation %q", sku, name)
		}
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	if _, ok := Lookup("KARIFA"); !ok {
		t.Fatal("upper case lookup failed")
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("unknown sku found")
	}
}

// Every shipped animation keeps its cells within 0..15 over a full period.
func TestCatalogs_StayInRange(t *testing.T) {
	for _, sku := range SKUs() {
		cat, _ := Lookup(sku)
		for i, a := range cat.Animations {
			var clk animation.Counter
			e := animation.New(cat, &clk)
			e.Select(i)
			e.Init()

			period := animation.Total(a.Mono)
			if period > 20000 {
				period = 20000
			}
			for ms := uint32(0); ms <= period; ms++ {
				clk.Tick()
				e.Cycle()
				f, rgb := e.Frame(), e.RGB()
				for c, v := range f {
					if v > animation.MaxLevel {
						t.Fatalf("%s/%s: cell %d = %d at %dms", sku, a.Name, c, v, ms)
					}
				}
				for c, v := range rgb {
					if v > animation.MaxLevel {
						t.Fatalf("%s/%s: rgb %d = %d at %dms", sku, a.Name, c, v, ms)
					}
				}
			}
		}
	}
}

func TestBlackness_IsDark(t *testing.T) {
	cat, _ := Lookup(Karifa)
	var clk animation.Counter
	e := animation.New(cat, &clk)
	e.Select(cat.Blackness())
	e.Init()
	clk.Advance(500)
	e.Cycle()
	if e.Frame() != (animation.Frame{}) || e.RGB() != (animation.RGBFrame{}) {
		t.Fatalf("blackness lit: %v %v", e.Frame(), e.RGB())
	}
}
