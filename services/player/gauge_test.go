package player

import (
	"testing"

	"lightpanel-go/types"
)

func TestChargeLevel(t *testing.T) {
	cases := []struct {
		mv    uint16
		steps int
		want  int
	}{
		{0, 7, 0},
		{1900, 7, 0},
		{2000, 7, 0},
		{2400, 7, 3}, // 3.5 rounds down
		{2799, 7, 6},
		{2800, 7, 7},
		{3300, 7, 7},
		{2400, 13, 6}, // 6.5
		{2200, 6, 1},  // 1.5
		{2800, 6, 6},
	}
	for _, c := range cases {
		if got := chargeLevel(c.mv, c.steps); got != c.want {
			t.Errorf("chargeLevel(%d, %d) = %d, want %d", c.mv, c.steps, got, c.want)
		}
	}
}

func count(f types.PanelFrame) (n int) {
	for _, v := range f.Mono {
		if v != 0 {
			n++
		}
	}
	return n
}

func TestGauge_Mirrored(t *testing.T) {
	g := gauges["mirrored"]
	f := g.frame(2480, [3]uint8{15, 0, 0}) // level 4: positions 0..4
	if count(f) != 10 || f.Mono[5] != 0 || f.Mono[6] != 0 || f.Mono[0] != 15 || f.Mono[11] != 15 {
		t.Fatalf("frame %v", f.Mono)
	}
	if f.RGB != ([3]uint8{}) {
		t.Fatal("indicator lit below full")
	}
	f = g.frame(2800, [3]uint8{15, 15, 0})
	if count(f) != 12 || f.RGB != [3]uint8{15, 15, 0} {
		t.Fatalf("full frame %v %v", f.Mono, f.RGB)
	}
	// Empty still lights the outer pair.
	if f := g.frame(1800, [3]uint8{}); count(f) != 2 {
		t.Fatalf("empty frame %v", f.Mono)
	}
}

func TestGauge_LinearAndPairs(t *testing.T) {
	f := gauges["linear"].frame(2440, [3]uint8{15, 15, 15}) // level 7: cells 0..7
	if count(f) != 8 || f.Mono[7] != 15 || f.Mono[8] != 0 {
		t.Fatalf("linear %v", f.Mono)
	}

	p := gauges["pairs"]
	f = p.frame(2280, [3]uint8{}) // level 2: pairs 1..3
	want := [12]uint8{0, 0, 15, 15, 15, 15, 15, 15}
	if f.Mono != want {
		t.Fatalf("pairs %v", f.Mono)
	}
	if f = p.frame(2800, [3]uint8{}); count(f) != 12 {
		t.Fatalf("full pairs %v", f.Mono)
	}
}

func TestSweepSteps_EndsAllOn(t *testing.T) {
	for name, g := range gauges {
		steps := g.sweepSteps()
		last := steps[len(steps)-1].frame
		if count(last) != 12 || last.RGB != [3]uint8{15, 15, 15} {
			t.Fatalf("%s: last sweep frame %v %v", name, last.Mono, last.RGB)
		}
		for i := 1; i < len(steps)-1; i++ {
			if count(steps[i].frame) <= count(steps[i-1].frame) {
				t.Fatalf("%s: sweep not growing at %d", name, i)
			}
		}
	}
}
