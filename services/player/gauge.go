package player

import (
	"time"

	"lightpanel-go/types"
	"lightpanel-go/x/mathx"
)

// A coin cell reads about 2.8 V under load when full; below 2.0 V the
// LEDs are barely visible.
const (
	emptyMilliV = 2000
	spanMilliV  = 800
)

// bootStep is one frame of the start-up sequence and how long it stays up.
type bootStep struct {
	frame types.PanelFrame
	hold  time.Duration
}

// gauge draws a charge level for one panel shape.
type gauge struct {
	steps int           // levels above empty
	sweep time.Duration // per frame of the start-up sweep
	fill  func(f *types.PanelFrame, lit func(int) bool, full bool)
	// order lists, per sweep frame, the cells it lights.
	order [][]int
}

var gauges = map[string]gauge{
	// Six levels from both chain ends inward, the RGB cell on top.
	"mirrored": {
		steps: 7,
		sweep: 100 * time.Millisecond,
		fill: func(f *types.PanelFrame, lit func(int) bool, _ bool) {
			for i := 0; i < 6; i++ {
				if lit(i) {
					f.Mono[i], f.Mono[11-i] = 15, 15
				}
			}
		},
		order: [][]int{{0, 11}, {1, 10}, {2, 9}, {3, 8}, {4, 7}, {5, 6}},
	},
	// Twelve levels in cell order, the RGB cell on top.
	"linear": {
		steps: 13,
		sweep: 50 * time.Millisecond,
		fill: func(f *types.PanelFrame, lit func(int) bool, _ bool) {
			for i := 0; i < 12; i++ {
				if lit(i) {
					f.Mono[i] = 15
				}
			}
		},
		order: [][]int{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}, {8}, {9}, {10}, {11}},
	},
	// Five levels of cell pairs; the first pair (the eyes) marks a full cell.
	"pairs": {
		steps: 6,
		sweep: 100 * time.Millisecond,
		fill: func(f *types.PanelFrame, lit func(int) bool, full bool) {
			for i := 1; i < 6; i++ {
				if lit(i - 1) {
					f.Mono[2*i], f.Mono[2*i+1] = 15, 15
				}
			}
			if full {
				f.Mono[0], f.Mono[1] = 15, 15
			}
		},
		order: [][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}, {8, 9}, {10, 11}},
	},
}

// chargeLevel maps millivolts to 0..steps, rounding down.
func chargeLevel(mv uint16, steps int) int {
	if mv <= emptyMilliV {
		return 0
	}
	l := steps * int(mv-emptyMilliV) / spanMilliV
	return mathx.Clamp(l, 0, steps)
}

// frame renders the gauge. The first position is lit even when empty so
// the display is never mistaken for a dead panel.
func (g gauge) frame(mv uint16, fullRGB [3]uint8) types.PanelFrame {
	level := chargeLevel(mv, g.steps)
	full := level >= g.steps
	var f types.PanelFrame
	g.fill(&f, func(i int) bool { return level >= i }, full)
	if full {
		f.RGB = fullRGB
	}
	return f
}

// sweepSteps fills the panel position by position, then lights every RGB
// channel so the cell is measured under load.
func (g gauge) sweepSteps() []bootStep {
	var f types.PanelFrame
	out := make([]bootStep, 0, len(g.order)+1)
	for _, cells := range g.order {
		for _, c := range cells {
			f.Mono[c] = 15
		}
		out = append(out, bootStep{frame: f, hold: g.sweep})
	}
	f.RGB = [3]uint8{15, 15, 15}
	return append(out, bootStep{frame: f, hold: 100 * time.Millisecond})
}
