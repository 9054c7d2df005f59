package softpwm_panel

import (
	"lightpanel-go/services/hal/internal/core"
	"lightpanel-go/types"
)

const (
	pwmLevels = 16
	halfCells = 6
)

// scanner multiplexes twelve cells onto six common pins. Each step moves
// a 4-bit compare counter; when it wraps the active half flips. The left
// half drives cells 0..5 on pins 0..5, the right half cells 6..11 on pins
// 5..0. A pin is on while its cell is brighter than the counter.
type scanner struct {
	led       [halfCells]core.GPIOHandle
	mux       [2]core.GPIOHandle
	rgb       [3]core.GPIOHandle // entries may be nil
	activeLow bool

	counter uint8
	left    bool
}

func (s *scanner) init() {
	for _, p := range s.led {
		_ = p.ConfigureOutput(s.level(false))
	}
	for _, p := range s.rgb {
		if p != nil {
			_ = p.ConfigureOutput(s.level(false))
		}
	}
	// Right half first: mux[0] high selects it.
	_ = s.mux[0].ConfigureOutput(true)
	_ = s.mux[1].ConfigureOutput(false)
}

func (s *scanner) level(on bool) bool { return on != s.activeLow }

func (s *scanner) step(f *types.PanelFrame) {
	s.counter++
	if s.counter == pwmLevels {
		s.counter = 0
		s.left = !s.left
		s.mux[0].Set(!s.left)
		s.mux[1].Set(s.left)
	}
	for i, p := range s.led {
		cell := halfCells + (halfCells - 1 - i)
		if s.left {
			cell = i
		}
		p.Set(s.level(f.Mono[cell] > s.counter))
	}
	for i, p := range s.rgb {
		if p != nil {
			p.Set(s.level(f.RGB[i] > s.counter))
		}
	}
}

// dark drives every output off.
func (s *scanner) dark() {
	for _, p := range s.led {
		p.Set(s.level(false))
	}
	for _, p := range s.rgb {
		if p != nil {
			p.Set(s.level(false))
		}
	}
}
