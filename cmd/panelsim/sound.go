package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// clicker plays a short tick for button presses. Without an audio device
// it stays silent.
type clicker struct {
	on bool
}

func newClicker(enabled bool) *clicker {
	if !enabled {
		return &clicker{}
	}
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &clicker{on: err == nil}
}

func (c *clicker) click() {
	if !c.on {
		return
	}
	sine, err := generators.SineTone(sampleRate, 1760)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(15*time.Millisecond), sine))
}

func (c *clicker) close() {
	if c.on {
		speaker.Close()
	}
}
