package animation

import (
	"sync/atomic"
	"time"

	"lightpanel-go/x/timex"
)

// Clock supplies a free-running millisecond counter that wraps at 2^16.
type Clock interface {
	Millis() uint16
}

// Counter is a Clock driven by explicit ticks. Tick is safe to call from
// a timer interrupt or another goroutine while the engine reads Millis.
type Counter struct {
	ms atomic.Uint32
}

func (c *Counter) Tick()             { c.ms.Add(1) }
func (c *Counter) Advance(ms uint16) { c.ms.Add(uint32(ms)) }
func (c *Counter) Set(ms uint16)     { c.ms.Store(uint32(ms)) }
func (c *Counter) Millis() uint16    { return uint16(c.ms.Load()) }

// SystemClock reads the runtime monotonic clock.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock { return &SystemClock{start: time.Now()} }

func (s *SystemClock) Millis() uint16 {
	return timex.Trunc16(time.Since(s.start).Milliseconds())
}
