package animation

import "lightpanel-go/x/timex"

// Engine plays one animation at a time from a catalog. It is not safe for
// concurrent use; a single goroutine owns it and calls Cycle in its loop.
// Only the Clock is shared with the tick source.
type Engine struct {
	catalog  *Catalog
	clock    Clock
	index    int
	lastCall uint16

	frame Frame
	rgb   RGBFrame
	mono  track
	color track
}

func New(cat *Catalog, clock Clock) *Engine {
	e := &Engine{catalog: cat, clock: clock}
	e.mono = track{cells: e.frame[:], ops: 0xFF}
	e.color = track{cells: e.rgb[:], ops: rgbOps}
	e.mono.reset()
	e.color.reset()
	return e
}

// Init zeroes both virtual clocks and takes the current reading as the
// reference for the next Cycle.
func (e *Engine) Init() {
	e.mono.elapsed = 0
	e.color.elapsed = 0
	e.lastCall = e.clock.Millis()
}

// Cycle advances both tracks by the time passed since the previous call
// and applies whatever instruction became active. It reports whether a
// frame buffer was written.
func (e *Engine) Cycle() bool {
	now := e.clock.Millis()
	dt := timex.Since16(now, e.lastCall)
	if dt == 0 {
		return false
	}
	e.mono.elapsed += dt
	e.color.elapsed += dt

	a := &e.catalog.Animations[e.index]

	idx, ok := Resolve(a.Mono, e.mono.elapsed)
	if !ok {
		// The monochrome program sets the period; both tracks restart.
		idx = 0
		e.mono.elapsed = 0
		e.color.elapsed = 0
	}
	changed := e.mono.apply(a.Mono, idx)

	idx, ok = Resolve(a.RGB, e.color.elapsed)
	if !ok {
		idx = 0
		e.color.elapsed = 0
	}
	if e.color.apply(a.RGB, idx) {
		changed = true
	}

	e.lastCall = now
	return changed
}

// Select switches to animation i and starts it from its first row.
// An index outside the catalog is ignored and reported as false.
func (e *Engine) Select(i int) bool {
	if i < 0 || i >= e.catalog.Len() {
		return false
	}
	e.index = i
	e.mono.reset()
	e.color.reset()
	return true
}

// Next selects the following animation. The dark entry is skipped: from
// the one before it, and from the dark entry itself, playback wraps to 0.
func (e *Engine) Next() int {
	n := e.catalog.Next(e.index)
	e.Select(n)
	return n
}

func (e *Engine) Index() int         { return e.index }
func (e *Engine) Catalog() *Catalog  { return e.catalog }
func (e *Engine) Frame() Frame       { return e.frame }
func (e *Engine) RGB() RGBFrame      { return e.rgb }
func (e *Engine) Mono() Playback     { return e.mono.playback() }
func (e *Engine) RGBTrack() Playback { return e.color.playback() }
