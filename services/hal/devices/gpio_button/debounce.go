package gpio_button

import "lightpanel-go/types"

type state uint8

const (
	stUnpressed  state = iota
	stBouncing         // press seen, waiting out the debounce time
	stPressed          // debounced press, long-press timer running
	stLongPress        // held past the long-press time
	stReleasing        // release seen, waiting out the debounce time
	stHeldAtBoot       // down at start-up; ignored until released
)

// debouncer is the button state machine. It is sampled with a monotonic
// millisecond time and the raw logical level; it returns the event tag to
// publish, or "".
type debouncer struct {
	st       state
	deadline uint32
	wasLong  bool

	debounceMs uint32
	longMs     uint32
}

func newDebouncer(debounceMs, longMs uint32, downAtStart bool) *debouncer {
	d := &debouncer{debounceMs: debounceMs, longMs: longMs}
	if downAtStart {
		d.st = stHeldAtBoot
	}
	return d
}

func due(now, deadline uint32) bool { return int32(now-deadline) >= 0 }

func (d *debouncer) step(now uint32, down bool) string {
	switch d.st {
	case stHeldAtBoot:
		if !down {
			d.st = stUnpressed
		}

	case stUnpressed:
		if down {
			d.st = stBouncing
			d.deadline = now + d.debounceMs
		}

	case stBouncing:
		if due(now, d.deadline) {
			if down {
				d.st = stPressed
				d.deadline = now + d.longMs
			} else {
				d.st = stUnpressed
			}
		}

	case stPressed:
		if !down {
			d.st = stReleasing
			d.deadline = now + d.debounceMs
			return types.ButtonShort
		}
		if due(now, d.deadline) {
			d.st = stLongPress
			d.wasLong = true
			return types.ButtonLong
		}

	case stLongPress:
		if !down {
			d.st = stReleasing
			d.deadline = now + d.debounceMs
		}

	case stReleasing:
		if !due(now, d.deadline) {
			break
		}
		if down {
			d.deadline = now + d.debounceMs
			break
		}
		d.st = stUnpressed
		if d.wasLong {
			d.wasLong = false
			return types.ButtonReleasedLong
		}
	}
	return ""
}

// pressed reports the debounced level.
func (d *debouncer) pressed() bool {
	return d.st == stPressed || d.st == stLongPress
}
