package animation

import "lightpanel-go/x/mathx"

// none marks a track that has applied nothing since the last restart.
const none = -1

// track is the playback state of one channel set (monochrome or RGB).
type track struct {
	cells   []uint8
	ops     Opcode // effects this channel set honours
	elapsed uint16 // virtual time within the current program
	last    int    // index of the last finished instruction
	repeat  uint8  // passes left on the current REPEAT row
}

// Playback is a read-only view of a track.
type Playback struct {
	Elapsed uint16
	Last    int
	Repeat  uint8
}

func (t *track) reset() {
	t.elapsed = 0
	t.last = none
	t.repeat = 0
}

func (t *track) playback() Playback {
	return Playback{Elapsed: t.elapsed, Last: t.last, Repeat: t.repeat}
}

// stages run in this order for every non-LOAD instruction.
var stages = [...]struct {
	op   Opcode
	name string
	fn   func(*track, []int8)
}{
	{Add, "add", (*track).add},
	{RShift, "rshift", (*track).rotateRight},
	{LShift, "lshift", (*track).rotateLeft},
	{USource, "usource", (*track).sourceUp},
	{DSource, "dsource", (*track).sourceDown},
	{Div, "div", (*track).div},
}

// apply runs instruction idx if it differs from the last finished one.
// It reports whether the frame was touched.
func (t *track) apply(s Sequence, idx int) bool {
	if idx == t.last {
		return false
	}
	in := s.instr(idx)
	if in.op == Load {
		for i, v := range in.delta {
			t.cells[i] = uint8(v)
		}
		t.last = idx
		return true
	}
	for _, st := range stages {
		if in.op.Has(st.op) && t.ops.Has(st.op) {
			st.fn(t, in.delta)
		}
	}
	if !in.op.Has(Repeat) {
		t.last = idx
		return true
	}
	t.repeatStep(idx, in)
	return true
}

// repeatStep rolls virtual time back by the row's duration so that the
// row resolves again, operand extra times in total.
func (t *track) repeatStep(idx int, in instr) {
	if t.repeat == 0 {
		if in.operand == 0 {
			t.last = idx
			return
		}
		t.repeat = in.operand
		t.elapsed -= in.duration
		return
	}
	t.repeat--
	if t.repeat != 0 {
		t.elapsed -= in.duration
		return
	}
	t.last = idx
}

// add sums each delta into its cell. A result outside 0..15 becomes 0.
func (t *track) add(d []int8) {
	for i, v := range d {
		sum := int(t.cells[i]) + int(v)
		if sum < 0 || sum > MaxLevel {
			sum = 0
		}
		t.cells[i] = uint8(sum)
	}
}

// div divides each cell by its delta read as an unsigned byte.
// A zero divisor leaves the cell alone.
func (t *track) div(d []int8) {
	for i, v := range d {
		if q := uint8(v); q != 0 {
			t.cells[i] /= q
		}
	}
}

// rotateRight moves every cell up one index; the last wraps to the first.
func (t *track) rotateRight(_ []int8) {
	n := len(t.cells)
	end := t.cells[n-1]
	copy(t.cells[1:], t.cells[:n-1])
	t.cells[0] = end
}

// rotateLeft is the mirror of rotateRight.
func (t *track) rotateLeft(_ []int8) {
	n := len(t.cells)
	first := t.cells[0]
	copy(t.cells, t.cells[1:])
	t.cells[n-1] = first
}

// sourceUp adds the deltas and pushes overflow towards the middle of the
// panel: up the left chain and down the right one.
func (t *track) sourceUp(d []int8) {
	var w [Channels]int16
	t.load(&w)
	carry(&w, d, 0, ChainSplit-1, 1)
	carry(&w, d, Channels-1, ChainSplit, -1)
	t.store(&w)
}

// sourceDown pushes overflow towards the panel edges.
func (t *track) sourceDown(d []int8) {
	var w [Channels]int16
	t.load(&w)
	carry(&w, d, ChainSplit-1, 0, -1)
	carry(&w, d, ChainSplit, Channels-1, 1)
	t.store(&w)
}

func (t *track) load(w *[Channels]int16) {
	for i, v := range t.cells {
		w[i] = int16(v)
	}
}

func (t *track) store(w *[Channels]int16) {
	for i := range t.cells {
		t.cells[i] = uint8(w[i])
	}
}

// carry walks one chain from head to tail. Each cell takes its delta,
// then every cell from there to the tail is saturated and hands its
// excess to the next one. The tail absorbs what is left and saturates.
func carry(w *[Channels]int16, d []int8, head, tail, dir int) {
	for i := head; i != tail; i += dir {
		w[i] += int16(d[i])
		for j := i; j != tail; j += dir {
			w[j+dir] += saturate(&w[j])
		}
	}
	w[tail] += int16(d[tail])
	saturate(&w[tail])
}

// saturate clamps v to 0..15 and returns the part that was cut off.
func saturate(v *int16) int16 {
	in := *v
	*v = mathx.Clamp(in, 0, MaxLevel)
	return in - *v
}
