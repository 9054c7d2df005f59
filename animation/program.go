// Package animation holds the instruction format for the LED panel
// animations and the engine that plays them against a millisecond clock.
//
// A panel has twelve monochrome cells split into two chains of six
// (cells 0..5 and 6..11) plus one RGB cell. Every cell carries a 4-bit
// brightness. An animation pairs a monochrome program with an RGB
// program; both advance on the same clock but restart independently.
package animation

import "errors"

const (
	Channels    = 12
	RGBChannels = 3
	// ChainSplit is the first cell of the right chain.
	ChainSplit = 6
	MaxLevel   = 15
)

type (
	Frame     [Channels]uint8
	RGBFrame  [RGBChannels]uint8
	Deltas    [Channels]int8
	RGBDeltas [RGBChannels]int8
)

// Opcode is a bit set of effects. Load is the empty set and replaces the
// frame outright; any other combination runs its effects in the order of
// the stage table in interp.go, regardless of bit value.
type Opcode uint8

const (
	Load    Opcode = 0x00
	Add     Opcode = 0x01
	RShift  Opcode = 0x02
	LShift  Opcode = 0x04
	Div     Opcode = 0x10
	USource Opcode = 0x20
	DSource Opcode = 0x40
	Repeat  Opcode = 0x80
)

// rgbOps are the effects an RGB program may use. Other bits are ignored.
const rgbOps = Add | Div | Repeat

func (o Opcode) Has(bit Opcode) bool { return o&bit != 0 }

func (o Opcode) String() string {
	if o == Load {
		return "load"
	}
	s := ""
	for _, st := range stages {
		if o.Has(st.op) {
			s += "|" + st.name
		}
	}
	if o.Has(Repeat) {
		s += "|repeat"
	}
	if s == "" {
		return "?"
	}
	return s[1:]
}

type Step struct {
	Duration uint16
	Delta    Deltas
	Op       Opcode
	Operand  uint8
}

type RGBStep struct {
	Duration uint16
	Delta    RGBDeltas
	Op       Opcode
	Operand  uint8
}

type (
	Program    []Step
	RGBProgram []RGBStep
)

// Sequence is what the resolver and interpreter need from either program kind.
type Sequence interface {
	Len() int
	Duration(i int) uint16
	instr(i int) instr
}

// instr is a program row with its delta widened to a slice view.
type instr struct {
	delta    []int8
	op       Opcode
	operand  uint8
	duration uint16
}

func (p Program) Len() int              { return len(p) }
func (p Program) Duration(i int) uint16 { return p[i].Duration }
func (p Program) instr(i int) instr {
	return instr{delta: p[i].Delta[:], op: p[i].Op, operand: p[i].Operand, duration: p[i].Duration}
}

func (p RGBProgram) Len() int              { return len(p) }
func (p RGBProgram) Duration(i int) uint16 { return p[i].Duration }
func (p RGBProgram) instr(i int) instr {
	return instr{delta: p[i].Delta[:], op: p[i].Op, operand: p[i].Operand, duration: p[i].Duration}
}

// Total is the summed duration of a sequence, in milliseconds.
func Total(s Sequence) uint32 {
	var sum uint32
	for i := 0; i < s.Len(); i++ {
		sum += uint32(s.Duration(i))
	}
	return sum
}

// Resolve returns the smallest index whose cumulative duration exceeds t.
// ok is false once t has run past the end of the sequence.
func Resolve(s Sequence, t uint16) (idx int, ok bool) {
	var end uint32
	for i := 0; i < s.Len(); i++ {
		end += uint32(s.Duration(i))
		if end > uint32(t) {
			return i, true
		}
	}
	return 0, false
}

type Animation struct {
	Name string
	Mono Program
	RGB  RGBProgram
}

// Catalog is the ordered animation set for one product. The last entry
// is the all-dark animation.
type Catalog struct {
	SKU        string
	Animations []Animation
}

func (c *Catalog) Len() int { return len(c.Animations) }

// Blackness returns the index of the all-dark animation.
func (c *Catalog) Blackness() int { return len(c.Animations) - 1 }

// Next is the entry after i when cycling. The dark entry is never reached:
// from the one before it, and from the dark entry itself, cycling wraps
// to 0.
func (c *Catalog) Next(i int) int {
	n := i + 1
	if n < 0 || n >= c.Blackness() {
		return 0
	}
	return n
}

// Names lists the animation names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.Animations))
	for i, a := range c.Animations {
		out[i] = a.Name
	}
	return out
}

var (
	ErrEmptyCatalog = errors.New("animation: empty catalog")
	ErrCatalogSize  = errors.New("animation: more than 255 animations")
	ErrEmptyProgram = errors.New("animation: empty program")
	ErrLoadRange    = errors.New("animation: load value outside 0..15")
	ErrNoBlackness  = errors.New("animation: last animation is not dark")
)

// Validate checks the structural rules the engine relies on.
func (c *Catalog) Validate() error {
	if len(c.Animations) == 0 {
		return ErrEmptyCatalog
	}
	if len(c.Animations) > 255 {
		return ErrCatalogSize
	}
	for _, a := range c.Animations {
		if len(a.Mono) == 0 || len(a.RGB) == 0 {
			return ErrEmptyProgram
		}
		for _, s := range a.Mono {
			if s.Op == Load && !loadInRange(s.Delta[:]) {
				return ErrLoadRange
			}
		}
		for _, s := range a.RGB {
			if s.Op == Load && !loadInRange(s.Delta[:]) {
				return ErrLoadRange
			}
		}
	}
	if !isDark(c.Animations[len(c.Animations)-1]) {
		return ErrNoBlackness
	}
	return nil
}

func loadInRange(d []int8) bool {
	for _, v := range d {
		if v < 0 || v > MaxLevel {
			return false
		}
	}
	return true
}

func isDark(a Animation) bool {
	for _, s := range a.Mono {
		if s.Op != Load || s.Delta != (Deltas{}) {
			return false
		}
	}
	for _, s := range a.RGB {
		if s.Op != Load || s.Delta != (RGBDeltas{}) {
			return false
		}
	}
	return true
}
