package animation

import "testing"

func monoTrack(cells Frame) (*track, *Frame) {
	f := cells
	return &track{cells: f[:], ops: 0xFF, last: none}, &f
}

func TestAdd_OutOfRangeBecomesZero(t *testing.T) {
	tr, f := monoTrack(Frame{14, 2, 7})
	tr.add([]int8{3, -5, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	if f[0] != 0 || f[1] != 0 || f[2] != 8 {
		t.Fatalf("got %v", *f)
	}
}

func TestAdd_ZeroDeltaIsIdentity(t *testing.T) {
	start := Frame{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 15}
	tr, f := monoTrack(start)
	tr.add(make([]int8, Channels))
	if *f != start {
		t.Fatalf("got %v want %v", *f, start)
	}
}

func TestDiv(t *testing.T) {
	tr, f := monoTrack(Frame{15, 9, 8, 4})
	tr.div([]int8{2, 0, -1, 1, 0, 0, 0, 0, 0, 0, 0, 0})
	want := Frame{7, 9, 0, 4}
	if *f != want {
		t.Fatalf("got %v want %v", *f, want)
	}
}

func TestRotate_ClosesAfterTwelve(t *testing.T) {
	start := Frame{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	tr, f := monoTrack(start)

	tr.rotateRight(nil)
	if f[0] != 12 || f[1] != 1 || f[11] != 11 {
		t.Fatalf("rshift got %v", *f)
	}
	for i := 1; i < Channels; i++ {
		tr.rotateRight(nil)
	}
	if *f != start {
		t.Fatalf("rshift x12 got %v", *f)
	}

	tr.rotateLeft(nil)
	if f[0] != 2 || f[11] != 1 {
		t.Fatalf("lshift got %v", *f)
	}
	for i := 1; i < Channels; i++ {
		tr.rotateLeft(nil)
	}
	if *f != start {
		t.Fatalf("lshift x12 got %v", *f)
	}
}

func TestSource_CarriesStayInChain(t *testing.T) {
	cases := []struct {
		name  string
		start Frame
		delta Deltas
		up    bool
		want  Frame
	}{
		{
			name:  "up left overflow moves right",
			delta: Deltas{0: 20},
			up:    true,
			want:  Frame{15, 5},
		},
		{
			name:  "up right overflow moves left",
			delta: Deltas{11: 20},
			up:    true,
			want:  Frame{10: 5, 11: 15},
		},
		{
			name:  "up tail saturates without crossing",
			start: Frame{15, 15, 15, 15, 15, 15},
			delta: Deltas{5: 10},
			up:    true,
			want:  Frame{15, 15, 15, 15, 15, 15},
		},
		{
			name:  "down underflow borrows from neighbour",
			start: Frame{4: 10},
			delta: Deltas{5: -3},
			up:    false,
			want:  Frame{4: 7},
		},
		{
			name:  "down right overflow moves outward",
			delta: Deltas{6: 18},
			up:    false,
			want:  Frame{6: 15, 7: 3},
		},
		{
			name:  "down left head overflow stops at edge",
			start: Frame{0: 15},
			delta: Deltas{0: 4},
			up:    false,
			want:  Frame{0: 15},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr, f := monoTrack(c.start)
			if c.up {
				tr.sourceUp(c.delta[:])
			} else {
				tr.sourceDown(c.delta[:])
			}
			if *f != c.want {
				t.Fatalf("got %v want %v", *f, c.want)
			}
			for i, v := range f {
				if v > MaxLevel {
					t.Fatalf("cell %d = %d out of range", i, v)
				}
			}
		})
	}
}

func TestSaturate(t *testing.T) {
	cases := []struct{ in, v, carry int16 }{
		{7, 7, 0},
		{20, 15, 5},
		{-4, 0, -4},
	}
	for _, c := range cases {
		v := c.in
		got := saturate(&v)
		if v != c.v || got != c.carry {
			t.Fatalf("saturate(%d) = %d carry %d, want %d carry %d", c.in, v, got, c.v, c.carry)
		}
	}
}

func TestOpcodeString(t *testing.T) {
	if s := Load.String(); s != "load" {
		t.Fatalf("got %q", s)
	}
	if s := (Add | Repeat).String(); s != "add|repeat" {
		t.Fatalf("got %q", s)
	}
	if s := (Div | USource | RShift).String(); s != "rshift|usource|div" {
		t.Fatalf("got %q", s)
	}
}

func TestApply_CombinedOpsRunInStageOrder(t *testing.T) {
	cases := []struct {
		name  string
		start Frame
		step  Step
		want  Frame
	}{
		{
			// div first would give 6/2+2 = 5 and 15/3+3 = 8
			name:  "add then div",
			start: Frame{6, 15},
			step:  Step{Delta: Deltas{2, 3}, Op: Add | Div},
			want:  Frame{4, 0},
		},
		{
			// rotating first would add into the wrapped-in last cell
			name:  "add then rotate right",
			start: Frame{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
			step:  Step{Delta: Deltas{0: 3}, Op: Add | RShift},
			want:  Frame{12, 4, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		},
		{
			// div has the lower bit but runs after the source carry
			name: "source up then div",
			step: Step{Delta: Deltas{0: 20}, Op: USource | Div},
			want: Frame{0, 5},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr, f := monoTrack(c.start)
			c.step.Duration = 100
			if !tr.apply(Program{c.step}, 0) {
				t.Fatal("apply reported no change")
			}
			if *f != c.want {
				t.Fatalf("got %v want %v", *f, c.want)
			}
			if tr.last != 0 {
				t.Fatalf("last = %d, want 0", tr.last)
			}
		})
	}
}

func TestApply_RepeatZeroRunsOnce(t *testing.T) {
	tr, f := monoTrack(Frame{})
	p := Program{{Duration: 100, Delta: Deltas{0: 1}, Op: Add | Repeat, Operand: 0}}
	tr.elapsed = 50

	if !tr.apply(p, 0) {
		t.Fatal("first pass not applied")
	}
	if tr.last != 0 || tr.repeat != 0 || tr.elapsed != 50 {
		t.Fatalf("after one pass: %+v", tr.playback())
	}
	if tr.apply(p, 0) {
		t.Fatal("row applied again after it finished")
	}
	if f[0] != 1 {
		t.Fatalf("cell 0 = %d, want 1", f[0])
	}
}
