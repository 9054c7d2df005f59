package conv

import "testing"

func TestItoa(t *testing.T) {
	var buf [20]byte
	for _, c := range []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-42, "-42"},
		{1234567890, "1234567890"},
	} {
		if got := string(Itoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Itoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestUtoa_ShortBufferKeepsLowDigits(t *testing.T) {
	var buf [2]byte
	if got := string(Utoa(buf[:], 1234)); got != "34" {
		t.Fatalf("got %q", got)
	}
	if got := Utoa(nil, 5); len(got) != 0 {
		t.Fatalf("nil buffer: got %q", got)
	}
}
