package mathx

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(20, 0, 15); got != 15 {
		t.Fatalf("Clamp high: got %d", got)
	}
	if got := Clamp(-3, 0, 15); got != 0 {
		t.Fatalf("Clamp low: got %d", got)
	}
	if got := Clamp(7, 15, 0); got != 7 {
		t.Fatalf("Clamp swapped bounds: got %d", got)
	}
}
