package strx

import "testing"

type code string

func TestCoalesce(t *testing.T) {
	if Coalesce("", "io") != "io" || Coalesce("power", "io") != "power" {
		t.Fatal("string coalesce")
	}
	if Coalesce(code(""), code("busy")) != "busy" {
		t.Fatal("named string coalesce")
	}
}
