package errcode

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestOf(t *testing.T) {
	cause := errors.New("nak")
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, OK},
		{"bare code", InvalidIndex, InvalidIndex},
		{"wrapped code", fmt.Errorf("select: %w", Busy), Busy},
		{"E", &E{C: Corrupt, Op: "load"}, Corrupt},
		{"wrapped E", fmt.Errorf("boot: %w", Wrap(IOError, "read", cause)), IOError},
		{"deadline", context.DeadlineExceeded, Timeout},
		{"plain", cause, Error},
	}
	for _, c := range cases {
		if got := Of(c.err); got != c.want {
			t.Fatalf("%s: Of=%q want %q", c.name, got, c.want)
		}
	}
}

func TestE_Error(t *testing.T) {
	err := Wrap(IOError, "persist.save", errors.New("erase failed"))
	if got := err.Error(); got != "persist.save: io_error: erase failed" {
		t.Fatalf("got %q", got)
	}
	if Wrap(IOError, "x", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
}

func TestMapDriverErr(t *testing.T) {
	if MapDriverErr(nil) != OK {
		t.Fatal("nil")
	}
	if MapDriverErr(errors.New("i2c nack")) != IOError {
		t.Fatal("plain driver error should map to io_error")
	}
	if MapDriverErr(InvalidParams) != InvalidParams {
		t.Fatal("code should pass through")
	}
}
