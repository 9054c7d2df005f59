package console

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"lightpanel-go/animation/catalog"
	"lightpanel-go/bus"
	"lightpanel-go/types"
)

// pipePort feeds queued input and collects output lines.
type pipePort struct {
	in  chan []byte
	mu  sync.Mutex
	out []string
}

func newPipePort() *pipePort { return &pipePort{in: make(chan []byte, 8)} }

func (p *pipePort) Write(b []byte) (int, error) {
	p.mu.Lock()
	p.out = append(p.out, strings.TrimRight(string(b), "\r\n"))
	p.mu.Unlock()
	return len(b), nil
}

func (p *pipePort) RecvSomeContext(ctx context.Context, buf []byte) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case b := <-p.in:
		return copy(buf, b), nil
	}
}

func (p *pipePort) waitLines(t *testing.T, n int) []string {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		p.mu.Lock()
		if len(p.out) >= n {
			out := append([]string(nil), p.out...)
			p.out = nil
			p.mu.Unlock()
			return out
		}
		p.mu.Unlock()
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for %d lines", n)
	return nil
}

// fakePlayer answers animation control requests the way the player does.
func fakePlayer(ctx context.Context, conn *bus.Connection) {
	sub := conn.Subscribe(bus.T("animation", "control", "+"))
	conn.Publish(conn.NewMessage(topicState, types.AnimationState{SKU: catalog.Mezi, Index: 2, Name: "disco", Count: 11}, true))
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m := <-sub.Channel():
				if sel, ok := m.Payload.(types.AnimationSelect); ok && sel.Index > 10 {
					conn.Reply(m, types.ErrorReply{Error: "invalid_index"}, false)
					continue
				}
				conn.Reply(m, types.OKReply{OK: true}, false)
			}
		}
	}()
}

func setup(t *testing.T) *pipePort {
	t.Helper()
	b := bus.NewBus(8)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	fakePlayer(ctx, b.NewConnection("player"))
	port := newPipePort()
	New(port).Start(ctx, b.NewConnection("console"))
	time.Sleep(10 * time.Millisecond) // let the retained state land first
	return port
}

func TestConsole_Commands(t *testing.T) {
	port := setup(t)
	cases := []struct {
		in   string
		want string
	}{
		{"select 3\r\n", "ok"},
		{"select 30\n", "error invalid_index"},
		{"select three\n", "error invalid_params"},
		{"select\n", "usage: select <n>"},
		{"NEXT\n", "ok"},
		{"off\n", "ok"},
		{"state\n", "2 disco (3/11)"},
		{"dance\n", "error unsupported"},
		{"select \"3\n", "error invalid_params"},
	}
	for _, c := range cases {
		port.in <- []byte(c.in)
		if got := port.waitLines(t, 1); got[0] != c.want {
			t.Errorf("%q: got %q, want %q", c.in, got[0], c.want)
		}
	}
}

func TestConsole_ListMarksCurrent(t *testing.T) {
	port := setup(t)
	port.in <- []byte("li")
	port.in <- []byte("st\n") // split across reads
	lines := port.waitLines(t, 11)
	if lines[2] != "* 2 disco" || lines[0] != "  0 retro" {
		t.Fatalf("list: %q", lines)
	}
}

func TestConsole_BlankLineIsSilent(t *testing.T) {
	port := setup(t)
	port.in <- []byte("\n\nhelp\n")
	lines := port.waitLines(t, 5)
	if !strings.HasPrefix(lines[0], "select") {
		t.Fatalf("help: %q", lines)
	}
}
