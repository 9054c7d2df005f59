package uptime

import (
	"context"
	"testing"
	"time"

	"lightpanel-go/animation"
	"lightpanel-go/bus"
	"lightpanel-go/types"
)

func TestAdvance_AccumulatesAcrossWrap(t *testing.T) {
	var c animation.Counter
	c.Set(65000)
	s := New(&c)
	s.reset()
	s.cfg = types.UptimeConfig{AutoOffMs: 100_000}

	// 60 s steps wrap the 16-bit clock on the second step.
	for i := 0; i < 3; i++ {
		c.Advance(60_000)
		s.advance()
	}
	if s.Uptime() != 180_000 {
		t.Fatalf("uptime %d", s.Uptime())
	}
}

func TestAdvance_FiresOnce(t *testing.T) {
	var c animation.Counter
	s := New(&c)
	s.reset()
	s.cfg = types.UptimeConfig{AutoOffMs: 2500}

	fired := 0
	for i := 0; i < 10; i++ {
		c.Advance(1000)
		if s.advance() {
			fired++
			if s.Uptime() != 3000 {
				t.Fatalf("fired at %d", s.Uptime())
			}
		}
	}
	if fired != 1 {
		t.Fatalf("fired %d times", fired)
	}
	s.reset()
	if s.fired || s.Uptime() != 0 {
		t.Fatal("reset did not clear")
	}
}

func TestAdvance_ZeroDisables(t *testing.T) {
	var c animation.Counter
	s := New(&c)
	s.reset()
	c.Advance(60_000)
	if s.advance() {
		t.Fatal("fired with auto-off disabled")
	}
}

func TestService_RequestsPowerOff(t *testing.T) {
	var c animation.Counter
	b := bus.NewBus(8)
	conn := b.NewConnection("test")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	off := conn.Subscribe(topicPowerOff)
	conn.Publish(conn.NewMessage(topicConfigUptime, types.UptimeConfig{AutoOffMs: 50, TickMs: 1}, true))
	New(&c).Start(ctx, conn)

	go func() {
		for ctx.Err() == nil {
			c.Advance(5)
			time.Sleep(time.Millisecond)
		}
	}()

	select {
	case m := <-off.Channel():
		if p := m.Payload.(types.PowerOffRequest); p.Reason != ReasonAutoOff {
			t.Fatalf("reason %q", p.Reason)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no power-off request")
	}
}

func TestPower_PausesWhileOffAndWakeResets(t *testing.T) {
	var c animation.Counter
	s := New(&c)
	s.reset()
	s.cfg = types.UptimeConfig{AutoOffMs: 1000}

	c.Advance(900)
	s.advance()
	s.power(types.PowerOff)
	c.Advance(5000)
	if s.advance() || s.Uptime() != 900 {
		t.Fatalf("counted while off: uptime=%d", s.Uptime())
	}
	s.power(types.PowerOn)
	if s.Uptime() != 0 {
		t.Fatalf("wake kept uptime %d", s.Uptime())
	}
	c.Advance(200)
	if s.advance() {
		t.Fatalf("auto-off fired 200ms after wake; uptime=%d", s.Uptime())
	}
	// A repeated "on" is not a wake.
	s.power(types.PowerOn)
	if s.Uptime() != 200 {
		t.Fatalf("uptime %d after repeated on", s.Uptime())
	}
}

func TestService_WakeAfterButtonOffRestartsCount(t *testing.T) {
	var c animation.Counter
	b := bus.NewBus(8)
	conn := b.NewConnection("test")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	off := conn.Subscribe(topicPowerOff)
	conn.Publish(conn.NewMessage(topicConfigUptime, types.UptimeConfig{AutoOffMs: 1000, TickMs: 1}, true))
	New(&c).Start(ctx, conn)
	time.Sleep(20 * time.Millisecond)

	c.Advance(900)
	time.Sleep(20 * time.Millisecond)
	conn.Publish(conn.NewMessage(topicPowerState, types.PowerState{State: types.PowerOff, Reason: "button"}, true))
	time.Sleep(20 * time.Millisecond)
	c.Advance(3000)
	time.Sleep(20 * time.Millisecond)
	conn.Publish(conn.NewMessage(topicPowerState, types.PowerState{State: types.PowerOn}, true))
	time.Sleep(20 * time.Millisecond)
	c.Advance(200)

	select {
	case <-off.Channel():
		t.Fatal("auto-off fired shortly after wake")
	case <-time.After(100 * time.Millisecond):
	}

	c.Advance(900)
	select {
	case <-off.Channel():
	case <-time.After(2 * time.Second):
		t.Fatal("no power-off request after a full run time")
	}
}
