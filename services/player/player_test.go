package player

import (
	"context"
	"testing"
	"time"

	"lightpanel-go/animation"
	"lightpanel-go/animation/catalog"
	"lightpanel-go/bus"
	"lightpanel-go/types"
)

var plainCfg = types.PlayerConfig{SKU: catalog.Ajandek, TickMs: 1, Panel: "front", Button: "mode"}

var gaugeCfg = types.PlayerConfig{
	SKU: catalog.Karifa, TickMs: 1, Panel: "front", Button: "mode",
	Battery: "cell", BatteryLayout: "mirrored", BatteryShowMs: 200, BatteryFull: [3]uint8{15, 0, 0},
}

type rig struct {
	conn  *bus.Connection
	clock *animation.Counter
}

// start runs a player against a clock that moves 5 ms per real millisecond.
func start(t *testing.T, cfg types.PlayerConfig, rec *types.PersistRecord) *rig {
	t.Helper()
	b := bus.NewBus(64)
	r := &rig{conn: b.NewConnection("test"), clock: &animation.Counter{}}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	if rec != nil {
		r.conn.Publish(r.conn.NewMessage(topicRecord, *rec, true))
	}
	New(r.clock).Start(ctx, b.NewConnection("player"))
	r.conn.Publish(r.conn.NewMessage(topicConfigPlayer, cfg, true))

	go func() {
		for ctx.Err() == nil {
			r.clock.Advance(5)
			time.Sleep(time.Millisecond)
		}
	}()
	return r
}

func waitFor(t *testing.T, sub *bus.Subscription, ok func(*bus.Message) bool) *bus.Message {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case m := <-sub.Channel():
			if ok(m) {
				return m
			}
		case <-deadline:
			t.Fatalf("timeout on %s", sub.Topic())
			return nil
		}
	}
}

func stateIs(idx int, off bool) func(*bus.Message) bool {
	return func(m *bus.Message) bool {
		s := m.Payload.(types.AnimationState)
		return s.Index == idx && s.Off == off
	}
}

func (r *rig) request(t *testing.T, verb string, payload any) any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m, err := r.conn.RequestWait(ctx, r.conn.NewMessage(bus.T("animation", "control", verb), payload, false))
	if err != nil {
		t.Fatal(err)
	}
	return m.Payload
}

func TestPlayer_ResumesPersistedIndexAndPushesFrames(t *testing.T) {
	r := start(t, plainCfg, &types.PersistRecord{Index: 3, Valid: true})
	frames := r.conn.Subscribe(panelControl("front", "show"))
	state := r.conn.Subscribe(topicState)

	st := waitFor(t, state, stateIs(3, false)).Payload.(types.AnimationState)
	if st.Name != "fade_ring" || st.Count != 15 || st.SKU != catalog.Ajandek {
		t.Fatalf("state %+v", st)
	}
	waitFor(t, frames, func(m *bus.Message) bool { _, ok := m.Payload.(types.PanelFrame); return ok })

	power := r.conn.Subscribe(topicPowerState)
	if p := waitFor(t, power, func(*bus.Message) bool { return true }).Payload.(types.PowerState); p.State != types.PowerOn {
		t.Fatalf("power %+v", p)
	}
}

func TestPlayer_OutOfRangeRecordFallsBackToZero(t *testing.T) {
	r := start(t, plainCfg, &types.PersistRecord{Index: 200, Valid: true})
	waitFor(t, r.conn.Subscribe(topicState), stateIs(0, false))
}

func TestPlayer_SelectRequests(t *testing.T) {
	r := start(t, plainCfg, nil) // no record: waits, then starts at 0
	state := r.conn.Subscribe(topicState)
	waitFor(t, state, stateIs(0, false))
	saves := r.conn.Subscribe(topicSave)

	if e, ok := r.request(t, "select", types.AnimationSelect{Index: 15}).(types.ErrorReply); !ok || e.Error != "invalid_index" {
		t.Fatalf("out of range: %#v", e)
	}
	if e, ok := r.request(t, "select", "five").(types.ErrorReply); !ok || e.Error != "invalid_payload" {
		t.Fatalf("bad payload: %#v", e)
	}
	if _, ok := r.request(t, "select", types.AnimationSelect{Index: 13}).(types.OKReply); !ok {
		t.Fatal("select 13 rejected")
	}
	waitFor(t, state, stateIs(13, false))
	if s := waitFor(t, saves, func(*bus.Message) bool { return true }).Payload.(types.PersistSave); s.Index != 13 {
		t.Fatalf("saved %d", s.Index)
	}

	// 13 is the last before the dark entry: next wraps to 0.
	if _, ok := r.request(t, "next", nil).(types.OKReply); !ok {
		t.Fatal("next rejected")
	}
	waitFor(t, state, stateIs(0, false))

	if e, ok := r.request(t, "dance", nil).(types.ErrorReply); !ok || e.Error != "unsupported" {
		t.Fatalf("unknown verb: %#v", e)
	}
}

func TestPlayer_LongPressPowersOffAndShortPressWakes(t *testing.T) {
	r := start(t, plainCfg, &types.PersistRecord{Index: 2, Valid: true})
	state := r.conn.Subscribe(topicState)
	waitFor(t, state, stateIs(2, false))
	power := r.conn.Subscribe(topicPowerState)
	panelOff := r.conn.Subscribe(panelControl("front", "off"))

	press := func(tag string) {
		r.conn.Publish(r.conn.NewMessage(bus.T("hal", "cap", "io", "button", "mode", "event", tag), tag, false))
	}

	press(types.ButtonLong)
	waitFor(t, state, stateIs(14, false)) // dark while held
	press(types.ButtonReleasedLong)
	waitFor(t, state, stateIs(14, true))
	waitFor(t, panelOff, func(*bus.Message) bool { return true })
	waitFor(t, power, func(m *bus.Message) bool {
		p := m.Payload.(types.PowerState)
		return p.State == types.PowerOff && p.Reason == ReasonButton
	})

	press(types.ButtonShort)
	waitFor(t, state, stateIs(2, false)) // resumes the selection, not next
	waitFor(t, power, func(m *bus.Message) bool { return m.Payload.(types.PowerState).State == types.PowerOn })
}

func TestPlayer_ShortPressAdvancesAndIgnoresOtherButtons(t *testing.T) {
	r := start(t, plainCfg, &types.PersistRecord{Index: 5, Valid: true})
	state := r.conn.Subscribe(topicState)
	waitFor(t, state, stateIs(5, false))

	r.conn.Publish(r.conn.NewMessage(bus.T("hal", "cap", "io", "button", "other", "event", "short"), "short", false))
	r.conn.Publish(r.conn.NewMessage(bus.T("hal", "cap", "io", "button", "mode", "event", "short"), "short", false))
	st := waitFor(t, state, func(*bus.Message) bool { return true }).Payload.(types.AnimationState)
	if st.Index != 6 {
		t.Fatalf("index %d, want 6", st.Index)
	}
}

func TestPlayer_PowerOffRequest(t *testing.T) {
	r := start(t, plainCfg, &types.PersistRecord{Index: 1, Valid: true})
	state := r.conn.Subscribe(topicState)
	waitFor(t, state, stateIs(1, false))
	power := r.conn.Subscribe(topicPowerState)

	r.conn.Publish(r.conn.NewMessage(topicPowerOff, types.PowerOffRequest{Reason: "auto_off"}, false))
	waitFor(t, power, func(m *bus.Message) bool {
		p := m.Payload.(types.PowerState)
		return p.State == types.PowerOff && p.Reason == "auto_off"
	})

	// A select request wakes straight into the chosen animation.
	if _, ok := r.request(t, "select", types.AnimationSelect{Index: 4}).(types.OKReply); !ok {
		t.Fatal("select rejected")
	}
	waitFor(t, state, stateIs(4, false))
}

// startGauge runs a karifa player whose battery reads 2800 mV.
func startGauge(t *testing.T) *bus.Connection {
	t.Helper()
	b := bus.NewBus(64)
	conn := b.NewConnection("test")
	// A battery gauge answering read requests.
	reads := conn.Subscribe(batteryRead("cell"))
	go func() {
		for range reads.Channel() {
			conn.Publish(conn.NewMessage(bus.T("hal", "cap", "power", "battery", "cell", "value"), types.BatteryValue{MilliV: 2800}, true))
		}
	}()

	clock := &animation.Counter{}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	New(clock).Start(ctx, b.NewConnection("player"))
	conn.Publish(conn.NewMessage(topicRecord, types.PersistRecord{}, true))
	conn.Publish(conn.NewMessage(topicConfigPlayer, gaugeCfg, true))
	go func() {
		for ctx.Err() == nil {
			clock.Advance(5)
			time.Sleep(time.Millisecond)
		}
	}()
	return conn
}

func TestPlayer_BootShowsBatteryGauge(t *testing.T) {
	conn := startGauge(t)
	frames := conn.Subscribe(panelControl("front", "show"))

	full := gauges["mirrored"].frame(2800, gaugeCfg.BatteryFull)
	waitFor(t, frames, func(m *bus.Message) bool { return m.Payload.(types.PanelFrame) == full })
	waitFor(t, conn.Subscribe(topicState), stateIs(0, false))
}

func TestPlayer_SelectWhileOffRerunsBoot(t *testing.T) {
	conn := startGauge(t)
	state := conn.Subscribe(topicState)
	waitFor(t, state, stateIs(0, false))

	r := &rig{conn: conn}
	if _, ok := r.request(t, "off", nil).(types.OKReply); !ok {
		t.Fatal("off rejected")
	}
	waitFor(t, state, stateIs(gaugeBlackness(t), true))

	frames := conn.Subscribe(panelControl("front", "show"))
	if _, ok := r.request(t, "select", types.AnimationSelect{Index: 3}).(types.OKReply); !ok {
		t.Fatal("select rejected")
	}
	full := gauges["mirrored"].frame(2800, gaugeCfg.BatteryFull)
	waitFor(t, frames, func(m *bus.Message) bool { return m.Payload.(types.PanelFrame) == full })
	waitFor(t, state, stateIs(3, false))
}

func gaugeBlackness(t *testing.T) int {
	t.Helper()
	c, ok := catalog.Lookup(gaugeCfg.SKU)
	if !ok {
		t.Fatal("no karifa catalog")
	}
	return c.Blackness()
}
