package core

import (
	"context"

	"lightpanel-go/bus"
	"lightpanel-go/errcode"
	"lightpanel-go/types"
	"lightpanel-go/x/strx"
	"lightpanel-go/x/timex"
)

const eventQueueLen = 32

type HAL struct {
	conn *bus.Connection
	res  Resources

	dev      map[string]Device  // devID -> device
	capIndex map[CapAddr]string // capability -> devID

	// Device events are published from the Run goroutine only.
	evCh chan Event
}

func NewHAL(conn *bus.Connection, reg ResourceRegistry) *HAL {
	h := &HAL{
		conn:     conn,
		dev:      map[string]Device{},
		capIndex: map[CapAddr]string{},
		evCh:     make(chan Event, eventQueueLen),
	}
	h.res = Resources{Reg: reg, Pub: h}
	return h
}

func (h *HAL) Run(ctx context.Context) {
	cfgSub := h.conn.Subscribe(topicConfigHAL())
	ctrlSub := h.conn.Subscribe(ctrlWildcard())
	defer h.conn.Unsubscribe(cfgSub)
	defer h.conn.Unsubscribe(ctrlSub)
	defer h.closeAll()

	h.pubHALState("idle", "")
	ready := false
	for {
		select {
		case <-ctx.Done():
			h.pubHALState("stopped", "context_cancelled")
			return
		case msg := <-cfgSub.Channel():
			cfg, ok := msg.Payload.(types.HALConfig)
			if !ok {
				continue
			}
			h.applyConfig(ctx, cfg)
			if !ready {
				ready = true
				h.pubHALState("ready", "")
			}
		case m := <-ctrlSub.Channel():
			if !ready {
				h.replyErr(m, errcode.HALNotReady)
				continue
			}
			h.handleControl(m)
		case ev := <-h.evCh:
			h.handleEvent(ev)
		}
	}
}

// applyConfig builds devices not seen before. Existing IDs are left alone.
func (h *HAL) applyConfig(ctx context.Context, cfg types.HALConfig) {
	for _, dc := range cfg.Devices {
		if _, exists := h.dev[dc.ID]; exists {
			continue
		}
		b, ok := lookupBuilder(dc.Type)
		if !ok {
			println("[hal] no builder for type:", dc.Type, "id:", dc.ID)
			continue
		}
		dev, err := b.Build(ctx, BuilderInput{ID: dc.ID, Type: dc.Type, Params: dc.Params, Res: h.res})
		if err != nil {
			println("[hal] build failed for:", dc.ID, "err:", err.Error())
			continue
		}
		// Index capabilities before Init so events emitted from Init resolve.
		h.dev[dev.ID()] = dev
		for _, cs := range dev.Capabilities() {
			a := CapAddr{
				Domain: strx.Coalesce(cs.Domain, defaultDomainFor(cs.Kind)),
				Kind:   cs.Kind,
				Name:   strx.Coalesce(cs.Name, dev.ID()),
			}
			h.capIndex[a] = dev.ID()
			k := string(a.Kind)
			h.conn.Publish(h.conn.NewMessage(capInfo(a.Domain, k, a.Name), cs.Info, true))
			h.conn.Publish(h.conn.NewMessage(
				capStatus(a.Domain, k, a.Name),
				types.CapabilityStatus{Link: types.LinkDown, TSms: timex.NowMs()},
				true,
			))
		}
		if err := dev.Init(ctx); err != nil {
			println("[hal] init failed for:", dc.ID, "err:", err.Error())
			h.dropDevice(dev)
			continue
		}
	}
}

func (h *HAL) dropDevice(dev Device) {
	for a, id := range h.capIndex {
		if id == dev.ID() {
			delete(h.capIndex, a)
			h.conn.Publish(h.conn.NewMessage(
				capStatus(a.Domain, string(a.Kind), a.Name),
				types.CapabilityStatus{Link: types.LinkDown, TSms: timex.NowMs(), Error: "init_failed"},
				true,
			))
		}
	}
	delete(h.dev, dev.ID())
	_ = dev.Close()
}

func (h *HAL) closeAll() {
	for _, d := range h.dev {
		_ = d.Close()
	}
}

func (h *HAL) handleControl(msg *bus.Message) {
	// hal/cap/<domain>/<kind>/<name>/control/<verb>
	if msg.Topic.Len() != 7 {
		h.replyErr(msg, errcode.InvalidTopic)
		return
	}
	a := CapAddr{Domain: msg.Topic.At(2), Kind: types.Kind(msg.Topic.At(3)), Name: msg.Topic.At(4)}
	verb := msg.Topic.At(6)

	dev := h.dev[h.capIndex[a]]
	if dev == nil {
		h.replyErr(msg, errcode.UnknownCapability)
		return
	}
	res, err := dev.Control(a, verb, msg.Payload)
	if err != nil {
		h.replyFromError(msg, err)
		return
	}
	if res.OK {
		h.replyOK(msg)
		return
	}
	h.replyErr(msg, strx.Coalesce(res.Error, errcode.Busy))
}

func (h *HAL) handleEvent(ev Event) {
	d, k, n := ev.Addr.Domain, string(ev.Addr.Kind), ev.Addr.Name
	ts := ev.TSms
	if ts == 0 {
		ts = timex.NowMs()
	}

	if ev.Err != "" {
		h.conn.Publish(h.conn.NewMessage(
			capStatus(d, k, n),
			types.CapabilityStatus{Link: types.LinkDegraded, TSms: ts, Error: ev.Err},
			true,
		))
		return
	}

	switch {
	case ev.IsEvent && ev.EventTag != "":
		h.conn.Publish(h.conn.NewMessage(capEvent(d, k, n).Append(ev.EventTag), ev.Payload, false))
	case ev.IsEvent:
		h.conn.Publish(h.conn.NewMessage(capEvent(d, k, n), ev.Payload, false))
	default:
		h.conn.Publish(h.conn.NewMessage(capValue(d, k, n), ev.Payload, true))
	}
	h.conn.Publish(h.conn.NewMessage(
		capStatus(d, k, n),
		types.CapabilityStatus{Link: types.LinkUp, TSms: ts},
		true,
	))
}

func (h *HAL) pubHALState(level, status string) {
	h.conn.Publish(h.conn.NewMessage(
		T("hal", "state"),
		types.HALState{Level: level, Status: status, TSms: timex.NowMs()},
		true,
	))
}

func defaultDomainFor(kind types.Kind) string {
	switch kind {
	case types.KindBattery:
		return "power"
	default:
		return "io"
	}
}

// ---- HAL as EventEmitter (enqueue to single publisher) ----

func (h *HAL) Emit(ev Event) bool {
	select {
	case h.evCh <- ev:
		return true
	default:
		return false
	}
}
