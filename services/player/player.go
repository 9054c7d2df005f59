// Package player owns the animation engine. It runs the start-up battery
// display, then cycles the selected animation and pushes changed frames to
// the panel. Button events and animation/control requests change the
// selection; a long press or a power/control/off request turns it off.
package player

import (
	"context"
	"time"

	"lightpanel-go/animation"
	"lightpanel-go/animation/catalog"
	"lightpanel-go/bus"
	"lightpanel-go/errcode"
	"lightpanel-go/types"
	"lightpanel-go/x/timex"
)

type phase uint8

const (
	phaseIdle    phase = iota // no usable config yet
	phaseRecord               // waiting for the persisted index
	phaseSweep                // start-up sweep
	phaseMeasure              // waiting for a fresh battery reading
	phaseGauge                // showing the charge level
	phasePlay
	phaseOff
)

const (
	recordWaitMs  = 500
	measureWaitMs = 250
)

// Power-off reasons.
const (
	ReasonButton  = "button"
	ReasonRequest = "request"
)

type Service struct {
	clock animation.Clock
	conn  *bus.Connection

	cfg   types.PlayerConfig
	cat   *animation.Catalog
	eng   *animation.Engine
	phase phase
	since uint16 // clock reading when the phase started

	// index is what plays after boot; the engine may be on the dark entry
	// while it stays unchanged.
	index     int
	recIndex  int
	recSeen   bool
	longArmed bool

	boot    []bootStep
	bootAt  int
	milliV  uint16
	haveMV  bool
	freshMV bool

	shown  types.PanelFrame
	pushed bool
}

func New(clock animation.Clock) *Service { return &Service{clock: clock} }

// Start subscribes before returning so requests published afterwards reach
// the loop.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	s.conn = conn
	subs := subscriptions{
		cfg:  conn.Subscribe(topicConfigPlayer),
		rec:  conn.Subscribe(topicRecord),
		ctrl: conn.Subscribe(topicControl),
		off:  conn.Subscribe(topicPowerOff),
		btn:  conn.Subscribe(topicButtons),
		batt: conn.Subscribe(topicBatteries),
	}
	go s.serviceLoop(ctx, subs)
}

type subscriptions struct {
	cfg, rec, ctrl, off, btn, batt *bus.Subscription
}

func (s *Service) serviceLoop(ctx context.Context, subs subscriptions) {
	for _, sub := range []*bus.Subscription{subs.cfg, subs.rec, subs.ctrl, subs.off, subs.btn, subs.batt} {
		defer s.conn.Unsubscribe(sub)
	}

	tick := time.NewTicker(time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			println("Info: [player] stopping")
			return
		case <-tick.C:
			s.tick()
		case m := <-subs.cfg.Channel():
			if cfg, ok := m.Payload.(types.PlayerConfig); ok {
				s.configure(cfg)
				if cfg.TickMs > 0 {
					tick.Reset(time.Duration(cfg.TickMs) * time.Millisecond)
				}
			}
		case m := <-subs.rec.Channel():
			if rec, ok := m.Payload.(types.PersistRecord); ok {
				s.onRecord(rec)
			}
		case m := <-subs.ctrl.Channel():
			s.onControl(m)
		case m := <-subs.off.Channel():
			reason := ReasonRequest
			if p, ok := m.Payload.(types.PowerOffRequest); ok && p.Reason != "" {
				reason = p.Reason
			}
			s.powerOff(reason)
			s.reply(m, errcode.OK)
		case m := <-subs.btn.Channel():
			if m.Topic.At(4) == s.cfg.Button {
				s.onButton(m.Topic.At(6))
			}
		case m := <-subs.batt.Channel():
			if v, ok := m.Payload.(types.BatteryValue); ok && m.Topic.At(4) == s.cfg.Battery {
				s.milliV, s.haveMV, s.freshMV = v.MilliV, true, true
			}
		}
	}
}

func (s *Service) configure(cfg types.PlayerConfig) {
	if s.phase != phaseIdle {
		return
	}
	cat, ok := catalog.Lookup(cfg.SKU)
	if !ok {
		println("[player] no catalog for", cfg.SKU)
		return
	}
	s.cfg = cfg
	s.cat = cat
	s.eng = animation.New(cat, s.clock)
	println("Info: [player]", cat.SKU, "with", cat.Len(), "animations")
	s.enter(phaseRecord)
}

func (s *Service) onRecord(rec types.PersistRecord) {
	if !rec.Valid {
		s.recSeen = true
		return
	}
	s.recIndex, s.recSeen = int(rec.Index), true
}

func (s *Service) enter(p phase) {
	s.phase = p
	s.since = s.clock.Millis()
}

func (s *Service) elapsed() uint16 { return timex.Since16(s.clock.Millis(), s.since) }

func (s *Service) tick() {
	switch s.phase {
	case phaseRecord:
		if s.recSeen || s.elapsed() >= recordWaitMs {
			s.index = s.recIndex
			if s.index < 0 || s.index >= s.cat.Len() {
				s.index = 0
			}
			s.startBoot()
		}
	case phaseSweep:
		if s.elapsed() < uint16(s.boot[s.bootAt].hold.Milliseconds()) {
			return
		}
		s.bootAt++
		if s.bootAt < len(s.boot) {
			s.show(s.boot[s.bootAt].frame)
			s.enter(phaseSweep)
			return
		}
		s.freshMV = false
		s.conn.Publish(s.conn.NewMessage(batteryRead(s.cfg.Battery), nil, false))
		s.enter(phaseMeasure)
	case phaseMeasure:
		if !s.freshMV && s.elapsed() < measureWaitMs {
			return
		}
		if !s.haveMV {
			println("[player] no battery reading")
			s.startPlay()
			return
		}
		println("Info: [player] battery", s.milliV, "mV")
		s.show(gauges[s.cfg.BatteryLayout].frame(s.milliV, s.cfg.BatteryFull))
		s.enter(phaseGauge)
	case phaseGauge:
		if s.elapsed() >= s.cfg.BatteryShowMs {
			s.startPlay()
		}
	case phasePlay:
		if s.eng.Cycle() || !s.pushed {
			s.show(types.PanelFrame{Mono: s.eng.Frame(), RGB: s.eng.RGB()})
		}
	}
}

// startBoot runs the battery display when the board has one.
func (s *Service) startBoot() {
	g, ok := gauges[s.cfg.BatteryLayout]
	if s.cfg.Battery == "" || s.cfg.BatteryShowMs == 0 || !ok {
		s.startPlay()
		return
	}
	s.boot = g.sweepSteps()
	s.bootAt = 0
	s.show(s.boot[0].frame)
	s.enter(phaseSweep)
}

func (s *Service) startPlay() {
	s.eng.Select(s.index)
	s.eng.Init()
	s.pushed = false
	s.longArmed = false
	s.enter(phasePlay)
	s.publishPower(types.PowerOn, "")
	s.publishState()
}

func (s *Service) powerOff(reason string) {
	if s.eng == nil || s.phase == phaseOff {
		return
	}
	println("Info: [player] power off:", reason)
	s.eng.Select(s.cat.Blackness())
	s.enter(phaseOff)
	s.shown, s.pushed = types.PanelFrame{}, true
	s.conn.Publish(s.conn.NewMessage(panelControl(s.cfg.Panel, "off"), nil, false))
	s.publishPower(types.PowerOff, reason)
	s.publishState()
}

// wake restarts from the top as the board does after leaving deep sleep.
func (s *Service) wake() {
	println("Info: [player] wake")
	s.haveMV = false
	s.startBoot()
}

func (s *Service) onButton(tag string) {
	switch s.phase {
	case phaseOff:
		if tag == types.ButtonShort || tag == types.ButtonLong {
			s.wake()
		}
	case phasePlay:
		switch tag {
		case types.ButtonShort:
			s.selectIndex(s.next())
		case types.ButtonLong:
			// Dark until release, then off.
			s.eng.Select(s.cat.Blackness())
			s.longArmed = true
			s.publishState()
		case types.ButtonReleasedLong:
			if s.longArmed {
				s.powerOff(ReasonButton)
			}
		}
	}
}

func (s *Service) next() int { return s.cat.Next(s.index) }

// selectIndex makes i the current animation and saves it. The dark entry
// is never saved.
func (s *Service) selectIndex(i int) bool {
	if i < 0 || i >= s.cat.Len() {
		return false
	}
	s.index, s.recIndex = i, i
	if s.phase == phaseOff {
		s.wake()
	} else if s.phase == phasePlay {
		s.eng.Select(i)
		s.longArmed = false
		s.publishState()
	}
	if i != s.cat.Blackness() {
		s.conn.Publish(s.conn.NewMessage(topicSave, types.PersistSave{Index: uint8(i)}, false))
	}
	return true
}

func (s *Service) onControl(m *bus.Message) {
	if s.eng == nil {
		s.reply(m, errcode.Busy)
		return
	}
	switch m.Topic.At(2) {
	case "select":
		req, ok := m.Payload.(types.AnimationSelect)
		if !ok {
			s.reply(m, errcode.InvalidPayload)
			return
		}
		if !s.selectIndex(req.Index) {
			s.reply(m, errcode.InvalidIndex)
			return
		}
		s.reply(m, errcode.OK)
	case "next":
		s.selectIndex(s.next())
		s.reply(m, errcode.OK)
	case "off":
		s.powerOff(ReasonRequest)
		s.reply(m, errcode.OK)
	default:
		s.reply(m, errcode.Unsupported)
	}
}

// show pushes f to the panel unless it is already there.
func (s *Service) show(f types.PanelFrame) {
	if s.pushed && f == s.shown {
		return
	}
	s.shown, s.pushed = f, true
	s.conn.Publish(s.conn.NewMessage(panelControl(s.cfg.Panel, "show"), f, false))
}

func (s *Service) publishState() {
	idx := s.index
	if s.phase == phasePlay || s.phase == phaseOff {
		idx = s.eng.Index()
	}
	s.conn.Publish(s.conn.NewMessage(topicState, types.AnimationState{
		SKU:   s.cat.SKU,
		Index: idx,
		Name:  s.cat.Animations[idx].Name,
		Count: s.cat.Len(),
		Off:   s.phase == phaseOff,
	}, true))
}

func (s *Service) publishPower(state, reason string) {
	s.conn.Publish(s.conn.NewMessage(topicPowerState, types.PowerState{State: state, Reason: reason}, true))
}

func (s *Service) reply(m *bus.Message, code errcode.Code) {
	if code == errcode.OK {
		s.conn.Reply(m, types.OKReply{OK: true}, false)
		return
	}
	s.conn.Reply(m, types.ErrorReply{OK: false, Error: string(code)}, false)
}
