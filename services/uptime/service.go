// Package uptime counts how long the panel has been playing and asks for a
// power-down once the configured run time has passed.
package uptime

import (
	"context"
	"time"

	"lightpanel-go/animation"
	"lightpanel-go/bus"
	"lightpanel-go/types"
	"lightpanel-go/x/timex"
)

var (
	topicConfigUptime = bus.T("config", "uptime")
	topicPowerState   = bus.T("power", "state")
	topicPowerOff     = bus.T("power", "control", "off")
)

const (
	defaultTickMs = 1000
	ReasonAutoOff = "auto_off"
)

type Service struct {
	clock animation.Clock

	cfg   types.UptimeConfig
	last  uint16
	total uint32
	fired bool
	off   bool // panel powered down; time is not counted
}

// New counts on clock, which may wrap every 65.536 s; the service must tick
// more often than that.
func New(clock animation.Clock) *Service { return &Service{clock: clock} }

// Start subscribes before returning, then runs the loop in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfigUptime)
	pwrSub := conn.Subscribe(topicPowerState)
	go s.serviceLoop(ctx, conn, cfgSub, pwrSub)
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection, cfgSub, pwrSub *bus.Subscription) {
	defer conn.Unsubscribe(cfgSub)
	defer conn.Unsubscribe(pwrSub)

	s.last = s.clock.Millis()
	tick := time.NewTicker(defaultTickMs * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			println("Info: [uptime] stopping after", s.total, "ms")
			return
		case <-tick.C:
			if s.advance() {
				println("[uptime] run time reached, requesting power-off")
				conn.Publish(conn.NewMessage(topicPowerOff, types.PowerOffRequest{Reason: ReasonAutoOff}, false))
			}
		case msg := <-cfgSub.Channel():
			cfg, ok := msg.Payload.(types.UptimeConfig)
			if !ok {
				continue
			}
			s.cfg = cfg
			if cfg.TickMs > 0 {
				tick.Reset(time.Duration(cfg.TickMs) * time.Millisecond)
			}
			println("Info: [uptime] auto-off after", cfg.AutoOffMs, "ms")
		case msg := <-pwrSub.Channel():
			if ps, ok := msg.Payload.(types.PowerState); ok {
				s.power(ps.State)
			}
		}
	}
}

// advance folds the time since the last tick into the total and reports
// whether the auto-off limit was crossed by this tick.
func (s *Service) advance() bool {
	now := s.clock.Millis()
	if s.off {
		s.last = now
		return false
	}
	s.total += uint32(timex.Since16(now, s.last))
	s.last = now
	if s.fired || s.cfg.AutoOffMs == 0 || s.total < s.cfg.AutoOffMs {
		return false
	}
	s.fired = true
	return true
}

// power tracks the panel's power state. Waking starts a fresh count, as
// the board did when it rebooted out of deep sleep.
func (s *Service) power(state string) {
	switch state {
	case types.PowerOff:
		s.off = true
	case types.PowerOn:
		if s.off {
			s.off = false
			s.reset()
		}
	}
}

func (s *Service) reset() {
	s.total = 0
	s.fired = false
	s.last = s.clock.Millis()
}

// Uptime is the playing time accumulated since start or the last wake.
func (s *Service) Uptime() uint32 { return s.total }
