package config

import (
	"context"

	"lightpanel-go/bus"
	"lightpanel-go/errcode"
	"lightpanel-go/types"
)

const (
	serviceName  = "config"
	configPrefix = "config"
	CtxDeviceKey = "device" // context key holding the product SKU
)

// Board is everything one product needs, one section per service.
type Board struct {
	HAL     types.HALConfig
	Player  types.PlayerConfig
	Uptime  types.UptimeConfig
	Persist types.PersistConfig
}

// EmbeddedConfigLookup allows overriding how boards are resolved.
var EmbeddedConfigLookup = func(device string) (Board, bool) {
	b, ok := boards[device]
	return b, ok
}

type ConfigService struct {
	Name string
}

func NewConfigService() *ConfigService {
	return &ConfigService{Name: serviceName}
}

// publishConfig resolves the board for the SKU in ctx and publishes each
// section as a retained config/<section> message.
func (s *ConfigService) publishConfig(ctx context.Context, conn *bus.Connection) error {
	device, _ := ctx.Value(CtxDeviceKey).(string)
	if device == "" {
		return errcode.Wrap(errcode.InvalidParams, "config", errMissingDevice)
	}
	b, ok := EmbeddedConfigLookup(device)
	if !ok {
		return &errcode.E{C: errcode.UnknownSKU, Op: "config", Msg: device}
	}
	if b.Player.SKU == "" {
		b.Player.SKU = device
	}

	sections := []struct {
		key string
		val any
	}{
		{"hal", b.HAL},
		{"player", b.Player},
		{"uptime", b.Uptime},
		{"persist", b.Persist},
	}
	for _, sec := range sections {
		conn.Publish(conn.NewMessage(bus.T(configPrefix, sec.key), sec.val, true))
	}
	return nil
}

// Start launches the config publisher in a goroutine.
func (s *ConfigService) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.publishConfig(ctx, conn); err != nil {
			println("[config] not published:", err.Error())
		}
	}()
}
