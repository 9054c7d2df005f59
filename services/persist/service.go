package persist

import (
	"context"

	"lightpanel-go/bus"
	"lightpanel-go/errcode"
	"lightpanel-go/types"
)

var (
	topicConfig = bus.T("config", "persist")
	topicSave   = bus.T("persist", "control", "save")
	topicRecord = bus.T("persist", "record")
)

// Service opens the store once config/persist arrives, publishes the
// loaded record and serves save requests.
type Service struct {
	dev   BlockDevice
	store *Store
}

func New(dev BlockDevice) *Service { return &Service{dev: dev} }

// Start subscribes before returning so no request published afterwards
// is missed.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfig)
	saveSub := conn.Subscribe(topicSave)
	go s.serviceLoop(ctx, conn, cfgSub, saveSub)
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection, cfgSub, saveSub *bus.Subscription) {
	defer conn.Unsubscribe(cfgSub)
	defer conn.Unsubscribe(saveSub)

	for {
		select {
		case <-ctx.Done():
			return
		case m := <-cfgSub.Channel():
			cfg, ok := m.Payload.(types.PersistConfig)
			if !ok || s.store != nil {
				continue
			}
			s.open(conn, cfg)
		case m := <-saveSub.Channel():
			s.save(conn, m)
		}
	}
}

func (s *Service) open(conn *bus.Connection, cfg types.PersistConfig) {
	rec := types.PersistRecord{}
	if cfg.Disabled {
		println("[persist] disabled")
		conn.Publish(conn.NewMessage(topicRecord, rec, true))
		return
	}
	size := cfg.Size
	if size == 0 {
		size = s.dev.EraseBlockSize()
	}
	st, err := Open(s.dev, cfg.Offset, size)
	if err != nil {
		println("[persist] open failed:", err.Error())
		conn.Publish(conn.NewMessage(topicRecord, rec, true))
		return
	}
	s.store = st
	if idx, err := st.Load(); err == nil {
		rec = types.PersistRecord{Index: idx, Valid: true}
	}
	conn.Publish(conn.NewMessage(topicRecord, rec, true))
}

func (s *Service) save(conn *bus.Connection, m *bus.Message) {
	req, ok := m.Payload.(types.PersistSave)
	if !ok {
		reply(conn, m, errcode.InvalidPayload)
		return
	}
	if s.store == nil {
		reply(conn, m, errcode.Unsupported)
		return
	}
	if err := s.store.Save(req.Index); err != nil {
		println("[persist] save failed:", err.Error())
		reply(conn, m, errcode.IOError)
		return
	}
	conn.Publish(conn.NewMessage(topicRecord, types.PersistRecord{Index: req.Index, Valid: true}, true))
	reply(conn, m, errcode.OK)
}

func reply(conn *bus.Connection, m *bus.Message, code errcode.Code) {
	if code == errcode.OK {
		conn.Reply(m, types.OKReply{OK: true}, false)
		return
	}
	conn.Reply(m, types.ErrorReply{OK: false, Error: string(code)}, false)
}
