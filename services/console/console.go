// Package console serves a line-oriented command interface on a serial
// port: one command per line, one or more text lines in reply.
package console

import (
	"context"
	"strconv"
	"strings"
	"time"

	"lightpanel-go/animation/catalog"
	"lightpanel-go/bus"
	"lightpanel-go/errcode"
	"lightpanel-go/types"

	"github.com/google/shlex"
)

// Port is the byte stream the console runs on.
type Port interface {
	Write(p []byte) (int, error)
	RecvSomeContext(ctx context.Context, buf []byte) (int, error)
}

const (
	maxLine        = 128
	requestTimeout = 500 * time.Millisecond
)

var topicState = bus.T("animation", "state")

func controlTopic(verb string) bus.Topic { return bus.T("animation", "control", verb) }

type Service struct {
	port  Port
	conn  *bus.Connection
	state types.AnimationState
	known bool
}

func New(port Port) *Service { return &Service{port: port} }

func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	s.conn = conn
	stateSub := conn.Subscribe(topicState)
	lines := make(chan string, 4)
	go s.readLoop(ctx, lines)
	go s.serviceLoop(ctx, stateSub, lines)
}

func (s *Service) serviceLoop(ctx context.Context, stateSub *bus.Subscription, lines <-chan string) {
	defer s.conn.Unsubscribe(stateSub)
	for {
		select {
		case <-ctx.Done():
			return
		case m := <-stateSub.Channel():
			if st, ok := m.Payload.(types.AnimationState); ok {
				s.state, s.known = st, true
			}
		case l := <-lines:
			for _, out := range s.handle(ctx, l) {
				s.writeLine(out)
			}
		}
	}
}

// readLoop splits the stream on LF, drops CR and truncates long lines.
func (s *Service) readLoop(ctx context.Context, lines chan<- string) {
	buf := make([]byte, 64)
	var line []byte
	for ctx.Err() == nil {
		n, err := s.port.RecvSomeContext(ctx, buf)
		if err != nil && n == 0 {
			if ctx.Err() == nil {
				println("[console] read:", err.Error())
			}
			return
		}
		for _, b := range buf[:n] {
			switch b {
			case '\n':
				select {
				case lines <- string(line):
				case <-ctx.Done():
					return
				}
				line = line[:0]
			case '\r':
			default:
				if len(line) < maxLine {
					line = append(line, b)
				}
			}
		}
	}
}

func (s *Service) writeLine(l string) {
	_, _ = s.port.Write([]byte(l + "\r\n"))
}

func (s *Service) handle(ctx context.Context, line string) []string {
	args, err := shlex.Split(line)
	if err != nil {
		return []string{"error " + string(errcode.InvalidParams)}
	}
	if len(args) == 0 {
		return nil
	}
	verb := strings.ToLower(args[0])
	switch verb {
	case "select":
		if len(args) != 2 {
			return []string{"usage: select <n>"}
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return []string{"error " + string(errcode.InvalidParams)}
		}
		return []string{s.request(ctx, "select", types.AnimationSelect{Index: n})}
	case "next", "off":
		return []string{s.request(ctx, verb, nil)}
	case "state":
		if !s.known {
			return []string{"error " + string(errcode.Busy)}
		}
		st := s.state
		out := strconv.Itoa(st.Index) + " " + st.Name + " (" + strconv.Itoa(st.Index+1) + "/" + strconv.Itoa(st.Count) + ")"
		if st.Off {
			out += " off"
		}
		return []string{out}
	case "list":
		return s.list()
	case "help":
		return []string{
			"select <n>  play animation n",
			"next        play the next animation",
			"off         switch the panel off",
			"state       show the current animation",
			"list        list animations",
		}
	default:
		return []string{"error " + string(errcode.Unsupported)}
	}
}

func (s *Service) list() []string {
	if !s.known {
		return []string{"error " + string(errcode.Busy)}
	}
	cat, ok := catalog.Lookup(s.state.SKU)
	if !ok {
		return []string{"error " + string(errcode.UnknownSKU)}
	}
	out := make([]string, 0, cat.Len())
	for i, name := range cat.Names() {
		mark := "  "
		if i == s.state.Index {
			mark = "* "
		}
		out = append(out, mark+strconv.Itoa(i)+" "+name)
	}
	return out
}

func (s *Service) request(ctx context.Context, verb string, payload any) string {
	rctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	m, err := s.conn.RequestWait(rctx, s.conn.NewMessage(controlTopic(verb), payload, false))
	if err != nil {
		return "error " + string(errcode.Of(err))
	}
	switch r := m.Payload.(type) {
	case types.OKReply:
		return "ok"
	case types.ErrorReply:
		return "error " + r.Error
	default:
		return "error " + string(errcode.Error)
	}
}
