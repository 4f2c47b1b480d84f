// Package transport exposes the bot over websocket connections.
// Each connection speaks for exactly one channel address.
package transport

import (
	"bot-lab/auth"
	"bot-lab/contract"
	"bot-lab/domain"
	"bot-lab/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

var _ contract.Transport = (*Gateway)(nil)

const (
	FrameMessage = "message"
	FrameError   = "error"
)

// InboundFrame is what clients write.
type InboundFrame struct {
	Body string `json:"body"`
}

// OutboundFrame is what the bot writes back. ReplyTo is set on direct replies.
type OutboundFrame struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	ReplyTo string `json:"reply_to,omitempty"`
}

// TokenValidator checks the token a client presents for its address.
type TokenValidator interface {
	Validate(token string, address domain.Address) (*auth.Claims, error)
}

type connection struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
}

func (c *connection) write(ctx context.Context, frame OutboundFrame) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := c.ws.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return c.ws.WriteJSON(frame)
}

// Gateway is a websocket transport: an http.Handler for clients and a contract.Transport for the bot.
type Gateway struct {
	log      *slog.Logger
	upgrader websocket.Upgrader
	tokens   TokenValidator // nil accepts any declared address
	messages chan domain.InboundMessage
	mu       sync.RWMutex
	conns    map[domain.Address]*connection
	ready    atomic.Bool
	closed   atomic.Bool
}

type Option func(*Gateway)

// WithTokenValidator requires every client to present a token issued for its address.
func WithTokenValidator(v TokenValidator) Option {
	return func(g *Gateway) { g.tokens = v }
}

func NewGateway(log *slog.Logger, bufferSize int, opts ...Option) *Gateway {
	g := &Gateway{
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		messages: make(chan domain.InboundMessage, bufferSize),
		conns:    make(map[domain.Address]*connection),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Open marks the transport ready once its listener serves.
func (g *Gateway) Open() {
	if g.closed.Load() {
		return
	}
	g.ready.Store(true)
}

func (g *Gateway) Ready() bool {
	return g.ready.Load()
}

func (g *Gateway) Messages() <-chan domain.InboundMessage {
	return g.messages
}

// Connected reports whether a client currently speaks for address.
func (g *Gateway) Connected(address domain.Address) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.conns[address]
	return ok
}

func (g *Gateway) SendTo(ctx context.Context, to domain.Address, text string) error {
	return g.send(ctx, to, OutboundFrame{Type: FrameMessage, Text: text})
}

func (g *Gateway) Reply(ctx context.Context, msg domain.InboundMessage, text string) error {
	return g.send(ctx, msg.From, OutboundFrame{Type: FrameMessage, Text: text, ReplyTo: msg.ID.String()})
}

func (g *Gateway) send(ctx context.Context, to domain.Address, frame OutboundFrame) error {
	if g.closed.Load() {
		return errors.ErrTransportClosed
	}
	g.mu.RLock()
	conn, ok := g.conns[to]
	g.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrRecipientOffline, to)
	}
	if err := conn.write(ctx, frame); err != nil {
		return fmt.Errorf("write to %s: %w", to, err)
	}
	return nil
}

// ServeHTTP upgrades the request. Query parameters: address (required), name, token.
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if g.closed.Load() {
		http.Error(w, errors.ErrTransportClosed.Error(), http.StatusServiceUnavailable)
		return
	}

	query := r.URL.Query()
	request := auth.ConnectRequest{Address: query.Get("address"), Name: query.Get("name")}
	if err := auth.ValidateConnect(request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	address := domain.Address(request.Address)

	if g.tokens != nil {
		if _, err := g.tokens.Validate(query.Get("token"), address); err != nil {
			g.log.Warn("Transport client rejected", "address", address, "err", err)
			http.Error(w, errors.ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}
	}

	ws, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Warn("Websocket upgrade failed", "address", address, "err", err)
		return
	}

	conn := &connection{ws: ws}
	g.register(address, conn)
	defer g.unregister(address, conn)

	g.log.Debug("Transport client connected", "address", address)
	g.readLoop(r.Context(), address, request.Name, conn)
}

func (g *Gateway) register(address domain.Address, conn *connection) {
	g.mu.Lock()
	previous, ok := g.conns[address]
	g.conns[address] = conn
	g.mu.Unlock()
	if ok {
		// The newest connection wins
		_ = previous.ws.Close()
	}
}

func (g *Gateway) unregister(address domain.Address, conn *connection) {
	g.mu.Lock()
	if current, ok := g.conns[address]; ok && current == conn {
		delete(g.conns, address)
	}
	g.mu.Unlock()
	_ = conn.ws.Close()
	g.log.Debug("Transport client disconnected", "address", address)
}

func (g *Gateway) readLoop(ctx context.Context, address domain.Address, name string, conn *connection) {
	for {
		_, payload, err := conn.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.log.Warn("Websocket read failed", "address", address, "err", err)
			}
			return
		}

		var frame InboundFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			_ = conn.write(ctx, OutboundFrame{Type: FrameError, Text: "invalid message format"})
			continue
		}

		select {
		case g.messages <- domain.NewInboundMessage(address, frame.Body, name):
		case <-ctx.Done():
			return
		}
	}
}

// Close stops accepting clients and closes every open connection.
func (g *Gateway) Close() {
	g.closed.Store(true)
	g.ready.Store(false)

	g.mu.Lock()
	defer g.mu.Unlock()
	for address, conn := range g.conns {
		_ = conn.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(time.Second))
		_ = conn.ws.Close()
		delete(g.conns, address)
	}
}
