// Package ws is the websocket transport: it dials the rule engine, decodes
// inbound messages into the client inbox, and reconnects with backoff.
// Reconnection only re-establishes the socket; re-asserting the seat is the
// client loop's job (it answers Connected with a rejoin).
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"flipseven/internal/client"
	"flipseven/pkg/types"
)

const (
	writeTimeout   = 3 * time.Second
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

var ErrNotConnected = errors.New("not connected")

// Transport owns the current connection. Send is called from the client
// loop while Run swaps connections on its own goroutine, hence the mutex.
type Transport struct {
	url string
	log *zap.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

func NewTransport(url string, log *zap.Logger) *Transport {
	return &Transport{url: url, log: log}
}

// Send writes one outbound message with a bounded deadline.
func (t *Transport) Send(ctx context.Context, m types.ClientMessage) error {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, payload)
}

// Run dials and reads until ctx is done, posting Connected/Disconnected and
// decoded server messages into the client inbox. Backoff doubles per failed
// attempt and resets after a successful connect.
func (t *Transport) Run(ctx context.Context, inbox chan<- client.Msg) {
	backoff := initialBackoff
	for {
		conn, _, err := websocket.Dial(ctx, t.url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			t.log.Warn("dial failed", zap.String("url", t.url), zap.Error(err))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = initialBackoff

		t.mu.Lock()
		t.conn = conn
		t.mu.Unlock()
		t.log.Info("connected", zap.String("url", t.url))
		post(ctx, inbox, client.Connected{})

		readErr := t.readLoop(ctx, conn, inbox)

		t.mu.Lock()
		t.conn = nil
		t.mu.Unlock()
		_ = conn.Close(websocket.StatusNormalClosure, "bye")

		if ctx.Err() != nil {
			return
		}
		post(ctx, inbox, client.Disconnected{Err: readErr})
	}
}

func (t *Transport) readLoop(ctx context.Context, conn *websocket.Conn, inbox chan<- client.Msg) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			}
			return err
		}

		var sm types.ServerMessage
		if err := json.Unmarshal(data, &sm); err != nil {
			t.log.Warn("bad inbound payload", zap.Error(err))
			continue
		}
		post(ctx, inbox, client.FromServer{Msg: sm})
	}
}

func post(ctx context.Context, inbox chan<- client.Msg, m client.Msg) {
	select {
	case inbox <- m:
	case <-ctx.Done():
	}
}
