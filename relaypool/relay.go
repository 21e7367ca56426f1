package relaypool

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cheggaaa/mb/v3"
	"github.com/gorilla/websocket"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/anyproto/any-deck/event"
)

const (
	pongWait  = 60 * time.Second
	pingEvery = (pongWait * 9) / 10
)

type relay struct {
	url          string
	queue        *mb.MB[OutboundMessage]
	dialer       *websocket.Dialer
	writeTimeout time.Duration
	pool         *relayPool

	conn      *websocket.Conn
	connMu    sync.Mutex
	connected *atomic.Bool
	done      chan struct{}
}

func newRelay(url string, conf Config, pool *relayPool) *relay {
	return &relay{
		url:          url,
		queue:        mb.New[OutboundMessage](conf.QueueSize),
		dialer:       &websocket.Dialer{HandshakeTimeout: seconds(conf.DialTimeoutSec)},
		writeTimeout: seconds(conf.WriteTimeoutSec),
		pool:         pool,
		connected:    atomic.NewBool(false),
		done:         make(chan struct{}),
	}
}

func seconds(n int) time.Duration {
	if n <= 0 {
		n = 10
	}
	return time.Duration(n) * time.Second
}

func (r *relay) writeLoop(ctx context.Context) {
	defer close(r.done)
	ticker := time.NewTicker(pingEvery)
	defer ticker.Stop()
	msgs := make(chan OutboundMessage)
	go func() {
		defer close(msgs)
		for {
			msg, err := r.queue.WaitOne(ctx)
			if err != nil {
				return
			}
			select {
			case msgs <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			if err := r.write(ctx, msg); err != nil {
				// fire-and-forget: the message is lost, the next one reconnects
				log.Warn("relay write failed", zap.String("relay", r.url), zap.Error(err))
				r.disconnect()
			}
		case <-ticker.C:
			if conn := r.currentConn(); conn != nil {
				if err := r.writeControl(conn, websocket.PingMessage); err != nil {
					r.disconnect()
				}
			}
		}
	}
}

func (r *relay) write(ctx context.Context, msg OutboundMessage) (err error) {
	conn := r.currentConn()
	if conn == nil {
		if conn, err = r.connect(ctx); err != nil {
			return
		}
		// a fresh connection has already replayed every open subscription
		if msg.isReq() {
			return nil
		}
	}
	if msg == nil {
		return nil
	}
	return r.writeJSON(conn, msg)
}

func (r *relay) writeJSON(conn *websocket.Conn, msg OutboundMessage) error {
	if err := conn.SetWriteDeadline(time.Now().Add(r.writeTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}

func (r *relay) writeControl(conn *websocket.Conn, messageType int) error {
	return conn.WriteControl(messageType, nil, time.Now().Add(r.writeTimeout))
}

func (r *relay) connect(ctx context.Context) (*websocket.Conn, error) {
	conn, _, err := r.dialer.DialContext(ctx, r.url, nil)
	if err != nil {
		return nil, err
	}
	if err = conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		_ = conn.Close()
		return nil, err
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	// REQs dropped while the relay was unreachable are covered here too
	for _, req := range r.pool.subscriptions() {
		if err = r.writeJSON(conn, req); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	r.connMu.Lock()
	r.conn = conn
	r.connMu.Unlock()
	r.connected.Store(true)
	log.Info("relay connected", zap.String("relay", r.url))
	go r.readLoop(conn)
	return conn, nil
}

func (r *relay) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Debug("relay read loop stopped", zap.String("relay", r.url), zap.Error(err))
			r.dropConn(conn)
			return
		}
		r.handleFrame(data)
	}
}

// handleFrame understands ["EVENT", subId, event] and ["NOTICE", text]; the rest is ignored
func (r *relay) handleFrame(data []byte) {
	var frame []json.RawMessage
	if err := json.Unmarshal(data, &frame); err != nil || len(frame) == 0 {
		log.Debug("skip malformed frame", zap.String("relay", r.url))
		return
	}
	var kind string
	if err := json.Unmarshal(frame[0], &kind); err != nil {
		return
	}
	switch kind {
	case "EVENT":
		if len(frame) < 3 {
			return
		}
		var subId string
		ev := &event.Event{}
		if json.Unmarshal(frame[1], &subId) != nil || json.Unmarshal(frame[2], ev) != nil {
			return
		}
		r.pool.handleEvent(r.url, subId, ev)
	case "NOTICE":
		var notice string
		if len(frame) > 1 && json.Unmarshal(frame[1], &notice) == nil {
			log.Info("relay notice", zap.String("relay", r.url), zap.String("notice", notice))
		}
	}
}

func (r *relay) currentConn() *websocket.Conn {
	r.connMu.Lock()
	defer r.connMu.Unlock()
	return r.conn
}

func (r *relay) dropConn(conn *websocket.Conn) {
	r.connMu.Lock()
	defer r.connMu.Unlock()
	if r.conn == conn {
		_ = r.conn.Close()
		r.conn = nil
		r.connected.Store(false)
	}
}

func (r *relay) disconnect() {
	if conn := r.currentConn(); conn != nil {
		r.dropConn(conn)
	}
}

func (r *relay) close() {
	_ = r.queue.Close()
	<-r.done
	r.disconnect()
}
