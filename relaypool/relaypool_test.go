package relaypool

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/mock/gomock"

	"github.com/anyproto/any-deck/app"
	"github.com/anyproto/any-deck/event"
	"github.com/anyproto/any-deck/identitystore/mock_identitystore"
	"github.com/anyproto/any-deck/util/crypto"
)

var ctx = context.Background()

func TestRelayPool_SendEvent(t *testing.T) {
	relay := newTestRelay(t)
	fx := newFixture(t, Config{Urls: []string{relay.url()}})
	defer fx.finish(t)

	ev := fx.newEvent(t)
	require.NoError(t, fx.SendEvent(ev))

	frame := relay.next(t)
	require.Len(t, frame, 2)
	assert.Equal(t, `"EVENT"`, string(frame[0]))
	var got event.Event
	require.NoError(t, json.Unmarshal(frame[1], &got))
	assert.Equal(t, ev.Id, got.Id)
	assert.Eventually(t, func() bool {
		return fx.Relays()[0].Connected
	}, time.Second, 10*time.Millisecond)
}

func TestRelayPool_Subscribe(t *testing.T) {
	relay := newTestRelay(t)
	fx := newFixture(t, Config{Urls: []string{relay.url()}})
	defer fx.finish(t)

	received := make(chan *event.Event, 1)
	fx.SetEventHandler(func(relayUrl, subId string, ev *event.Event) {
		received <- ev
	})
	subId := fx.Subscribe(event.Filter{Kinds: []event.Kind{event.KindMetadata}})
	frame := relay.next(t)
	require.Len(t, frame, 3)
	assert.Equal(t, `"REQ"`, string(frame[0]))
	assert.Equal(t, `"`+subId+`"`, string(frame[1]))

	ev := fx.newEvent(t)
	relay.reply(t, []any{"EVENT", subId, ev})
	select {
	case got := <-received:
		assert.Equal(t, ev.Id, got.Id)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}

	fx.Unsubscribe(subId)
	frame = relay.next(t)
	assert.Equal(t, `"CLOSE"`, string(frame[0]))
	assert.Empty(t, fx.subscriptions())
}

func TestRelayPool_SubscribeWhileOffline(t *testing.T) {
	relay := newTestRelay(t)
	relay.refuse.Store(1)
	fx := newFixture(t, Config{Urls: []string{relay.url()}})
	defer fx.finish(t)

	subId := fx.Subscribe(event.Filter{Kinds: []event.Kind{event.KindTextNote}})
	require.Eventually(t, func() bool {
		return relay.attempts.Load() == 1
	}, time.Second, 10*time.Millisecond)
	assert.False(t, fx.Relays()[0].Connected)

	// the next successful dial sends the subscription
	require.NoError(t, fx.dialOffline(ctx))
	frame := relay.next(t)
	require.Len(t, frame, 3)
	assert.Equal(t, `"REQ"`, string(frame[0]))
	assert.Equal(t, `"`+subId+`"`, string(frame[1]))
	assert.Eventually(t, func() bool {
		return fx.Relays()[0].Connected
	}, time.Second, 10*time.Millisecond)
	select {
	case frame := <-relay.frames:
		t.Fatalf("unexpected frame: %v", frame)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRelayPool_SubscribeReplayedOnce(t *testing.T) {
	relay := newTestRelay(t)
	fx := newFixture(t, Config{Urls: []string{relay.url()}})
	defer fx.finish(t)

	first := fx.Subscribe(event.Filter{Kinds: []event.Kind{event.KindMetadata}})
	assert.Equal(t, `"`+first+`"`, string(relay.next(t)[1]))
	second := fx.Subscribe(event.Filter{Kinds: []event.Kind{event.KindTextNote}})
	assert.Equal(t, `"`+second+`"`, string(relay.next(t)[1]))
	select {
	case frame := <-relay.frames:
		t.Fatalf("unexpected frame: %v", frame)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRelayPool_QueueFull(t *testing.T) {
	fx := newFixture(t, Config{QueueSize: 1})
	defer fx.finish(t)
	// relay without a writer keeps its queue filled
	fx.relays = append(fx.relays, newRelay("ws://127.0.0.1:1", fx.conf, fx.relayPool))

	require.NoError(t, fx.Send(OutboundMessage{"NOTICE", "one"}))
	require.ErrorIs(t, fx.Send(OutboundMessage{"NOTICE", "two"}), ErrQueueFull)
	assert.Equal(t, int64(1), fx.dropped.Load())
	assert.Equal(t, int64(1), fx.sent.Load())
	fx.relays = nil
}

func TestRelayPool_SendNewContactList(t *testing.T) {
	relay := newTestRelay(t)
	fx := newFixture(t, Config{Urls: []string{relay.url()}})
	defer fx.finish(t)
	kp, err := crypto.GenerateFullKeypair()
	require.NoError(t, err)

	sink := mock_identitystore.NewMockIdentityStore(fx.ctrl)
	sink.EXPECT().ProcessClientEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, ev *event.Event) error {
		assert.Equal(t, event.KindContactList, ev.Kind)
		assert.Equal(t, []crypto.Pubkey{kp.Pubkey}, ev.ReferencedPubkeys())
		return ev.Verify()
	})
	fx.SendNewContactList(kp.ToFilled(), sink)

	frame := relay.next(t)
	var got event.Event
	require.NoError(t, json.Unmarshal(frame[1], &got))
	assert.Equal(t, event.KindContactList, got.Kind)
	assert.Equal(t, kp.Pubkey.Hex(), got.Pubkey)
}

func TestRelayPool_Keepalive(t *testing.T) {
	relay := newTestRelay(t)
	fx := newFixture(t, Config{Urls: []string{relay.url()}, KeepaliveSec: 60})
	defer fx.finish(t)

	// the first keepalive round dials without sending anything
	select {
	case <-relay.conns:
	case <-time.After(2 * time.Second):
		t.Fatal("relay was not dialed")
	}
	assert.Eventually(t, func() bool {
		return fx.Relays()[0].Connected
	}, time.Second, 10*time.Millisecond)
	require.NoError(t, fx.dialOffline(ctx))
	select {
	case frame := <-relay.frames:
		t.Fatalf("unexpected frame: %v", frame)
	case <-time.After(50 * time.Millisecond):
	}
}

type testConfig struct {
	conf Config
}

func (c testConfig) Init(a *app.App) error { return nil }
func (c testConfig) Name() string          { return "config" }
func (c testConfig) GetRelays() Config     { return c.conf }

type fixture struct {
	*relayPool
	a    *app.App
	ctrl *gomock.Controller
}

func newFixture(t *testing.T, conf Config) *fixture {
	fx := &fixture{
		relayPool: New().(*relayPool),
		a:         new(app.App),
		ctrl:      gomock.NewController(t),
	}
	fx.a.Register(testConfig{conf: conf}).Register(fx.relayPool)
	require.NoError(t, fx.a.Start(ctx))
	return fx
}

func (fx *fixture) finish(t *testing.T) {
	require.NoError(t, fx.a.Close(ctx))
}

func (fx *fixture) newEvent(t *testing.T) *event.Event {
	kp, err := crypto.GenerateFullKeypair()
	require.NoError(t, err)
	ev, err := event.New(kp.ToFilled(), event.KindMetadata, nil, `{"name":"test"}`, time.Unix(100, 0))
	require.NoError(t, err)
	return ev
}

type testRelay struct {
	server *httptest.Server
	frames chan []json.RawMessage
	conns  chan *websocket.Conn
	conn   *websocket.Conn
	// refuse is the number of handshakes to reject
	refuse   *atomic.Int32
	attempts *atomic.Int32
}

func newTestRelay(t *testing.T) *testRelay {
	tr := &testRelay{
		frames:   make(chan []json.RawMessage, 16),
		conns:    make(chan *websocket.Conn, 1),
		refuse:   atomic.NewInt32(0),
		attempts: atomic.NewInt32(0),
	}
	upgrader := websocket.Upgrader{}
	tr.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tr.attempts.Inc()
		if tr.refuse.Load() > 0 {
			tr.refuse.Dec()
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		tr.conns <- conn
		for {
			var frame []json.RawMessage
			if err := conn.ReadJSON(&frame); err != nil {
				return
			}
			tr.frames <- frame
		}
	}))
	t.Cleanup(tr.server.Close)
	return tr
}

func (tr *testRelay) url() string {
	return "ws" + strings.TrimPrefix(tr.server.URL, "http")
}

func (tr *testRelay) next(t *testing.T) []json.RawMessage {
	select {
	case frame := <-tr.frames:
		return frame
	case <-time.After(2 * time.Second):
		t.Fatal("relay received nothing")
		return nil
	}
}

func (tr *testRelay) reply(t *testing.T, msg any) {
	if tr.conn == nil {
		select {
		case tr.conn = <-tr.conns:
		case <-time.After(time.Second):
			t.Fatal("no connection")
		}
	}
	require.NoError(t, tr.conn.WriteJSON(msg))
}
