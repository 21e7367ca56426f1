//go:generate mockgen -destination mock_relaypool/mock_relaypool.go github.com/anyproto/any-deck/relaypool RelayPool
package relaypool

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/anyproto/any-deck/app"
	"github.com/anyproto/any-deck/app/logger"
	"github.com/anyproto/any-deck/event"
	"github.com/anyproto/any-deck/metric"
	"github.com/anyproto/any-deck/util/crypto"
	"github.com/anyproto/any-deck/util/periodicsync"
)

const CName = "anydeck.relaypool"

var log = logger.NewNamed(CName)

var (
	ErrQueueFull = errors.New("relay queue is full")
	ErrNoSecret  = errors.New("keypair can't sign")
)

type Config struct {
	Urls            []string `yaml:"urls"`
	QueueSize       int      `yaml:"queueSize"`
	WriteTimeoutSec int      `yaml:"writeTimeoutSec"`
	DialTimeoutSec  int      `yaml:"dialTimeoutSec"`
	// KeepaliveSec is how often offline relays are redialed, 0 disables it
	KeepaliveSec int `yaml:"keepaliveSec"`
}

type configGetter interface {
	GetRelays() Config
}

// OutboundMessage is a single relay frame, encoded as a json array
type OutboundMessage []any

func (m OutboundMessage) isReq() bool {
	return len(m) > 0 && m[0] == "REQ"
}

// EventSink records events produced by this client
type EventSink interface {
	ProcessClientEvent(ctx context.Context, ev *event.Event) error
}

// EventHandler receives events coming from relays
type EventHandler func(relayUrl, subId string, ev *event.Event)

type RelayStatus struct {
	Url       string
	Connected bool
}

type RelayPool interface {
	// Send queues msg for every relay, it never blocks
	Send(msg OutboundMessage) error
	SendEvent(ev *event.Event) error
	// Subscribe returns the subscription id; subscriptions are replayed on reconnect
	Subscribe(filter event.Filter) string
	Unsubscribe(subId string)
	// SendNewContactList publishes a contact list of a freshly created account
	SendNewContactList(kp crypto.FilledKeypair, sink EventSink)
	SetEventHandler(h EventHandler)
	Relays() []RelayStatus
	app.ComponentRunnable
}

func New() RelayPool {
	return &relayPool{}
}

type relayPool struct {
	conf    Config
	relays  []*relay
	subs    map[string]event.Filter
	handler EventHandler
	mu      sync.Mutex

	sent    *atomic.Int64
	dropped *atomic.Int64

	keepalive periodicsync.PeriodicSync
	ctx       context.Context
	cancel    context.CancelFunc
}

func (p *relayPool) Init(a *app.App) (err error) {
	p.conf = app.MustComponent[configGetter](a).GetRelays()
	if p.conf.QueueSize <= 0 {
		p.conf.QueueSize = 256
	}
	p.subs = make(map[string]event.Filter)
	p.sent = atomic.NewInt64(0)
	p.dropped = atomic.NewInt64(0)
	metric.Register(a,
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "anydeck",
			Subsystem: "relaypool",
			Name:      "queued_messages_total",
			Help:      "messages queued for relays",
		}, func() float64 { return float64(p.sent.Load()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "anydeck",
			Subsystem: "relaypool",
			Name:      "dropped_messages_total",
			Help:      "messages dropped because a relay queue was full",
		}, func() float64 { return float64(p.dropped.Load()) }),
	)
	return nil
}

func (p *relayPool) Name() (name string) {
	return CName
}

func (p *relayPool) Run(ctx context.Context) (err error) {
	p.ctx, p.cancel = context.WithCancel(context.Background())
	for _, url := range p.conf.Urls {
		r := newRelay(url, p.conf, p)
		p.relays = append(p.relays, r)
		go r.writeLoop(p.ctx)
	}
	if p.conf.KeepaliveSec > 0 && len(p.relays) > 0 {
		p.keepalive = periodicsync.NewPeriodicSync(time.Duration(p.conf.KeepaliveSec)*time.Second, 0, p.dialOffline, log)
		p.keepalive.Run()
	}
	log.Info("relay pool started", zap.Strings("urls", p.conf.Urls))
	return nil
}

// dialOffline nudges writers of disconnected relays; an empty message only connects
func (p *relayPool) dialOffline(ctx context.Context) error {
	for _, r := range p.relays {
		if !r.connected.Load() {
			_ = r.queue.TryAdd(nil)
		}
	}
	return nil
}

func (p *relayPool) Send(msg OutboundMessage) error {
	var errs []error
	for _, r := range p.relays {
		if err := r.queue.TryAdd(msg); err != nil {
			p.dropped.Inc()
			log.Warn("drop message", zap.String("relay", r.url), zap.Error(ErrQueueFull))
			errs = append(errs, ErrQueueFull)
			continue
		}
		p.sent.Inc()
	}
	return errors.Join(errs...)
}

func (p *relayPool) SendEvent(ev *event.Event) error {
	return p.Send(OutboundMessage{"EVENT", ev})
}

func (p *relayPool) Subscribe(filter event.Filter) string {
	subId := uuid.NewString()
	p.mu.Lock()
	p.subs[subId] = filter
	p.mu.Unlock()
	if err := p.Send(reqMessage(subId, filter)); err != nil {
		log.Warn("subscribe", zap.String("subId", subId), zap.Error(err))
	}
	return subId
}

func (p *relayPool) Unsubscribe(subId string) {
	p.mu.Lock()
	_, ok := p.subs[subId]
	delete(p.subs, subId)
	p.mu.Unlock()
	if !ok {
		return
	}
	if err := p.Send(OutboundMessage{"CLOSE", subId}); err != nil {
		log.Warn("unsubscribe", zap.String("subId", subId), zap.Error(err))
	}
}

func reqMessage(subId string, filter event.Filter) OutboundMessage {
	return OutboundMessage{"REQ", subId, filter}
}

func (p *relayPool) subscriptions() []OutboundMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	res := make([]OutboundMessage, 0, len(p.subs))
	for id, filter := range p.subs {
		res = append(res, reqMessage(id, filter))
	}
	return res
}

// SendNewContactList follows the account itself so relays and the local
// identity store learn about it. Errors are logged only.
func (p *relayPool) SendNewContactList(kp crypto.FilledKeypair, sink EventSink) {
	ev, err := event.New(kp, event.KindContactList, []event.Tag{{"p", kp.Pubkey.Hex()}}, "", time.Now())
	if err != nil {
		log.Error("can't create contact list", zap.String("pubkey", kp.Pubkey.String()), zap.Error(err))
		return
	}
	if err = sink.ProcessClientEvent(context.Background(), ev); err != nil {
		log.Warn("can't record contact list", zap.String("pubkey", kp.Pubkey.String()), zap.Error(err))
	}
	if err = p.SendEvent(ev); err != nil {
		log.Warn("contact list not sent to every relay", zap.String("pubkey", kp.Pubkey.String()), zap.Error(err))
	}
}

func (p *relayPool) SetEventHandler(h EventHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handler = h
}

func (p *relayPool) handleEvent(relayUrl, subId string, ev *event.Event) {
	p.mu.Lock()
	h := p.handler
	p.mu.Unlock()
	if h != nil {
		h(relayUrl, subId, ev)
	}
}

func (p *relayPool) Relays() []RelayStatus {
	res := make([]RelayStatus, 0, len(p.relays))
	for _, r := range p.relays {
		res = append(res, RelayStatus{Url: r.url, Connected: r.connected.Load()})
	}
	return res
}

func (p *relayPool) Close(ctx context.Context) (err error) {
	if p.cancel == nil {
		return nil
	}
	if p.keepalive != nil {
		p.keepalive.Close()
	}
	p.cancel()
	for _, r := range p.relays {
		r.close()
	}
	return nil
}
