package periodicsync

import (
	"context"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// PeriodicSync calls a function right after Run and then every period
type PeriodicSync interface {
	Run()
	// Kick calls the function now without waiting for the next tick
	Kick()
	Close()
}

type SyncerFunc func(ctx context.Context) error

type ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) C() <-chan time.Time {
	return t.Ticker.C
}

func NewPeriodicSync(period, timeout time.Duration, caller SyncerFunc, l *zap.Logger) PeriodicSync {
	ctx, cancel := context.WithCancel(context.Background())
	return &periodicCall{
		caller:     caller,
		log:        l,
		loopCtx:    ctx,
		loopCancel: cancel,
		loopDone:   make(chan struct{}),
		kick:       make(chan struct{}, 1),
		period:     period,
		timeout:    timeout,
		isRunning:  atomic.NewBool(false),
		newTicker: func(d time.Duration) ticker {
			return timeTicker{time.NewTicker(d)}
		},
	}
}

type periodicCall struct {
	log        *zap.Logger
	caller     SyncerFunc
	loopCtx    context.Context
	loopCancel context.CancelFunc
	loopDone   chan struct{}
	kick       chan struct{}
	period     time.Duration
	timeout    time.Duration
	isRunning  *atomic.Bool
	newTicker  func(d time.Duration) ticker
}

func (p *periodicCall) Run() {
	p.isRunning.Store(true)
	go p.loop()
}

func (p *periodicCall) loop() {
	defer close(p.loopDone)
	p.doCall()
	var tickCh <-chan time.Time
	if p.period > 0 {
		t := p.newTicker(p.period)
		defer t.Stop()
		tickCh = t.C()
	}
	for {
		select {
		case <-p.loopCtx.Done():
			return
		case <-tickCh:
		case <-p.kick:
		}
		p.doCall()
	}
}

func (p *periodicCall) doCall() {
	ctx := p.loopCtx
	if p.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(p.loopCtx, p.timeout)
		defer cancel()
	}
	if err := p.caller(ctx); err != nil {
		p.log.Warn("periodic call error", zap.Error(err))
	}
}

func (p *periodicCall) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

func (p *periodicCall) Close() {
	if !p.isRunning.Load() {
		return
	}
	p.loopCancel()
	<-p.loopDone
}
