package metric

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/anyproto/any-deck/app"
	"github.com/anyproto/any-deck/app/logger"
)

const CName = "anydeck.metric"

var log = logger.NewNamed(CName)

type Config struct {
	Addr string `yaml:"addr"`
}

type configSource interface {
	GetMetric() Config
}

func New() Metric {
	return new(metric)
}

type Metric interface {
	Registry() *prometheus.Registry
	app.ComponentRunnable
}

type metric struct {
	registry *prometheus.Registry
	config   Config
	server   *http.Server
}

func (m *metric) Init(a *app.App) (err error) {
	m.registry = prometheus.NewRegistry()
	m.config = app.MustComponent[configSource](a).GetMetric()
	return nil
}

func (m *metric) Name() string {
	return CName
}

func (m *metric) Run(ctx context.Context) (err error) {
	if err = m.registry.Register(collectors.NewBuildInfoCollector()); err != nil {
		return err
	}
	if err = m.registry.Register(collectors.NewGoCollector()); err != nil {
		return err
	}
	if m.config.Addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	m.server = &http.Server{Addr: m.config.Addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		errCh <- m.server.ListenAndServe()
	}()
	select {
	case err = <-errCh:
	case <-time.After(time.Second / 5):
	}
	return
}

func (m *metric) Registry() *prometheus.Registry {
	return m.registry
}

func (m *metric) Close(ctx context.Context) (err error) {
	if m.server == nil {
		return nil
	}
	if err = m.server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Warn("metric server shutdown", zap.Error(err))
		return err
	}
	return nil
}

// Register adds collectors to the registry of the metric component if the app has one
func Register(a *app.App, cs ...prometheus.Collector) {
	c := a.Component(CName)
	if c == nil {
		return
	}
	reg := c.(Metric).Registry()
	for _, col := range cs {
		if err := reg.Register(col); err != nil {
			log.Warn("can't register prometheus collector", zap.Error(err))
		}
	}
}
