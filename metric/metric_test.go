package metric

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/any-deck/app"
)

var ctx = context.Background()

type testConfig struct{}

func (testConfig) Init(a *app.App) error { return nil }
func (testConfig) Name() string          { return "config" }
func (testConfig) GetMetric() Config     { return Config{} }

func TestMetric_Register(t *testing.T) {
	a := new(app.App)
	m := New()
	a.Register(testConfig{}).Register(m)
	require.NoError(t, a.Start(ctx))
	defer func() { require.NoError(t, a.Close(ctx)) }()

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total"})
	Register(a, counter)
	counter.Inc()

	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "test_total"))
	assert.Equal(t, float64(1), testutil.ToFloat64(counter))
}

func TestRegister_NoMetricComponent(t *testing.T) {
	a := new(app.App)
	assert.NotPanics(t, func() {
		Register(a, prometheus.NewCounter(prometheus.CounterOpts{Name: "unused_total"}))
	})
}
