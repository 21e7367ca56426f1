package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

type stepLog struct {
	steps []string
}

func (l *stepLog) add(step string) {
	l.steps = append(l.steps, step)
}

type plainComponent struct {
	name    string
	initErr error
	log     *stepLog
}

func (c *plainComponent) Init(a *App) error {
	c.log.add("init:" + c.name)
	return c.initErr
}

func (c *plainComponent) Name() string { return c.name }

type runnableComponent struct {
	plainComponent
	runErr error
}

func (c *runnableComponent) Run(ctx context.Context) error {
	c.log.add("run:" + c.name)
	return c.runErr
}

func (c *runnableComponent) Close(ctx context.Context) error {
	c.log.add("close:" + c.name)
	return nil
}

type greeter interface {
	Greet() string
}

type greeterComponent struct {
	plainComponent
}

func (g *greeterComponent) Greet() string { return "hi from " + g.name }

func TestApp_Registry(t *testing.T) {
	l := &stepLog{}
	a := new(App)
	a.Register(&plainComponent{name: "p1", log: l}).
		Register(&runnableComponent{plainComponent: plainComponent{name: "r1", log: l}}).
		Register(&greeterComponent{plainComponent{name: "g1", log: l}})

	t.Run("component by name", func(t *testing.T) {
		assert.Nil(t, a.Component("missing"))
		assert.Equal(t, "r1", a.MustComponent("r1").Name())
		assert.Panics(t, func() { a.MustComponent("missing") })
	})
	t.Run("component by interface", func(t *testing.T) {
		assert.Equal(t, "hi from g1", MustComponent[greeter](a).Greet())
		assert.Panics(t, func() { MustComponent[ComponentStatable](a) })
	})
	t.Run("names", func(t *testing.T) {
		assert.Equal(t, []string{"p1", "r1", "g1"}, a.ComponentNames())
	})
	t.Run("duplicate", func(t *testing.T) {
		assert.Panics(t, func() { a.Register(&plainComponent{name: "p1", log: l}) })
	})
}

// ComponentStatable is never implemented by the registered components
type ComponentStatable interface {
	StateChange(state int)
}

func TestApp_Start(t *testing.T) {
	t.Run("start and close", func(t *testing.T) {
		l := &stepLog{}
		a := new(App)
		a.Register(&runnableComponent{plainComponent: plainComponent{name: "r1", log: l}}).
			Register(&plainComponent{name: "p1", log: l}).
			Register(&runnableComponent{plainComponent: plainComponent{name: "r2", log: l}})
		require.NoError(t, a.Start(ctx))
		require.NoError(t, a.Close(ctx))
		assert.Equal(t, []string{
			"init:r1", "init:p1", "init:r2",
			"run:r1", "run:r2",
			"close:r2", "close:r1",
		}, l.steps)
		assert.Contains(t, a.StartStat().SpentMsPerComp, "r1")
	})
	t.Run("init error", func(t *testing.T) {
		l := &stepLog{}
		expErr := errors.New("init failed")
		a := new(App)
		a.Register(&runnableComponent{plainComponent: plainComponent{name: "r1", log: l}}).
			Register(&plainComponent{name: "p1", log: l, initErr: expErr})
		err := a.Start(ctx)
		require.ErrorIs(t, err, expErr)
		assert.Equal(t, []string{"init:r1", "init:p1", "close:r1"}, l.steps)
	})
	t.Run("run error", func(t *testing.T) {
		l := &stepLog{}
		expErr := errors.New("run failed")
		a := new(App)
		a.Register(&runnableComponent{plainComponent: plainComponent{name: "r1", log: l}}).
			Register(&runnableComponent{plainComponent: plainComponent{name: "r2", log: l}, runErr: expErr})
		err := a.Start(ctx)
		require.ErrorIs(t, err, expErr)
		assert.Equal(t, []string{"init:r1", "init:r2", "run:r1", "run:r2", "close:r2", "close:r1"}, l.steps)
	})
}
