package app

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/anyproto/any-deck/app/logger"
)

// set with -ldflags at build time
var (
	GitCommit, GitBranch, GitState, GitSummary, BuildDate string
	name                                                  = "any-deck"
)

var log = logger.NewNamed("app")

// Component is anything the client registers at startup: stores, the relay pool, accounts
type Component interface {
	// Init resolves dependencies; an error aborts the start
	Init(a *App) (err error)
	// Name is unique within the app
	Name() (name string)
}

// ComponentRunnable owns resources that are opened in Run and released in Close
type ComponentRunnable interface {
	Component
	Run(ctx context.Context) (err error)
	// Close is also called for already started components when a later one fails
	Close(ctx context.Context) (err error)
}

// App holds the components of the client in registration order
type App struct {
	components []Component
	mu         sync.RWMutex
	startStat  StartStat
}

type StartStat struct {
	SpentMsPerComp map[string]int64
	SpentMsTotal   int64
}

func (app *App) Name() string {
	return name
}

func (app *App) Version() string {
	return GitSummary
}

func VersionDescription() string {
	return fmt.Sprintf("build on %s from %s at #%s(%s)", BuildDate, GitBranch, GitCommit, GitState)
}

// StartStat is the time each component spent in Run
func (app *App) StartStat() StartStat {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.startStat
}

// Register appends s; components start in this order and close in reverse
func (app *App) Register(s Component) *App {
	app.mu.Lock()
	defer app.mu.Unlock()
	for _, es := range app.components {
		if s.Name() == es.Name() {
			panic(fmt.Errorf("component %q registered twice", s.Name()))
		}
	}
	app.components = append(app.components, s)
	return app
}

// Component returns nil when name is not registered
func (app *App) Component(name string) Component {
	app.mu.RLock()
	defer app.mu.RUnlock()
	for _, s := range app.components {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func (app *App) MustComponent(name string) Component {
	s := app.Component(name)
	if s == nil {
		panic(fmt.Errorf("component %q is not registered", name))
	}
	return s
}

// MustComponent returns the first registered component implementing i
func MustComponent[i any](app *App) i {
	app.mu.RLock()
	defer app.mu.RUnlock()
	for _, s := range app.components {
		if v, ok := s.(i); ok {
			return v
		}
	}
	empty := new(i)
	panic(fmt.Errorf("component with interface %v is not found", reflect.TypeOf(empty).Elem().String()))
}

func (app *App) ComponentNames() (names []string) {
	app.mu.RLock()
	defer app.mu.RUnlock()
	names = make([]string, len(app.components))
	for i, c := range app.components {
		names[i] = c.Name()
	}
	return
}

// Start inits every component, then runs the runnable ones.
// On failure the components up to the failing one are closed.
func (app *App) Start(ctx context.Context) (err error) {
	app.mu.RLock()
	defer app.mu.RUnlock()
	app.startStat.SpentMsPerComp = make(map[string]int64)

	for i, s := range app.components {
		if err = s.Init(app); err != nil {
			app.closeUpTo(ctx, i)
			return fmt.Errorf("init %s: %w", s.Name(), err)
		}
	}

	for i, s := range app.components {
		runnable, ok := s.(ComponentRunnable)
		if !ok {
			continue
		}
		start := time.Now()
		if err = runnable.Run(ctx); err != nil {
			app.closeUpTo(ctx, i)
			return fmt.Errorf("run %s: %w", s.Name(), err)
		}
		spent := time.Since(start).Milliseconds()
		app.startStat.SpentMsTotal += spent
		app.startStat.SpentMsPerComp[s.Name()] = spent
	}
	log.Debug("components started", zap.Int("count", len(app.components)))
	return
}

func (app *App) closeUpTo(ctx context.Context, idx int) {
	for i := idx; i >= 0; i-- {
		if runnable, ok := app.components[i].(ComponentRunnable); ok {
			if err := runnable.Close(ctx); err != nil {
				log.Warn("close after failed start", zap.String("component", runnable.Name()), zap.Error(err))
			}
		}
	}
}

// Close closes runnable components in reverse order and joins their errors
func (app *App) Close(ctx context.Context) error {
	app.mu.RLock()
	defer app.mu.RUnlock()
	var errs []error
	for i := len(app.components) - 1; i >= 0; i-- {
		runnable, ok := app.components[i].(ComponentRunnable)
		if !ok {
			continue
		}
		if err := runnable.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", runnable.Name(), err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	log.Debug("components closed")
	return nil
}
