package logger

import (
	"sync"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
)

var (
	mu           sync.Mutex
	logger       *zap.Logger
	loggerConfig zap.Config
	namedLevels  []namedLevel
	namedLoggers = make(map[string]*zap.Logger)
)

type namedLevel struct {
	name  string
	glob  glob.Glob
	level zap.AtomicLevel
}

func init() {
	loggerConfig = zap.NewDevelopmentConfig()
	logger, _ = loggerConfig.Build()
}

// SetDefault replaces the core used by every logger created with NewNamed
func SetDefault(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	*logger = *l
	for name, nl := range namedLoggers {
		*nl = *newNamedCore(name)
	}
}

// SetNamedLevels sets per-name levels, names may be glob patterns like "relay*"
func SetNamedLevels(nls []NamedLevel) {
	mu.Lock()
	defer mu.Unlock()
	namedLevels = namedLevels[:0]
	minLevel := logger.Level()
	for _, nl := range nls {
		lvl, err := zap.ParseAtomicLevel(nl.Level)
		if err != nil {
			continue
		}
		g, err := glob.Compile(nl.Name)
		if err != nil {
			continue
		}
		namedLevels = append(namedLevels, namedLevel{name: nl.Name, glob: g, level: lvl})
		if lvl.Level() < minLevel {
			minLevel = lvl.Level()
		}
	}
	if minLevel < logger.Level() {
		// the root core filters first, so it must allow the most verbose named level
		loggerConfig.Level = zap.NewAtomicLevelAt(minLevel)
		if lg, err := loggerConfig.Build(); err == nil {
			*logger = *lg
		}
	}
	for name, nl := range namedLoggers {
		*nl = *newNamedCore(name)
	}
}

func Default() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func getLevel(name string) zap.AtomicLevel {
	for _, nl := range namedLevels {
		if nl.name == name || nl.glob.Match(name) {
			return nl.level
		}
	}
	return zap.NewAtomicLevelAt(logger.Level())
}

func newNamedCore(name string) *zap.Logger {
	return zap.New(logger.Core()).Named(name).WithOptions(zap.IncreaseLevel(getLevel(name)))
}

// NewNamed returns a logger shared by every caller with the same name
func NewNamed(name string) *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := namedLoggers[name]; ok {
		return l
	}
	l := newNamedCore(name)
	namedLoggers[name] = l
	return l
}
