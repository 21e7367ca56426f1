package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slices"
)

type LogFormat int

const (
	ColorizedOutput LogFormat = iota
	PlaintextOutput
	JSONOutput
)

type NamedLevel struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

type Config struct {
	Production     bool         `yaml:"production"`
	DefaultLevel   string       `yaml:"defaultLevel"`
	Levels         []NamedLevel `yaml:"levels"` // first match wins
	AddOutputPaths []string     `yaml:"outputPaths"`
	// the terminal ui owns stderr, so interactive runs log to files only
	DisableStdErr bool      `yaml:"disableStdErr"`
	Format        LogFormat `yaml:"format"`
}

func (l Config) zapConfig() zap.Config {
	var conf zap.Config
	if l.Production {
		conf = zap.NewProductionConfig()
	} else {
		conf = zap.NewDevelopmentConfig()
	}
	enc := conf.EncoderConfig
	switch l.Format {
	case PlaintextOutput:
		conf.Encoding = "console"
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
	case JSONOutput:
		conf.Encoding = "json"
		enc.MessageKey = "msg"
		enc.TimeKey = "ts"
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		conf.Encoding = "console"
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	conf.EncoderConfig = enc
	conf.OutputPaths = append(conf.OutputPaths, l.AddOutputPaths...)
	if l.DisableStdErr {
		conf.OutputPaths = slices.DeleteFunc(conf.OutputPaths, func(path string) bool {
			return path == "stderr"
		})
		conf.ErrorOutputPaths = slices.DeleteFunc(conf.ErrorOutputPaths, func(path string) bool {
			return path == "stderr"
		})
	}
	if lvl, err := zap.ParseAtomicLevel(l.DefaultLevel); err == nil {
		conf.Level = lvl
	}
	return conf
}

// ApplyGlobal rebuilds the default logger from the config and reapplies named levels
func (l Config) ApplyGlobal() error {
	conf := l.zapConfig()
	lg, err := conf.Build()
	if err != nil {
		return err
	}
	mu.Lock()
	loggerConfig = conf
	mu.Unlock()
	SetDefault(lg)
	SetNamedLevels(l.Levels)
	return nil
}

// LevelsFromStr parses "name1=DEBUG;prefix*=WARN;ERROR" into named levels;
// an entry without a name applies to every logger
func LevelsFromStr(s string) (levels []NamedLevel) {
	for _, kv := range strings.Split(s, ";") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		name, level, found := strings.Cut(kv, "=")
		if !found {
			name, level = "*", name
		}
		if _, err := zap.ParseAtomicLevel(level); err != nil {
			continue
		}
		levels = append(levels, NamedLevel{Name: strings.TrimSpace(name), Level: strings.TrimSpace(level)})
	}
	return
}
