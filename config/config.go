package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/anyproto/any-deck/accounts"
	"github.com/anyproto/any-deck/accountstore"
	"github.com/anyproto/any-deck/app"
	"github.com/anyproto/any-deck/app/logger"
	"github.com/anyproto/any-deck/decks"
	"github.com/anyproto/any-deck/identitystore"
	"github.com/anyproto/any-deck/metric"
	"github.com/anyproto/any-deck/relaypool"
	"github.com/anyproto/any-deck/timeline"
	"github.com/anyproto/any-deck/unknownids"
)

const CName = "config"

var log = logger.NewNamed(CName)

func NewFromFile(path string) (c *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c = Default()
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Log: logger.Config{DefaultLevel: "info"},
		AccountStore: accountstore.Config{
			Path: "data/accounts.db",
		},
		IdentityStore: identitystore.Config{
			Path: "data/identity.db",
		},
		Relays: relaypool.Config{
			QueueSize:       256,
			WriteTimeoutSec: 10,
			DialTimeoutSec:  10,
			KeepaliveSec:    30,
		},
		Accounts: accounts.Config{
			DuplicatePolicy: accounts.DuplicatePolicyDrop,
		},
		Timelines: timeline.Config{
			CacheSize: 128,
		},
		UnknownIds: unknownids.Config{
			DebounceMs: 2000,
		},
	}
}

type Config struct {
	Log           logger.Config        `yaml:"log"`
	Metric        metric.Config        `yaml:"metric"`
	AccountStore  accountstore.Config  `yaml:"accountStore"`
	IdentityStore identitystore.Config `yaml:"identityStore"`
	Relays        relaypool.Config     `yaml:"relays"`
	Accounts      accounts.Config      `yaml:"accounts"`
	Decks         decks.Config         `yaml:"decks"`
	Timelines     timeline.Config      `yaml:"timelines"`
	UnknownIds    unknownids.Config    `yaml:"unknownIds"`
}

func (c *Config) Init(a *app.App) (err error) {
	log.Debug("config loaded",
		zap.Strings("relays", c.Relays.Urls),
		zap.String("duplicatePolicy", string(c.Accounts.DuplicatePolicy)),
	)
	return
}

func (c *Config) Name() (name string) {
	return CName
}

func (c *Config) GetMetric() metric.Config {
	return c.Metric
}

func (c *Config) GetAccountStore() accountstore.Config {
	return c.AccountStore
}

func (c *Config) GetIdentityStore() identitystore.Config {
	return c.IdentityStore
}

func (c *Config) GetRelays() relaypool.Config {
	return c.Relays
}

func (c *Config) GetAccounts() accounts.Config {
	return c.Accounts
}

func (c *Config) GetDecks() decks.Config {
	return c.Decks
}

func (c *Config) GetTimelines() timeline.Config {
	return c.Timelines
}

func (c *Config) GetUnknownIds() unknownids.Config {
	return c.UnknownIds
}
