package timeline

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/anyproto/any-deck/app/logger"
	"github.com/anyproto/any-deck/event"
	"github.com/anyproto/any-deck/util/crypto"
)

var log = logger.NewNamed("anydeck.timeline")

type Config struct {
	CacheSize int `yaml:"cacheSize"`
}

type KindType uint8

const (
	KindHome KindType = iota
	KindNotifications
)

// Kind identifies a timeline; account timelines carry their owner
type Kind struct {
	Type   KindType
	Pubkey crypto.Pubkey
}

func Home(pk crypto.Pubkey) Kind          { return Kind{Type: KindHome, Pubkey: pk} }
func Notifications(pk crypto.Pubkey) Kind { return Kind{Type: KindNotifications, Pubkey: pk} }

func (k Kind) Key() string {
	return fmt.Sprintf("%s:%s", k.typeName(), k.Pubkey.Hex())
}

func (k Kind) typeName() string {
	if k.Type == KindNotifications {
		return "notifications"
	}
	return "home"
}

func (k Kind) String() string {
	return k.typeName() + " " + k.Pubkey.Short()
}

// Filter is what relays are asked for to fill the timeline
func (k Kind) Filter(follows []crypto.Pubkey) event.Filter {
	if k.Type == KindNotifications {
		// notes mentioning the account
		return event.Filter{Kinds: []event.Kind{event.KindTextNote}, PTags: []string{k.Pubkey.Hex()}, Limit: 100}
	}
	authors := make([]string, 0, len(follows)+1)
	authors = append(authors, k.Pubkey.Hex())
	for _, pk := range follows {
		if pk != k.Pubkey {
			authors = append(authors, pk.Hex())
		}
	}
	return event.Filter{Authors: authors, Kinds: []event.Kind{event.KindTextNote}, Limit: 100}
}

type Timeline struct {
	Kind  Kind
	SubId string
}

// Cache keeps the most recently opened timelines
type Cache struct {
	lru *lru.Cache[string, *Timeline]
	mu  sync.Mutex
}

// NewCache calls onEvict for every timeline leaving the cache, either evicted
// or removed with its account, so its subscription can be closed
func NewCache(conf Config, onEvict func(tl *Timeline)) (*Cache, error) {
	size := conf.CacheSize
	if size <= 0 {
		size = 128
	}
	c, err := lru.NewWithEvict[string, *Timeline](size, func(key string, tl *Timeline) {
		log.Debug("timeline evicted", zap.String("timeline", key), zap.String("subId", tl.SubId))
		if onEvict != nil {
			onEvict(tl)
		}
	})
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

// Unsubscriber closes relay subscriptions
type Unsubscriber interface {
	Unsubscribe(subId string)
}

// UnsubscribeOnEvict closes the subscription of an evicted timeline
func UnsubscribeOnEvict(pool Unsubscriber) func(tl *Timeline) {
	return func(tl *Timeline) {
		if tl.SubId != "" {
			pool.Unsubscribe(tl.SubId)
		}
	}
}

// Open returns the cached timeline or creates it with subscribe
func (c *Cache) Open(kind Kind, subscribe func(kind Kind) string) *Timeline {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tl, ok := c.lru.Get(kind.Key()); ok {
		return tl
	}
	tl := &Timeline{Kind: kind}
	if subscribe != nil {
		tl.SubId = subscribe(kind)
	}
	c.lru.Add(kind.Key(), tl)
	return tl
}

func (c *Cache) Get(kind Kind) (*Timeline, bool) {
	return c.lru.Get(kind.Key())
}

// RemoveAccount drops every timeline owned by pk and returns them
func (c *Cache) RemoveAccount(pk crypto.Pubkey) (removed []*Timeline) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range c.lru.Keys() {
		if tl, ok := c.lru.Peek(key); ok && tl.Kind.Pubkey == pk {
			c.lru.Remove(key)
			removed = append(removed, tl)
		}
	}
	return
}

func (c *Cache) Len() int {
	return c.lru.Len()
}
