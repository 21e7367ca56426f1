package decks

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/anyproto/any-deck/accountstore"
	"github.com/anyproto/any-deck/app/logger"
	"github.com/anyproto/any-deck/appctx"
	"github.com/anyproto/any-deck/route"
	"github.com/anyproto/any-deck/timeline"
	"github.com/anyproto/any-deck/util/crypto"
)

var log = logger.NewNamed("anydeck.decks")

type Config struct {
	// FallbackPubkey owns the deck shown while no account is selected
	FallbackPubkey string `yaml:"fallbackPubkey"`
}

type SelectedAccountGetter interface {
	SelectedAccount() *accountstore.UserAccount
}

type Column struct {
	router *route.Router
}

func NewColumn(first route.Route) *Column {
	return &Column{router: route.NewRouter(first)}
}

func (c *Column) Router() *route.Router {
	return c.router
}

type Deck struct {
	Name    string
	columns []*Column
}

func (d *Deck) Columns() []*Column {
	return d.columns
}

func (d *Deck) AddColumn(c *Column) {
	d.columns = append(d.columns, c)
}

// Decks are the decks of one account
type Decks struct {
	active int
	decks  []*Deck
}

func (d *Decks) Active() *Deck {
	return d.decks[d.active]
}

type DecksCache struct {
	accounts map[crypto.Pubkey]*Decks
	fallback crypto.Pubkey
}

func NewDecksCache(conf Config) (*DecksCache, error) {
	var fallback crypto.Pubkey
	if conf.FallbackPubkey != "" {
		pk, err := crypto.ParsePubkey(conf.FallbackPubkey)
		if err != nil {
			return nil, fmt.Errorf("fallback pubkey: %w", err)
		}
		fallback = pk
	}
	c := &DecksCache{
		accounts: make(map[crypto.Pubkey]*Decks),
		fallback: fallback,
	}
	c.accounts[fallback] = &Decks{decks: []*Deck{{
		Name:    "Welcome",
		columns: []*Column{NewColumn(route.Accounts())},
	}}}
	return c, nil
}

func (c *DecksCache) DecksFor(pk crypto.Pubkey) (*Decks, bool) {
	d, ok := c.accounts[pk]
	return d, ok
}

func (c *DecksCache) Fallback() *Decks {
	return c.accounts[c.fallback]
}

// ActiveDecks are the decks of the selected account or the fallback ones
func (c *DecksCache) ActiveDecks(accounts SelectedAccountGetter) *Decks {
	if acc := accounts.SelectedAccount(); acc != nil {
		if d, ok := c.accounts[acc.Pubkey()]; ok {
			return d
		}
	}
	return c.Fallback()
}

func (c *DecksCache) ActiveColumnsMut(accounts SelectedAccountGetter) []*Column {
	return c.ActiveDecks(accounts).Active().Columns()
}

// AddDeckDefault gives pk a deck with home and notifications columns unless it has decks already
func (c *DecksCache) AddDeckDefault(appCtx *appctx.Context, tlCache *timeline.Cache, pk crypto.Pubkey) {
	if _, ok := c.accounts[pk]; ok {
		return
	}
	deck := &Deck{Name: "Default"}
	for _, kind := range []timeline.Kind{timeline.Home(pk), timeline.Notifications(pk)} {
		tlCache.Open(kind, func(kind timeline.Kind) string {
			return subscribe(appCtx, kind)
		})
		deck.AddColumn(NewColumn(route.Timeline(kind)))
	}
	c.accounts[pk] = &Decks{decks: []*Deck{deck}}
	log.Info("default deck added", zap.String("pubkey", pk.String()))
}

func subscribe(appCtx *appctx.Context, kind timeline.Kind) string {
	follows, err := appCtx.Identities.ContactList(context.Background(), kind.Pubkey)
	if err != nil {
		log.Warn("can't read contact list", zap.String("pubkey", kind.Pubkey.String()), zap.Error(err))
	}
	return appCtx.Pool.Subscribe(kind.Filter(follows))
}

// RemoveDecks forgets the decks of pk; the fallback decks always stay
func (c *DecksCache) RemoveDecks(pk crypto.Pubkey) bool {
	if pk == c.fallback {
		return false
	}
	if _, ok := c.accounts[pk]; !ok {
		return false
	}
	delete(c.accounts, pk)
	log.Info("decks removed", zap.String("pubkey", pk.String()))
	return true
}

// Routers resolves column routers of the active deck
func (c *DecksCache) Routers(accounts SelectedAccountGetter) Routers {
	return Routers{cache: c, accounts: accounts}
}

type Routers struct {
	cache    *DecksCache
	accounts SelectedAccountGetter
}

// RouterMut returns nil for a column the active deck does not have
func (r Routers) RouterMut(col int) *route.Router {
	cols := r.cache.ActiveColumnsMut(r.accounts)
	if col < 0 || col >= len(cols) {
		return nil
	}
	return cols[col].Router()
}
