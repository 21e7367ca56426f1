//go:generate mockgen -destination mock_identitystore/mock_identitystore.go github.com/anyproto/any-deck/identitystore IdentityStore
package identitystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	anystore "github.com/anyproto/any-store"
	"github.com/anyproto/any-store/anyenc"
	"go.uber.org/zap"

	"github.com/anyproto/any-deck/app"
	"github.com/anyproto/any-deck/app/logger"
	"github.com/anyproto/any-deck/event"
	"github.com/anyproto/any-deck/util/crypto"
	"github.com/anyproto/any-deck/util/storeutil"
)

const CName = "anydeck.identitystore"

var log = logger.NewNamed(CName)

var (
	parserPool = &anyenc.ParserPool{}
	arenaPool  = &anyenc.ArenaPool{}
)

/**

any-store collections:
	profiles: id (pubkey hex), n (name), a (about), t (created_at)
	contacts: id (pubkey hex), f (followed pubkeys hex), t (created_at)
	events:   id (event id hex), p (pubkey hex), k (kind), t (created_at), r (raw json)
*/

const (
	profilesCollection = "profiles"
	contactsCollection = "contacts"
	eventsCollection   = "events"
)

type Config struct {
	Path string `yaml:"path"`
}

type configGetter interface {
	GetIdentityStore() Config
}

type Profile struct {
	Pubkey    crypto.Pubkey
	Name      string
	About     string
	CreatedAt int64
}

type profileContent struct {
	Name  string `json:"name"`
	About string `json:"about"`
}

type IdentityStore interface {
	// ReadTx opens a snapshot; callers pass tx.Context() to lookups and commit it when done
	ReadTx(ctx context.Context) (anystore.ReadTx, error)
	HasProfile(ctx context.Context, pk crypto.Pubkey) (bool, error)
	HasNote(ctx context.Context, id event.Id) (bool, error)
	Profile(ctx context.Context, pk crypto.Pubkey) (Profile, error)
	ContactList(ctx context.Context, pk crypto.Pubkey) ([]crypto.Pubkey, error)
	ProcessClientEvent(ctx context.Context, ev *event.Event) error
	app.ComponentRunnable
}

var ErrProfileNotFound = errors.New("profile not found")

func New() IdentityStore {
	return &identityStore{}
}

// Open is used outside the app lifecycle, e.g. by tests and cli subcommands
func Open(ctx context.Context, path string) (IdentityStore, error) {
	s := &identityStore{path: path}
	if err := s.open(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

type identityStore struct {
	path     string
	db       anystore.DB
	profiles anystore.Collection
	contacts anystore.Collection
	events   anystore.Collection
}

func (s *identityStore) Init(a *app.App) (err error) {
	s.path = app.MustComponent[configGetter](a).GetIdentityStore().Path
	return
}

func (s *identityStore) Name() (name string) {
	return CName
}

func (s *identityStore) Run(ctx context.Context) (err error) {
	return s.open(ctx)
}

func (s *identityStore) open(ctx context.Context) (err error) {
	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create identity store dir: %w", err)
	}
	if s.db, err = anystore.Open(ctx, s.path, nil); err != nil {
		return fmt.Errorf("open identity store: %w", err)
	}
	if s.profiles, err = s.db.Collection(ctx, profilesCollection); err != nil {
		return
	}
	if s.contacts, err = s.db.Collection(ctx, contactsCollection); err != nil {
		return
	}
	s.events, err = s.db.Collection(ctx, eventsCollection)
	return
}

func (s *identityStore) ReadTx(ctx context.Context) (anystore.ReadTx, error) {
	return s.db.ReadTx(ctx)
}

func (s *identityStore) HasProfile(ctx context.Context, pk crypto.Pubkey) (bool, error) {
	return hasDoc(ctx, s.profiles, pk.Hex())
}

func (s *identityStore) HasNote(ctx context.Context, id event.Id) (bool, error) {
	return hasDoc(ctx, s.events, id.Hex())
}

func hasDoc(ctx context.Context, coll anystore.Collection, id string) (bool, error) {
	_, err := coll.FindId(ctx, id)
	if errors.Is(err, anystore.ErrDocNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *identityStore) Profile(ctx context.Context, pk crypto.Pubkey) (Profile, error) {
	doc, err := s.profiles.FindId(ctx, pk.Hex())
	if errors.Is(err, anystore.ErrDocNotFound) {
		return Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return Profile{}, err
	}
	val := doc.Value()
	return Profile{
		Pubkey:    pk,
		Name:      val.GetString("n"),
		About:     val.GetString("a"),
		CreatedAt: int64(val.GetInt("t")),
	}, nil
}

func (s *identityStore) ContactList(ctx context.Context, pk crypto.Pubkey) ([]crypto.Pubkey, error) {
	doc, err := s.contacts.FindId(ctx, pk.Hex())
	if errors.Is(err, anystore.ErrDocNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return storeutil.PubkeysFromArrayValue(doc.Value(), "f"), nil
}

// ProcessClientEvent verifies and records an event created by this client.
// Metadata and contact list events replace older ones of the same author.
func (s *identityStore) ProcessClientEvent(ctx context.Context, ev *event.Event) (err error) {
	if err = ev.Verify(); err != nil {
		return err
	}
	author, err := ev.Author()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	tx, err := s.db.WriteTx(ctx)
	if err != nil {
		return
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	ctx = tx.Context()
	arena := arenaPool.Get()
	defer arenaPool.Put(arena)

	doc := arena.NewObject()
	doc.Set("id", arena.NewString(ev.Id))
	doc.Set("p", arena.NewString(ev.Pubkey))
	doc.Set("k", arena.NewNumberInt(int(ev.Kind)))
	doc.Set("t", arena.NewNumberInt(int(ev.CreatedAt)))
	doc.Set("r", arena.NewString(string(raw)))
	if err = s.events.UpsertOne(ctx, doc); err != nil {
		return
	}

	switch ev.Kind {
	case event.KindMetadata:
		var content profileContent
		if jsonErr := json.Unmarshal([]byte(ev.Content), &content); jsonErr != nil {
			log.Warn("skip malformed metadata", zap.String("event", ev.Id), zap.Error(jsonErr))
			return nil
		}
		arena.Reset()
		err = s.upsertIfNewer(ctx, s.profiles, author, ev.CreatedAt, func(obj *anyenc.Value) {
			obj.Set("n", arena.NewString(content.Name))
			obj.Set("a", arena.NewString(content.About))
		}, arena)
	case event.KindContactList:
		arena.Reset()
		follows := ev.ReferencedPubkeys()
		err = s.upsertIfNewer(ctx, s.contacts, author, ev.CreatedAt, func(obj *anyenc.Value) {
			obj.Set("f", storeutil.NewPubkeyArrayValue(follows, arena))
		}, arena)
	}
	return
}

func (s *identityStore) upsertIfNewer(ctx context.Context, coll anystore.Collection, author crypto.Pubkey, createdAt int64, fill func(obj *anyenc.Value), arena *anyenc.Arena) error {
	parser := parserPool.Get()
	defer parserPool.Put(parser)
	existing, err := coll.FindIdWithParser(ctx, parser, author.Hex())
	isNotFound := errors.Is(err, anystore.ErrDocNotFound)
	if err != nil && !isNotFound {
		return err
	}
	if !isNotFound && int64(existing.Value().GetInt("t")) >= createdAt {
		return nil
	}
	obj := arena.NewObject()
	obj.Set("id", arena.NewString(author.Hex()))
	obj.Set("t", arena.NewNumberInt(int(createdAt)))
	fill(obj)
	return coll.UpsertOne(ctx, obj)
}

func (s *identityStore) Close(ctx context.Context) (err error) {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
