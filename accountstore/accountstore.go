//go:generate mockgen -destination mock_accountstore/mock_accountstore.go github.com/anyproto/any-deck/accountstore AccountStore
package accountstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	anystore "github.com/anyproto/any-store"
	"github.com/anyproto/any-store/anyenc"
	"github.com/mr-tron/base58"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/anyproto/any-deck/app"
	"github.com/anyproto/any-deck/app/logger"
	"github.com/anyproto/any-deck/unknownids"
	"github.com/anyproto/any-deck/util/crypto"
)

const CName = "anydeck.accountstore"

var log = logger.NewNamed(CName)

var arenaPool = &anyenc.ArenaPool{}

/**

any-store collections:
	accounts: id (pubkey base58), s (secret base58, absent for watch-only), o (order)
	settings: id "selected", pk (pubkey base58)
*/

const (
	accountsCollection = "accounts"
	settingsCollection = "settings"
	selectedDocId      = "selected"
)

var ErrAccountNotFound = errors.New("account not found")

type Config struct {
	Path string `yaml:"path"`
}

type configGetter interface {
	GetAccountStore() Config
}

type UserAccount struct {
	Keypair crypto.Keypair
}

func (u UserAccount) Pubkey() crypto.Pubkey {
	return u.Keypair.Pubkey
}

func (u UserAccount) WatchOnly() bool {
	return !u.Keypair.HasSecret()
}

// AddAccountResponse tells the caller which account to switch to and which
// identity still has to be reconciled
type AddAccountResponse struct {
	SwitchTo    crypto.Pubkey
	UnkIdAction *unknownids.Action
}

type AccountStore interface {
	// AddAccount returns nil when the keypair adds nothing to a known account
	AddAccount(kp crypto.Keypair) *AddAccountResponse
	RemoveAccount(pk crypto.Pubkey) bool
	SelectAccount(pk crypto.Pubkey) bool
	SelectedAccount() *UserAccount
	Accounts() []UserAccount
	Find(pk crypto.Pubkey) (UserAccount, bool)
	app.ComponentRunnable
}

func New() AccountStore {
	return &accountStore{}
}

// Open loads the store outside the app lifecycle
func Open(ctx context.Context, path string) (AccountStore, error) {
	s := &accountStore{path: path}
	if err := s.open(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

type accountStore struct {
	path     string
	db       anystore.DB
	accounts anystore.Collection
	settings anystore.Collection

	list      []UserAccount
	selected  int
	orders    map[crypto.Pubkey]int
	nextOrder int
	mu        sync.Mutex
}

func (s *accountStore) Init(a *app.App) (err error) {
	s.path = app.MustComponent[configGetter](a).GetAccountStore().Path
	s.selected = -1
	return
}

func (s *accountStore) Name() (name string) {
	return CName
}

func (s *accountStore) Run(ctx context.Context) (err error) {
	return s.open(ctx)
}

func (s *accountStore) open(ctx context.Context) (err error) {
	s.selected = -1
	s.orders = make(map[crypto.Pubkey]int)
	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create account store dir: %w", err)
	}
	if s.db, err = anystore.Open(ctx, s.path, nil); err != nil {
		return fmt.Errorf("open account store: %w", err)
	}
	if s.accounts, err = s.db.Collection(ctx, accountsCollection); err != nil {
		return
	}
	if s.settings, err = s.db.Collection(ctx, settingsCollection); err != nil {
		return
	}
	return s.load(ctx)
}

func (s *accountStore) load(ctx context.Context) (err error) {
	iter, err := s.accounts.Find(nil).Sort("o").Iter(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	defer iter.Close()
	for iter.Next() {
		doc, err := iter.Doc()
		if err != nil {
			return err
		}
		kp, err := keypairFromDoc(doc.Value())
		if err != nil {
			log.Warn("skip broken account", zap.String("id", doc.Value().GetString("id")), zap.Error(err))
			continue
		}
		order := doc.Value().GetInt("o")
		s.orders[kp.Pubkey] = order
		s.nextOrder = max(s.nextOrder, order+1)
		s.list = append(s.list, UserAccount{Keypair: kp})
	}

	log.Info("accounts loaded", zap.Int("count", len(s.list)))

	doc, err := s.settings.FindId(ctx, selectedDocId)
	if errors.Is(err, anystore.ErrDocNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if pk, pkErr := crypto.ParsePubkey(doc.Value().GetString("pk")); pkErr == nil {
		s.selected = s.index(pk)
	}
	return nil
}

func keypairFromDoc(val *anyenc.Value) (crypto.Keypair, error) {
	pk, err := crypto.ParsePubkey(val.GetString("id"))
	if err != nil {
		return crypto.Keypair{}, err
	}
	secret := val.GetString("s")
	if secret == "" {
		return crypto.OnlyPubkey(pk), nil
	}
	raw, err := base58.Decode(secret)
	if err != nil {
		return crypto.Keypair{}, fmt.Errorf("%w: %v", crypto.ErrInvalidKey, err)
	}
	priv, err := crypto.UnmarshalEd25519PrivateKey(raw)
	if err != nil {
		return crypto.Keypair{}, err
	}
	kp, err := crypto.NewKeypair(priv)
	if err != nil {
		return crypto.Keypair{}, err
	}
	if kp.Pubkey != pk {
		return crypto.Keypair{}, fmt.Errorf("%w: secret does not match %s", crypto.ErrInvalidKey, pk.Short())
	}
	return kp, nil
}

func (s *accountStore) index(pk crypto.Pubkey) int {
	return slices.IndexFunc(s.list, func(u UserAccount) bool {
		return u.Keypair.Pubkey == pk
	})
}

func (s *accountStore) AddAccount(kp crypto.Keypair) *AddAccountResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.index(kp.Pubkey); idx != -1 {
		if !kp.HasSecret() || s.list[idx].Keypair.HasSecret() {
			log.Debug("account already known", zap.String("pubkey", kp.Pubkey.String()))
			return nil
		}
		log.Info("upgrade watch-only account", zap.String("pubkey", kp.Pubkey.String()))
		s.list[idx].Keypair = kp
		s.persistAccount(idx)
	} else {
		s.list = append(s.list, UserAccount{Keypair: kp})
		s.persistAccount(len(s.list) - 1)
		log.Info("account added", zap.String("pubkey", kp.Pubkey.String()), zap.Bool("watchOnly", !kp.HasSecret()))
	}
	return &AddAccountResponse{
		SwitchTo:    kp.Pubkey,
		UnkIdAction: unknownids.PubkeyAction(kp.Pubkey),
	}
}

func (s *accountStore) RemoveAccount(pk crypto.Pubkey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.index(pk)
	if idx == -1 {
		log.Warn("remove", zap.String("pubkey", pk.String()), zap.Error(ErrAccountNotFound))
		return false
	}
	s.list = slices.Delete(s.list, idx, idx+1)
	switch {
	case s.selected == idx:
		s.selected = -1
		if len(s.list) > 0 {
			s.selected = 0
		}
		s.persistSelected()
	case s.selected > idx:
		s.selected--
	}
	delete(s.orders, pk)
	if s.db != nil {
		if err := s.accounts.DeleteId(context.Background(), pk.String()); err != nil {
			log.Error("can't delete account", zap.String("pubkey", pk.String()), zap.Error(err))
		}
	}
	log.Info("account removed", zap.String("pubkey", pk.String()))
	return true
}

func (s *accountStore) SelectAccount(pk crypto.Pubkey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.index(pk)
	if idx == -1 {
		log.Warn("select", zap.String("pubkey", pk.String()), zap.Error(ErrAccountNotFound))
		return false
	}
	s.selected = idx
	s.persistSelected()
	return true
}

func (s *accountStore) SelectedAccount() *UserAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected < 0 || s.selected >= len(s.list) {
		return nil
	}
	acc := s.list[s.selected]
	return &acc
}

func (s *accountStore) Accounts() []UserAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.list)
}

func (s *accountStore) Find(pk crypto.Pubkey) (UserAccount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.index(pk); idx != -1 {
		return s.list[idx], true
	}
	return UserAccount{}, false
}

// persistAccount writes errors to the log: the in-memory list stays authoritative for the session
func (s *accountStore) persistAccount(idx int) {
	if s.db == nil {
		return
	}
	kp := s.list[idx].Keypair
	arena := arenaPool.Get()
	defer arenaPool.Put(arena)
	doc := arena.NewObject()
	doc.Set("id", arena.NewString(kp.Pubkey.String()))
	order, ok := s.orders[kp.Pubkey]
	if !ok {
		order = s.nextOrder
		s.orders[kp.Pubkey] = order
		s.nextOrder++
	}
	doc.Set("o", arena.NewNumberInt(order))
	if kp.HasSecret() {
		secret, err := crypto.EncodeSecret(kp.SecretKey)
		if err != nil {
			log.Error("can't encode secret", zap.String("pubkey", kp.Pubkey.String()), zap.Error(err))
			return
		}
		doc.Set("s", arena.NewString(secret))
	}
	if err := s.accounts.UpsertOne(context.Background(), doc); err != nil {
		log.Error("can't persist account", zap.String("pubkey", kp.Pubkey.String()), zap.Error(err))
	}
}

func (s *accountStore) persistSelected() {
	if s.db == nil {
		return
	}
	ctx := context.Background()
	if s.selected < 0 {
		if err := s.settings.DeleteId(ctx, selectedDocId); err != nil && !errors.Is(err, anystore.ErrDocNotFound) {
			log.Error("can't clear selection", zap.Error(err))
		}
		return
	}
	arena := arenaPool.Get()
	defer arenaPool.Put(arena)
	doc := arena.NewObject()
	doc.Set("id", arena.NewString(selectedDocId))
	doc.Set("pk", arena.NewString(s.list[s.selected].Keypair.Pubkey.String()))
	if err := s.settings.UpsertOne(ctx, doc); err != nil {
		log.Error("can't persist selection", zap.Error(err))
	}
}

func (s *accountStore) Close(ctx context.Context) (err error) {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
