package decks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/anyproto/any-deck/accountstore"
	"github.com/anyproto/any-deck/accountstore/mock_accountstore"
	"github.com/anyproto/any-deck/appctx"
	"github.com/anyproto/any-deck/identitystore/mock_identitystore"
	"github.com/anyproto/any-deck/relaypool/mock_relaypool"
	"github.com/anyproto/any-deck/route"
	"github.com/anyproto/any-deck/timeline"
	"github.com/anyproto/any-deck/unknownids"
	"github.com/anyproto/any-deck/util/crypto"
)

func TestDecksCache_AddDeckDefault(t *testing.T) {
	fx := newFixture(t)
	pk, friend := crypto.Pubkey{1}, crypto.Pubkey{2}
	fx.identities.EXPECT().ContactList(gomock.Any(), pk).Return([]crypto.Pubkey{friend}, nil).Times(2)
	fx.pool.EXPECT().Subscribe(gomock.Any()).Return("sub-home")
	fx.pool.EXPECT().Subscribe(gomock.Any()).Return("sub-notifications")

	fx.cache.AddDeckDefault(fx.appCtx, fx.timelines, pk)
	// second call keeps the existing deck
	fx.cache.AddDeckDefault(fx.appCtx, fx.timelines, pk)

	decks, ok := fx.cache.DecksFor(pk)
	require.True(t, ok)
	cols := decks.Active().Columns()
	require.Len(t, cols, 2)
	assert.Equal(t, route.Timeline(timeline.Home(pk)), cols[0].Router().Top())
	assert.Equal(t, route.Timeline(timeline.Notifications(pk)), cols[1].Router().Top())
	tl, ok := fx.timelines.Get(timeline.Home(pk))
	require.True(t, ok)
	assert.Equal(t, "sub-home", tl.SubId)
}

func TestDecksCache_ActiveColumns(t *testing.T) {
	fx := newFixture(t)
	pk := crypto.Pubkey{1}
	fx.identities.EXPECT().ContactList(gomock.Any(), pk).Return(nil, nil).AnyTimes()
	fx.pool.EXPECT().Subscribe(gomock.Any()).Return("sub").AnyTimes()

	t.Run("no account selected", func(t *testing.T) {
		fx.accounts.EXPECT().SelectedAccount().Return(nil)
		cols := fx.cache.ActiveColumnsMut(fx.accounts)
		require.Len(t, cols, 1)
		assert.Equal(t, route.Accounts(), cols[0].Router().Top())
	})
	t.Run("selected account without decks", func(t *testing.T) {
		fx.accounts.EXPECT().SelectedAccount().Return(&accountstore.UserAccount{Keypair: crypto.OnlyPubkey(pk)})
		assert.Same(t, fx.cache.Fallback(), fx.cache.ActiveDecks(fx.accounts))
	})
	t.Run("selected account", func(t *testing.T) {
		fx.cache.AddDeckDefault(fx.appCtx, fx.timelines, pk)
		fx.accounts.EXPECT().SelectedAccount().Return(&accountstore.UserAccount{Keypair: crypto.OnlyPubkey(pk)}).Times(3)
		assert.Len(t, fx.cache.ActiveColumnsMut(fx.accounts), 2)

		routers := fx.cache.Routers(fx.accounts)
		require.NotNil(t, routers.RouterMut(1))
		assert.Nil(t, routers.RouterMut(5))
	})
	t.Run("remove", func(t *testing.T) {
		assert.True(t, fx.cache.RemoveDecks(pk))
		assert.False(t, fx.cache.RemoveDecks(pk))
		assert.False(t, fx.cache.RemoveDecks(crypto.Pubkey{}), "fallback stays")
	})
}

func TestNewDecksCache(t *testing.T) {
	kp, err := crypto.GenerateFullKeypair()
	require.NoError(t, err)
	c, err := NewDecksCache(Config{FallbackPubkey: kp.Pubkey.String()})
	require.NoError(t, err)
	_, ok := c.DecksFor(kp.Pubkey)
	assert.True(t, ok)

	_, err = NewDecksCache(Config{FallbackPubkey: "not a key"})
	assert.Error(t, err)
}

type fixture struct {
	ctrl       *gomock.Controller
	accounts   *mock_accountstore.MockAccountStore
	identities *mock_identitystore.MockIdentityStore
	pool       *mock_relaypool.MockRelayPool
	appCtx     *appctx.Context
	timelines  *timeline.Cache
	cache      *DecksCache
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	fx := &fixture{
		ctrl:       ctrl,
		accounts:   mock_accountstore.NewMockAccountStore(ctrl),
		identities: mock_identitystore.NewMockIdentityStore(ctrl),
		pool:       mock_relaypool.NewMockRelayPool(ctrl),
	}
	fx.appCtx = &appctx.Context{
		Accounts:   fx.accounts,
		Identities: fx.identities,
		Pool:       fx.pool,
		UnknownIds: unknownids.New(unknownids.Config{}),
	}
	var err error
	fx.timelines, err = timeline.NewCache(timeline.Config{CacheSize: 16}, timeline.UnsubscribeOnEvict(fx.pool))
	require.NoError(t, err)
	fx.cache, err = NewDecksCache(Config{})
	require.NoError(t, err)
	return fx
}
