package accounts

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/anyproto/any-deck/accountstore"
	"github.com/anyproto/any-deck/app"
	"github.com/anyproto/any-deck/app/logger"
	"github.com/anyproto/any-deck/appctx"
	"github.com/anyproto/any-deck/metric"
	"github.com/anyproto/any-deck/route"
	"github.com/anyproto/any-deck/timeline"
	"github.com/anyproto/any-deck/ui"
	"github.com/anyproto/any-deck/ui/accountsview"
	"github.com/anyproto/any-deck/ui/loginview"
	"github.com/anyproto/any-deck/unknownids"
	"github.com/anyproto/any-deck/util/crypto"
)

const CName = "anydeck.accounts"

var log = logger.NewNamed("accounts")

// RouterAccessor gives access to the navigation stack of a column
type RouterAccessor interface {
	// RouterMut returns nil for an unknown column
	RouterMut(col int) *route.Router
}

// Decks is the part of the deck collection accounts change
type Decks interface {
	AddDeckDefault(appCtx *appctx.Context, tlCache *timeline.Cache, pk crypto.Pubkey)
	RemoveDecks(pk crypto.Pubkey) bool
}

type Service interface {
	// RenderAccountsRoute draws the accounts route of a column and turns its response into an action
	RenderAccountsRoute(f *ui.Frame, appCtx *appctx.Context, col int, decks Decks, tlCache *timeline.Cache,
		loginState *loginview.AcquireKeyState, r route.AccountsRoute, routers RouterAccessor) *AddAccountAction
	ProcessLoginViewResponse(appCtx *appctx.Context, tlCache *timeline.Cache, decks Decks, col int,
		response loginview.Response) *AddAccountAction
	// ProcessAccountsAction applies a committed action; the returned action must be processed too
	ProcessAccountsAction(appCtx *appctx.Context, decks Decks, tlCache *timeline.Cache, action AccountsAction) *unknownids.Action
	app.ComponentRunnable
}

func New() Service {
	return &service{}
}

type service struct {
	conf    Config
	drain   *DrainTracker
	views   map[int]*accountsview.View
	actions *prometheus.CounterVec
	dropped prometheus.Counter
}

func newService(conf Config) *service {
	s := &service{
		conf:  conf,
		views: make(map[int]*accountsview.View),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "anydeck",
			Subsystem: "accounts",
			Name:      "actions_total",
			Help:      "account actions produced by the accounts screens",
		}, []string{"action"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "anydeck",
			Subsystem: "accounts",
			Name:      "dropped_unknown_id_actions_total",
			Help:      "add account actions dropped without resolving their unknown id",
		}),
	}
	s.drain = NewDrainTracker(conf.StrictDrain, s.dropped)
	return s
}

func (s *service) Init(a *app.App) (err error) {
	*s = *newService(app.MustComponent[configGetter](a).GetAccounts())
	metric.Register(a, s.actions, s.dropped)
	return nil
}

func (s *service) Name() (name string) {
	return CName
}

func (s *service) Run(ctx context.Context) (err error) {
	return nil
}

func (s *service) Close(ctx context.Context) (err error) {
	s.drain.CheckAll()
	return nil
}

func (s *service) view(col int) *accountsview.View {
	v, ok := s.views[col]
	if !ok {
		v = accountsview.New()
		s.views[col] = v
	}
	return v
}

func (s *service) RenderAccountsRoute(f *ui.Frame, appCtx *appctx.Context, col int, decks Decks, tlCache *timeline.Cache,
	loginState *loginview.AcquireKeyState, r route.AccountsRoute, routers RouterAccessor) (res *AddAccountAction) {
	defer func() {
		s.drain.Track(col, res)
	}()
	switch r {
	case route.AccountsRouteAccounts:
		resp := s.view(col).Render(f, accountEntries(appCtx))
		if resp == nil {
			return noAddAccountAction()
		}
		return newAddAccountAction(s.processAccountsViewResponse(routers, col, resp), unknownids.NoAction())
	case route.AccountsRouteAddAccount:
		resp := loginview.Render(f, loginState)
		if resp == nil {
			return noAddAccountAction()
		}
		res = s.ProcessLoginViewResponse(appCtx, tlCache, decks, col, resp)
		loginState.Reset()
		if router := routers.RouterMut(col); router != nil {
			router.GoBack()
		} else {
			log.Warn("no router for column", zap.Int("column", col))
		}
		return res
	}
	return noAddAccountAction()
}

func accountEntries(appCtx *appctx.Context) []accountsview.Entry {
	var selected crypto.Pubkey
	hasSelected := false
	if acc := appCtx.Accounts.SelectedAccount(); acc != nil {
		selected, hasSelected = acc.Pubkey(), true
	}
	accs := appCtx.Accounts.Accounts()
	entries := make([]accountsview.Entry, 0, len(accs))
	for _, acc := range accs {
		entry := accountsview.Entry{
			Pubkey:    acc.Pubkey(),
			WatchOnly: acc.WatchOnly(),
			Selected:  hasSelected && acc.Pubkey() == selected,
		}
		if profile, err := appCtx.Identities.Profile(context.Background(), acc.Pubkey()); err == nil {
			entry.Name = profile.Name
		}
		entries = append(entries, entry)
	}
	return entries
}

func (s *service) processAccountsViewResponse(routers RouterAccessor, col int, response accountsview.Response) AccountsAction {
	action := ProcessAccountsViewResponse(routers, col, response)
	if action != nil {
		s.actions.WithLabelValues(actionLabel(action)).Inc()
	} else {
		s.actions.WithLabelValues("route_to_login").Inc()
	}
	return action
}

// ProcessAccountsViewResponse turns an accounts screen response into an action.
// Routing to the login screen is done here and yields no action.
func ProcessAccountsViewResponse(routers RouterAccessor, col int, response accountsview.Response) AccountsAction {
	switch resp := response.(type) {
	case accountsview.RemoveAccount:
		action := RemoveAccountAction{Pubkey: resp.Pubkey}
		log.Info("account selection", zap.Stringer("action", action))
		return action
	case accountsview.SelectAccount:
		action := NewSwitchAccountAction(col, resp.Pubkey)
		log.Info("account selection", zap.Stringer("action", action))
		return action
	case accountsview.RouteToLogin:
		if router := routers.RouterMut(col); router != nil {
			router.RouteTo(route.AddAccount())
		} else {
			log.Warn("no router for column", zap.Int("column", col))
		}
	}
	return nil
}

func (s *service) ProcessLoginViewResponse(appCtx *appctx.Context, tlCache *timeline.Cache, decks Decks, col int,
	response loginview.Response) *AddAccountAction {
	var (
		added  *accountstore.AddAccountResponse
		pubkey crypto.Pubkey
	)
	switch resp := response.(type) {
	case loginview.CreateNew:
		kp, err := crypto.GenerateFullKeypair()
		if err != nil {
			log.Error("can't generate keypair", zap.Error(err))
			return noAddAccountAction()
		}
		pubkey = kp.Pubkey
		appCtx.Pool.SendNewContactList(kp.ToFilled(), appCtx.Identities)
		added = appCtx.Accounts.AddAccount(kp.ToKeypair())
		s.actions.WithLabelValues("create").Inc()
	case loginview.LoginWith:
		pubkey = resp.Keypair.Pubkey
		added = appCtx.Accounts.AddAccount(resp.Keypair)
		s.actions.WithLabelValues("login").Inc()
	default:
		return noAddAccountAction()
	}

	decks.AddDeckDefault(appCtx, tlCache, pubkey)

	if added != nil {
		return newAddAccountAction(NewSwitchAccountAction(col, added.SwitchTo), added.UnkIdAction)
	}
	if s.conf.duplicatePolicy() == DuplicatePolicyResolve {
		log.Debug("account already known, resolving its identity", zap.String("pubkey", pubkey.String()))
		return newAddAccountAction(nil, unknownids.PubkeyAction(pubkey))
	}
	log.Debug("account already known", zap.String("pubkey", pubkey.String()))
	return noAddAccountAction()
}

func (s *service) ProcessAccountsAction(appCtx *appctx.Context, decks Decks, tlCache *timeline.Cache, action AccountsAction) *unknownids.Action {
	switch a := action.(type) {
	case SwitchAccountAction:
		s.actions.WithLabelValues("switched").Inc()
		if !appCtx.Accounts.SelectAccount(a.SwitchTo) {
			log.Warn("switch to unknown account", zap.String("pubkey", a.SwitchTo.String()), zap.Int("column", a.SourceColumn))
			return unknownids.NoAction()
		}
		log.Info("account switched", zap.String("pubkey", a.SwitchTo.String()), zap.Int("column", a.SourceColumn))
		return unknownids.PubkeyAction(a.SwitchTo)
	case RemoveAccountAction:
		s.actions.WithLabelValues("removed").Inc()
		if !appCtx.Accounts.RemoveAccount(a.Pubkey) {
			return unknownids.NoAction()
		}
		decks.RemoveDecks(a.Pubkey)
		if tlCache != nil {
			// the cache closes their subscriptions
			removed := tlCache.RemoveAccount(a.Pubkey)
			log.Info("account removed", zap.String("pubkey", a.Pubkey.String()), zap.Int("timelines", len(removed)))
		}
	}
	return unknownids.NoAction()
}

func actionLabel(action AccountsAction) string {
	switch action.(type) {
	case SwitchAccountAction:
		return "select"
	case RemoveAccountAction:
		return "remove"
	}
	return "unknown"
}
