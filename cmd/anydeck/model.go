package main

import (
	"context"
	"time"

	anystore "github.com/anyproto/any-store"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/anyproto/any-deck/accounts"
	"github.com/anyproto/any-deck/app"
	"github.com/anyproto/any-deck/appctx"
	"github.com/anyproto/any-deck/config"
	"github.com/anyproto/any-deck/decks"
	"github.com/anyproto/any-deck/event"
	"github.com/anyproto/any-deck/relaypool"
	"github.com/anyproto/any-deck/route"
	"github.com/anyproto/any-deck/timeline"
	"github.com/anyproto/any-deck/ui"
	"github.com/anyproto/any-deck/ui/loginview"
	"github.com/anyproto/any-deck/unknownids"
)

const tickEvery = 500 * time.Millisecond

type tickMsg time.Time

type relayEventMsg struct {
	relay string
	event *event.Event
}

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	appCtx    *appctx.Context
	accounts  accounts.Service
	decks     *decks.DecksCache
	timelines *timeline.Cache
	login     *loginview.AcquireKeyState

	focus  int
	width  int
	height int
	view   string
}

func newModel(a *app.App, conf *config.Config) (*model, error) {
	deckCache, err := decks.NewDecksCache(conf.GetDecks())
	if err != nil {
		return nil, err
	}
	timelines, err := timeline.NewCache(conf.GetTimelines(), timeline.UnsubscribeOnEvict(app.MustComponent[relaypool.RelayPool](a)))
	if err != nil {
		return nil, err
	}
	m := &model{
		appCtx:    appctx.FromApp(a, unknownids.New(conf.GetUnknownIds())),
		accounts:  app.MustComponent[accounts.Service](a),
		decks:     deckCache,
		timelines: timelines,
		login:     loginview.NewAcquireKeyState(),
		width:     120,
	}
	for _, acc := range m.appCtx.Accounts.Accounts() {
		deckCache.AddDeckDefault(m.appCtx, timelines, acc.Pubkey())
	}
	return m, nil
}

func (m *model) Init() tea.Cmd {
	m.render(nil)
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tickMsg:
		m.fetchUnknownIds()
		cmds = append(cmds, tick())
	case relayEventMsg:
		m.recordEvent(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.focus++
			m.render(nil)
			return m, nil
		case "shift+tab":
			m.focus--
			m.render(nil)
			return m, nil
		case "esc":
			if router := m.routers().RouterMut(m.focus); router != nil {
				if _, ok := router.GoBack(); ok {
					m.login.Reset()
				}
			}
			m.render(nil)
			return m, nil
		case "ctrl+a":
			if router := m.routers().RouterMut(m.focus); router != nil {
				if _, onAccounts := router.Top().Accounts(); !onAccounts {
					router.RouteTo(route.Accounts())
				}
			}
			m.render(nil)
			return m, nil
		}
	}
	cmds = append(cmds, m.render(msg))
	return m, tea.Batch(cmds...)
}

func (m *model) View() string {
	return m.view
}

func (m *model) routers() decks.Routers {
	return m.decks.Routers(m.appCtx.Accounts)
}

// render runs one frame: every column draws itself and account actions are drained before returning
func (m *model) render(msg tea.Msg) tea.Cmd {
	f := ui.NewFrame(msg, m.width)
	cols := m.decks.ActiveColumnsMut(m.appCtx.Accounts)
	m.focus = (m.focus%len(cols) + len(cols)) % len(cols)
	colWidth := max(m.width/len(cols)-4, 20)

	var actions []*accounts.AddAccountAction
	rendered := make([]string, 0, len(cols))
	for i, col := range cols {
		cf := f.Column(i == m.focus, colWidth)
		top := col.Router().Top()
		if ar, ok := top.Accounts(); ok {
			actions = append(actions, m.accounts.RenderAccountsRoute(cf, m.appCtx, i, m.decks, m.timelines, m.login, ar, m.routers()))
		} else {
			m.renderTimeline(cf, top)
		}
		style := ui.ColumnStyle
		if cf.Focused() {
			style = ui.FocusedStyle
		}
		rendered = append(rendered, style.Width(colWidth).Render(cf.String()))
	}
	m.view = lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if m.drain(actions) {
		// columns follow the newly selected account
		return tea.Batch(f.Cmds(), m.render(nil))
	}
	return f.Cmds()
}

func (m *model) renderTimeline(f *ui.Frame, r route.Route) {
	f.Line(ui.TitleStyle.Render(r.Title()))
	kind, _ := r.Timeline()
	if tl, ok := m.timelines.Get(kind); ok && tl.SubId != "" {
		f.Line(ui.DimStyle.Render("subscription " + tl.SubId[:min(len(tl.SubId), 8)]))
	}
	for _, relay := range m.appCtx.Pool.Relays() {
		state := "offline"
		if relay.Connected {
			state = "online"
		}
		f.Line(ui.DimStyle.Render(relay.Url + " " + state))
	}
	f.Line("")
	f.Line(ui.DimStyle.Render("ctrl+a accounts · tab next column · esc back"))
}

// drain processes the add account actions of a frame under one identity store snapshot
// and reports whether accounts changed
func (m *model) drain(actions []*accounts.AddAccountAction) (changed bool) {
	var tx anystore.ReadTx
	for _, action := range actions {
		if action.AccountsAction == nil && !action.Pending() {
			continue
		}
		if tx == nil {
			var err error
			if tx, err = m.appCtx.Identities.ReadTx(context.Background()); err != nil {
				log.Error("can't open identity read tx", zap.Error(err))
				tx = nil
			}
		}
		action.ProcessAction(m.appCtx.UnknownIds, m.appCtx.Identities, tx)
		if action.AccountsAction != nil {
			unk := m.accounts.ProcessAccountsAction(m.appCtx, m.decks, m.timelines, action.AccountsAction)
			unk.Process(m.appCtx.UnknownIds, m.appCtx.Identities, tx)
			changed = true
		}
	}
	if tx != nil {
		if err := tx.Commit(); err != nil {
			log.Warn("commit identity read tx", zap.Error(err))
		}
	}
	return
}

func (m *model) fetchUnknownIds() {
	if !m.appCtx.UnknownIds.Ready() {
		return
	}
	filters, ok := m.appCtx.UnknownIds.Take()
	if !ok {
		return
	}
	for _, filter := range filters {
		subId := m.appCtx.Pool.Subscribe(filter)
		log.Debug("fetch unknown ids", zap.String("subId", subId), zap.Int("authors", len(filter.Authors)), zap.Int("notes", len(filter.Ids)))
	}
}

// recordEvent stores a relay event; notes also queue their unknown author and references
func (m *model) recordEvent(msg relayEventMsg) {
	switch msg.event.Kind {
	case event.KindMetadata, event.KindContactList, event.KindTextNote:
	default:
		return
	}
	if err := m.appCtx.Identities.ProcessClientEvent(context.Background(), msg.event); err != nil {
		log.Debug("skip relay event", zap.String("relay", msg.relay), zap.Error(err))
		return
	}
	if msg.event.Kind != event.KindTextNote {
		return
	}
	tx, err := m.appCtx.Identities.ReadTx(context.Background())
	if err != nil {
		log.Error("can't open identity read tx", zap.Error(err))
		return
	}
	for _, action := range unknownids.EventActions(msg.event) {
		action.Process(m.appCtx.UnknownIds, m.appCtx.Identities, tx)
	}
	if err = tx.Commit(); err != nil {
		log.Warn("commit identity read tx", zap.Error(err))
	}
}
