package accountsview

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/anyproto/any-deck/ui"
	"github.com/anyproto/any-deck/util/crypto"
)

// Response is what the user asked for on the accounts screen
type Response interface {
	isResponse()
}

type SelectAccount struct {
	Pubkey crypto.Pubkey
}

type RemoveAccount struct {
	Pubkey crypto.Pubkey
}

type RouteToLogin struct{}

func (SelectAccount) isResponse() {}
func (RemoveAccount) isResponse() {}
func (RouteToLogin) isResponse()  {}

type Entry struct {
	Pubkey    crypto.Pubkey
	Name      string
	WatchOnly bool
	Selected  bool
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Remove key.Binding
	Add    key.Binding
}

var DefaultKeyMap = KeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "switch")),
	Remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add account")),
}

// View keeps the cursor of one column
type View struct {
	cursor int
	keys   KeyMap
}

func New() *View {
	return &View{keys: DefaultKeyMap}
}

func (v *View) Cursor() int {
	return v.cursor
}

// Render draws entries and returns at most one response for the frame's key
func (v *View) Render(f *ui.Frame, entries []Entry) (resp Response) {
	if v.cursor >= len(entries) {
		v.cursor = max(len(entries)-1, 0)
	}
	if k, ok := f.Key(); ok {
		switch {
		case key.Matches(k, v.keys.Up):
			v.cursor = max(v.cursor-1, 0)
		case key.Matches(k, v.keys.Down):
			v.cursor = min(v.cursor+1, max(len(entries)-1, 0))
		case key.Matches(k, v.keys.Select) && len(entries) > 0:
			resp = SelectAccount{Pubkey: entries[v.cursor].Pubkey}
		case key.Matches(k, v.keys.Remove) && len(entries) > 0:
			resp = RemoveAccount{Pubkey: entries[v.cursor].Pubkey}
		case key.Matches(k, v.keys.Add):
			resp = RouteToLogin{}
		}
	}

	f.Line(ui.TitleStyle.Render("Accounts"))
	if len(entries) == 0 {
		f.Line(ui.DimStyle.Render("no accounts yet"))
	}
	for i, e := range entries {
		f.Line(renderEntry(e, i == v.cursor && f.Focused()))
	}
	f.Line("")
	f.Line(ui.DimStyle.Render("enter switch · d remove · a add"))
	return
}

func renderEntry(e Entry, underCursor bool) string {
	line := "  "
	if underCursor {
		line = "> "
	}
	if e.Selected {
		line += "* "
	} else {
		line += "  "
	}
	if e.Name != "" {
		line += e.Name + " "
	}
	line += e.Pubkey.Short()
	if e.WatchOnly {
		line += ui.DimStyle.Render(" (watch-only)")
	}
	if underCursor {
		return ui.SelectedStyle.Render(line)
	}
	return line
}
