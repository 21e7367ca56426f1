package loginview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anyproto/any-deck/ui"
	"github.com/anyproto/any-deck/util/crypto"
)

type Response interface {
	isResponse()
}

// CreateNew asks for a freshly generated account
type CreateNew struct{}

type LoginWith struct {
	Keypair crypto.Keypair
}

func (CreateNew) isResponse() {}
func (LoginWith) isResponse() {}

var (
	loginKey  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "login"))
	createKey = key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "create new account"))
)

// AcquireKeyState is the key input of the login screen with the last parse error
type AcquireKeyState struct {
	input textinput.Model
	err   error
}

func NewAcquireKeyState() *AcquireKeyState {
	s := &AcquireKeyState{}
	s.Reset()
	return s
}

// Reset returns the state to its defaults
func (s *AcquireKeyState) Reset() {
	ti := textinput.New()
	ti.Placeholder = "secret key, public key or mnemonic"
	ti.EchoMode = textinput.EchoPassword
	ti.CharLimit = 512
	ti.Width = 48
	ti.Focus()
	s.input = ti
	s.err = nil
}

func (s *AcquireKeyState) SetValue(v string) {
	s.input.SetValue(v)
}

func (s *AcquireKeyState) Value() string {
	return s.input.Value()
}

func (s *AcquireKeyState) Err() error {
	return s.err
}

// Keypair parses the current input and remembers the error
func (s *AcquireKeyState) Keypair() (crypto.Keypair, bool) {
	kp, err := crypto.ParseKeypair(s.input.Value())
	s.err = err
	return kp, err == nil
}

// Render draws the login screen; at most one response per frame
func Render(f *ui.Frame, state *AcquireKeyState) (resp Response) {
	if k, ok := f.Key(); ok {
		switch {
		case key.Matches(k, createKey):
			resp = CreateNew{}
		case key.Matches(k, loginKey):
			if kp, ok := state.Keypair(); ok {
				resp = LoginWith{Keypair: kp}
			}
		default:
			var cmd tea.Cmd
			state.input, cmd = state.input.Update(k)
			f.Cmd(cmd)
		}
	} else if msg := f.Msg(); msg != nil && f.Focused() {
		var cmd tea.Cmd
		state.input, cmd = state.input.Update(msg)
		f.Cmd(cmd)
	}

	f.Line(ui.TitleStyle.Render("Add Account"))
	f.Line(state.input.View())
	if state.err != nil {
		f.Line(ui.ErrorStyle.Render(state.err.Error()))
	}
	f.Line("")
	f.Line(ui.DimStyle.Render("enter login · ctrl+n create new account · esc back"))
	return
}
