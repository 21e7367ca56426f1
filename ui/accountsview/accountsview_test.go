package accountsview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/anyproto/any-deck/ui"
	"github.com/anyproto/any-deck/util/crypto"
)

func keyFrame(s string) *ui.Frame {
	var msg tea.KeyMsg
	switch s {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	return ui.NewFrame(msg, 80)
}

func TestView_Render(t *testing.T) {
	entries := []Entry{
		{Pubkey: crypto.Pubkey{1}, Name: "alice", Selected: true},
		{Pubkey: crypto.Pubkey{2}, WatchOnly: true},
	}

	t.Run("select", func(t *testing.T) {
		v := New()
		assert.Nil(t, v.Render(keyFrame("down"), entries))
		assert.Equal(t, 1, v.Cursor())
		assert.Equal(t, SelectAccount{Pubkey: crypto.Pubkey{2}}, v.Render(keyFrame("enter"), entries))
	})
	t.Run("remove", func(t *testing.T) {
		v := New()
		assert.Equal(t, RemoveAccount{Pubkey: crypto.Pubkey{1}}, v.Render(keyFrame("d"), entries))
	})
	t.Run("add", func(t *testing.T) {
		v := New()
		assert.Equal(t, RouteToLogin{}, v.Render(keyFrame("a"), nil))
	})
	t.Run("empty list", func(t *testing.T) {
		v := New()
		f := keyFrame("enter")
		assert.Nil(t, v.Render(f, nil))
		assert.Contains(t, f.String(), "no accounts yet")
	})
	t.Run("cursor is clamped", func(t *testing.T) {
		v := New()
		v.Render(keyFrame("down"), entries)
		v.Render(keyFrame("down"), entries)
		assert.Equal(t, 1, v.Cursor())
		v.Render(keyFrame("up"), entries[:1])
		assert.Equal(t, 0, v.Cursor())
	})
	t.Run("unfocused column", func(t *testing.T) {
		v := New()
		f := keyFrame("a").Column(false, 40)
		assert.Nil(t, v.Render(f, entries))
		assert.Contains(t, f.String(), "alice")
	})
}
