package loginview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/any-deck/ui"
	"github.com/anyproto/any-deck/util/crypto"
)

func TestRender(t *testing.T) {
	t.Run("create new", func(t *testing.T) {
		state := NewAcquireKeyState()
		resp := Render(ui.NewFrame(tea.KeyMsg{Type: tea.KeyCtrlN}, 80), state)
		assert.Equal(t, CreateNew{}, resp)
	})
	t.Run("login with pubkey", func(t *testing.T) {
		kp, err := crypto.GenerateFullKeypair()
		require.NoError(t, err)
		state := NewAcquireKeyState()
		state.SetValue(kp.Pubkey.String())

		resp := Render(ui.NewFrame(tea.KeyMsg{Type: tea.KeyEnter}, 80), state)
		require.IsType(t, LoginWith{}, resp)
		login := resp.(LoginWith)
		assert.Equal(t, kp.Pubkey, login.Keypair.Pubkey)
		assert.False(t, login.Keypair.HasSecret())
	})
	t.Run("login with secret", func(t *testing.T) {
		kp, err := crypto.GenerateFullKeypair()
		require.NoError(t, err)
		secret, err := crypto.EncodeSecret(kp.SecretKey)
		require.NoError(t, err)
		state := NewAcquireKeyState()
		state.SetValue(secret)

		resp := Render(ui.NewFrame(tea.KeyMsg{Type: tea.KeyEnter}, 80), state)
		require.IsType(t, LoginWith{}, resp)
		assert.True(t, resp.(LoginWith).Keypair.HasSecret())
	})
	t.Run("bad input keeps the error", func(t *testing.T) {
		state := NewAcquireKeyState()
		state.SetValue("definitely not a key")
		f := ui.NewFrame(tea.KeyMsg{Type: tea.KeyEnter}, 80)
		assert.Nil(t, Render(f, state))
		require.Error(t, state.Err())
		assert.Contains(t, f.String(), state.Err().Error())

		state.Reset()
		assert.NoError(t, state.Err())
		assert.Empty(t, state.Value())
	})
	t.Run("typing", func(t *testing.T) {
		state := NewAcquireKeyState()
		Render(ui.NewFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, 80), state)
		assert.Equal(t, "ab", state.Value())
	})
}
