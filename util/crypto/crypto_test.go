package crypto

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/multiformats/go-multibase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullKeypair_SignVerify(t *testing.T) {
	kp, err := GenerateFullKeypair()
	require.NoError(t, err)
	msg := []byte("contact list")
	sig, err := kp.ToFilled().Sign(msg)
	require.NoError(t, err)

	ok, err := kp.Pubkey.Verifier().Verify(msg, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = kp.Pubkey.Verifier().Verify([]byte("other"), sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeypair_ToFilled(t *testing.T) {
	full, err := GenerateFullKeypair()
	require.NoError(t, err)

	filled, ok := full.ToKeypair().ToFilled()
	require.True(t, ok)
	assert.Equal(t, full.Pubkey, filled.Pubkey)

	_, ok = OnlyPubkey(full.Pubkey).ToFilled()
	assert.False(t, ok)
	assert.False(t, OnlyPubkey(full.Pubkey).HasSecret())
}

func TestParseKeypair(t *testing.T) {
	full, err := GenerateFullKeypair()
	require.NoError(t, err)

	t.Run("base58 pubkey", func(t *testing.T) {
		kp, err := ParseKeypair(full.Pubkey.String())
		require.NoError(t, err)
		assert.Equal(t, full.Pubkey, kp.Pubkey)
		assert.False(t, kp.HasSecret())
	})
	t.Run("hex pubkey", func(t *testing.T) {
		kp, err := ParseKeypair("  " + full.Pubkey.Hex() + "\n")
		require.NoError(t, err)
		assert.Equal(t, full.Pubkey, kp.Pubkey)
	})
	t.Run("multibase pubkey", func(t *testing.T) {
		enc, err := multibase.Encode(multibase.Base32, full.Pubkey.Bytes())
		require.NoError(t, err)
		kp, err := ParseKeypair(enc)
		require.NoError(t, err)
		assert.Equal(t, full.Pubkey, kp.Pubkey)
	})
	t.Run("secret", func(t *testing.T) {
		secret, err := EncodeSecret(full.SecretKey)
		require.NoError(t, err)
		kp, err := ParseKeypair(secret)
		require.NoError(t, err)
		assert.Equal(t, full.Pubkey, kp.Pubkey)
		require.True(t, kp.HasSecret())
		assert.True(t, kp.SecretKey.Equals(full.SecretKey))
	})
	t.Run("corrupted secret", func(t *testing.T) {
		raw, err := full.SecretKey.Raw()
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0xff
		_, err = ParseKeypair(hex.EncodeToString(raw))
		require.ErrorIs(t, err, ErrInvalidKey)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := ParseKeypair("not-a-key-0OIl")
		require.ErrorIs(t, err, ErrInvalidKey)
		_, err = ParseKeypair("   ")
		require.ErrorIs(t, err, ErrInvalidKey)
	})
}

func TestMnemonic(t *testing.T) {
	m, err := NewMnemonic(12)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(string(m)), 12)
	assert.True(t, LooksLikeMnemonic(string(m)))

	kp1, err := m.DeriveKeypair(0)
	require.NoError(t, err)
	kp2, err := ParseKeypair(string(m))
	require.NoError(t, err)
	assert.Equal(t, kp1.Pubkey, kp2.Pubkey)
	assert.True(t, kp2.HasSecret())

	other, err := m.DeriveKeypair(1)
	require.NoError(t, err)
	assert.NotEqual(t, kp1.Pubkey, other.Pubkey)

	_, err = NewMnemonic(13)
	require.ErrorIs(t, err, ErrInvalidWordCount)

	_, err = Mnemonic(strings.Repeat("zebra ", 12)).DeriveKeypair(0)
	require.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestPubkey(t *testing.T) {
	pk := MustPubkeyFromHex("0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20")
	parsed, err := ParsePubkey(pk.String())
	require.NoError(t, err)
	assert.Equal(t, pk, parsed)
	assert.False(t, pk.IsZero())
	assert.True(t, Pubkey{}.IsZero())
	assert.Contains(t, pk.Short(), "…")

	_, err = PubkeyFromBytes([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidKey)
}
