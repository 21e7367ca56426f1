package storeutil

import (
	"testing"

	"github.com/anyproto/any-store/anyenc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/any-deck/util/crypto"
)

func TestPubkeyArrayValue(t *testing.T) {
	kp1, err := crypto.GenerateFullKeypair()
	require.NoError(t, err)
	kp2, err := crypto.GenerateFullKeypair()
	require.NoError(t, err)

	arena := (&anyenc.ArenaPool{}).Get()
	obj := arena.NewObject()
	obj.Set("follows", NewPubkeyArrayValue([]crypto.Pubkey{kp1.Pubkey, kp2.Pubkey}, arena))
	obj.Set("names", NewStringArrayValue([]string{"a", "b"}, arena))

	assert.Equal(t, []crypto.Pubkey{kp1.Pubkey, kp2.Pubkey}, PubkeysFromArrayValue(obj, "follows"))
	assert.Equal(t, []string{"a", "b"}, StringsFromArrayValue(obj, "names"))
	assert.Empty(t, PubkeysFromArrayValue(obj, "missing"))
}
