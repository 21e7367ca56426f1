package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/any-deck/accounts"
)

const testYaml = `
log:
  defaultLevel: debug
  disableStdErr: true
  outputPaths: [anydeck.log]
metric:
  addr: 127.0.0.1:9090
relays:
  urls:
    - wss://relay.one
    - wss://relay.two
accounts:
  duplicatePolicy: resolve
  strictDrain: true
unknownIds:
  debounceMs: 500
`

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testYaml), 0o600))

	c, err := NewFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.Log.DefaultLevel)
	assert.True(t, c.Log.DisableStdErr)
	assert.Equal(t, "127.0.0.1:9090", c.GetMetric().Addr)
	assert.Equal(t, []string{"wss://relay.one", "wss://relay.two"}, c.GetRelays().Urls)
	assert.Equal(t, accounts.DuplicatePolicyResolve, c.GetAccounts().DuplicatePolicy)
	assert.True(t, c.GetAccounts().StrictDrain)
	assert.Equal(t, 500, c.GetUnknownIds().DebounceMs)
	// untouched sections keep defaults
	assert.Equal(t, 256, c.GetRelays().QueueSize)
	assert.Equal(t, 128, c.GetTimelines().CacheSize)
	assert.Equal(t, "data/accounts.db", c.GetAccountStore().Path)
}

func TestNewFromFile_Errors(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("relays: [unclosed"), 0o600))
	_, err = NewFromFile(path)
	require.Error(t, err)
}
