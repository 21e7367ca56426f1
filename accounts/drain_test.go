package accounts

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/anyproto/any-deck/unknownids"
	"github.com/anyproto/any-deck/util/crypto"
)

func pendingAction() *AddAccountAction {
	pk := crypto.Pubkey{1}
	return newAddAccountAction(NewSwitchAccountAction(0, pk), unknownids.PubkeyAction(pk))
}

func TestDrainTracker(t *testing.T) {
	t.Run("dropped action is reported on the next frame of the column", func(t *testing.T) {
		d := NewDrainTracker(false, prometheus.NewCounter(prometheus.CounterOpts{Name: "dropped"}))
		d.Track(0, pendingAction())
		d.Track(1, noAddAccountAction())
		assert.Equal(t, 0, d.Dropped())

		d.Track(0, noAddAccountAction())
		assert.Equal(t, 1, d.Dropped())
		d.Track(0, noAddAccountAction())
		assert.Equal(t, 1, d.Dropped())
	})
	t.Run("processed action is fine", func(t *testing.T) {
		d := NewDrainTracker(true, nil)
		action := pendingAction()
		d.Track(0, action)
		action.processed = true
		assert.NotPanics(t, func() { d.Track(0, nil) })
		assert.Equal(t, 0, d.Dropped())
	})
	t.Run("strict", func(t *testing.T) {
		d := NewDrainTracker(true, nil)
		d.Track(3, pendingAction())
		assert.Panics(t, func() { d.Track(3, noAddAccountAction()) })
	})
	t.Run("check all", func(t *testing.T) {
		d := NewDrainTracker(false, nil)
		d.Track(0, pendingAction())
		d.Track(2, pendingAction())
		d.CheckAll()
		assert.Equal(t, 2, d.Dropped())
		d.CheckAll()
		assert.Equal(t, 2, d.Dropped())
	})
}

func TestAddAccountAction_String(t *testing.T) {
	assert.Equal(t, "AddAccountAction{None, NoAction}", noAddAccountAction().String())
	assert.Contains(t, pendingAction().String(), "Switch(col=0")
}
