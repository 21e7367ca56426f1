package accounts

import (
	"fmt"

	anystore "github.com/anyproto/any-store"

	"github.com/anyproto/any-deck/unknownids"
	"github.com/anyproto/any-deck/util/crypto"
)

// AccountsAction is a committed account effect: SwitchAccountAction or RemoveAccountAction
type AccountsAction interface {
	isAccountsAction()
	fmt.Stringer
}

type SwitchAccountAction struct {
	SourceColumn int
	// SwitchTo is the account to switch to
	SwitchTo crypto.Pubkey
}

func NewSwitchAccountAction(sourceColumn int, switchTo crypto.Pubkey) SwitchAccountAction {
	return SwitchAccountAction{SourceColumn: sourceColumn, SwitchTo: switchTo}
}

func (SwitchAccountAction) isAccountsAction() {}

func (a SwitchAccountAction) String() string {
	return fmt.Sprintf("Switch(col=%d, %s)", a.SourceColumn, a.SwitchTo.Short())
}

type RemoveAccountAction struct {
	Pubkey crypto.Pubkey
}

func (RemoveAccountAction) isAccountsAction() {}

func (a RemoveAccountAction) String() string {
	return "Remove(" + a.Pubkey.Short() + ")"
}

// AddAccountAction must be consumed with ProcessAction, otherwise the unknown
// identity it carries is never resolved. DrainTracker reports the ones that were not.
type AddAccountAction struct {
	// AccountsAction is nil when nothing happened to accounts
	AccountsAction AccountsAction
	UnkIdAction    *unknownids.Action
	processed      bool
}

func newAddAccountAction(action AccountsAction, unkIdAction *unknownids.Action) *AddAccountAction {
	if unkIdAction == nil {
		unkIdAction = unknownids.NoAction()
	}
	return &AddAccountAction{AccountsAction: action, UnkIdAction: unkIdAction}
}

func noAddAccountAction() *AddAccountAction {
	return newAddAccountAction(nil, unknownids.NoAction())
}

// ProcessAction resolves the embedded unknown id action. Calling it again does nothing.
func (a *AddAccountAction) ProcessAction(ids *unknownids.UnknownIds, store unknownids.ProfileLookup, txn anystore.ReadTx) {
	a.processed = true
	a.UnkIdAction.Process(ids, store, txn)
}

func (a *AddAccountAction) Processed() bool {
	return a.processed
}

// Pending is true while dropping the action would lose an identity resolution
func (a *AddAccountAction) Pending() bool {
	return !a.processed && a.UnkIdAction.Pending()
}

func (a *AddAccountAction) String() string {
	action := "None"
	if a.AccountsAction != nil {
		action = a.AccountsAction.String()
	}
	return fmt.Sprintf("AddAccountAction{%s, %s}", action, a.UnkIdAction)
}
