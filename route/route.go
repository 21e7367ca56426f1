package route

import (
	"github.com/anyproto/any-deck/timeline"
)

type AccountsRoute uint8

const (
	AccountsRouteAccounts AccountsRoute = iota
	AccountsRouteAddAccount
)

func (r AccountsRoute) String() string {
	if r == AccountsRouteAddAccount {
		return "Add Account"
	}
	return "Accounts"
}

type kind uint8

const (
	kindTimeline kind = iota
	kindAccounts
)

// Route is the screen a column shows
type Route struct {
	kind     kind
	accounts AccountsRoute
	timeline timeline.Kind
}

func Accounts() Route {
	return Route{kind: kindAccounts, accounts: AccountsRouteAccounts}
}

func AddAccount() Route {
	return Route{kind: kindAccounts, accounts: AccountsRouteAddAccount}
}

func Timeline(k timeline.Kind) Route {
	return Route{kind: kindTimeline, timeline: k}
}

func (r Route) Accounts() (AccountsRoute, bool) {
	return r.accounts, r.kind == kindAccounts
}

func (r Route) Timeline() (timeline.Kind, bool) {
	return r.timeline, r.kind == kindTimeline
}

func (r Route) Title() string {
	if r.kind == kindAccounts {
		return r.accounts.String()
	}
	return r.timeline.String()
}

func (r Route) String() string {
	return r.Title()
}
