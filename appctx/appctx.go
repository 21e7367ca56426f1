// Package appctx bundles the collaborators a single frame works with.
package appctx

import (
	"github.com/anyproto/any-deck/accountstore"
	"github.com/anyproto/any-deck/app"
	"github.com/anyproto/any-deck/identitystore"
	"github.com/anyproto/any-deck/relaypool"
	"github.com/anyproto/any-deck/unknownids"
)

type Context struct {
	Accounts   accountstore.AccountStore
	Identities identitystore.IdentityStore
	Pool       relaypool.RelayPool
	UnknownIds *unknownids.UnknownIds
}

// FromApp collects the running components; ids is owned by the caller
func FromApp(a *app.App, ids *unknownids.UnknownIds) *Context {
	return &Context{
		Accounts:   app.MustComponent[accountstore.AccountStore](a),
		Identities: app.MustComponent[identitystore.IdentityStore](a),
		Pool:       app.MustComponent[relaypool.RelayPool](a),
		UnknownIds: ids,
	}
}
