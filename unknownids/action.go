package unknownids

import (
	"context"

	anystore "github.com/anyproto/any-store"

	"github.com/anyproto/any-deck/event"
	"github.com/anyproto/any-deck/util/crypto"
)

type actionKind uint8

const (
	actionNone actionKind = iota
	actionPubkey
	actionNote
)

// Action is a single deferred unknown-id resolution. Process consumes it;
// afterwards it is inert.
type Action struct {
	kind      actionKind
	pubkey    crypto.Pubkey
	note      event.Id
	processed bool
}

func NoAction() *Action {
	return &Action{kind: actionNone}
}

func PubkeyAction(pk crypto.Pubkey) *Action {
	return &Action{kind: actionPubkey, pubkey: pk}
}

func NoteAction(id event.Id) *Action {
	return &Action{kind: actionNote, note: id}
}

// IsNoAction is true for nil and for the explicit no-op
func (a *Action) IsNoAction() bool {
	return a == nil || a.kind == actionNone
}

func (a *Action) Pubkey() (crypto.Pubkey, bool) {
	if a == nil || a.kind != actionPubkey {
		return crypto.Pubkey{}, false
	}
	return a.pubkey, true
}

func (a *Action) Note() (event.Id, bool) {
	if a == nil || a.kind != actionNote {
		return event.Id{}, false
	}
	return a.note, true
}

func (a *Action) Processed() bool {
	return a != nil && a.processed
}

// Pending reports whether processing would still have an effect
func (a *Action) Pending() bool {
	return !a.IsNoAction() && !a.processed
}

// Process resolves the action against the identity store snapshot held by txn
func (a *Action) Process(ids *UnknownIds, store ProfileLookup, txn anystore.ReadTx) {
	if !a.Pending() {
		return
	}
	a.processed = true
	ctx := context.Background()
	if txn != nil {
		ctx = txn.Context()
	}
	switch a.kind {
	case actionPubkey:
		ids.AddPubkeyIfMissing(ctx, store, a.pubkey)
	case actionNote:
		ids.AddNoteIfMissing(ctx, store, a.note)
	}
}

// EventActions are the resolutions a received note asks for: its author and
// everything it references
func EventActions(ev *event.Event) (actions []*Action) {
	if author, err := ev.Author(); err == nil {
		actions = append(actions, PubkeyAction(author))
	}
	for _, pk := range ev.ReferencedPubkeys() {
		actions = append(actions, PubkeyAction(pk))
	}
	for _, id := range ev.ReferencedNotes() {
		actions = append(actions, NoteAction(id))
	}
	return
}

func (a *Action) String() string {
	switch {
	case a.IsNoAction():
		return "NoAction"
	case a.kind == actionPubkey:
		return "Pubkey(" + a.pubkey.String() + ")"
	default:
		return "Note(" + a.note.Hex() + ")"
	}
}
