package unknownids

import (
	"bytes"
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/anyproto/any-deck/app/logger"
	"github.com/anyproto/any-deck/event"
	"github.com/anyproto/any-deck/util/crypto"
)

var log = logger.NewNamed("anydeck.unknownids")

type Config struct {
	DebounceMs int `yaml:"debounceMs"`
}

// ProfileLookup answers whether an identity or note is already known locally
type ProfileLookup interface {
	HasProfile(ctx context.Context, pk crypto.Pubkey) (bool, error)
	HasNote(ctx context.Context, id event.Id) (bool, error)
}

// UnknownIds collects identities and notes missing from the identity store
// until they are fetched from relays.
type UnknownIds struct {
	pubkeys      map[crypto.Pubkey]struct{}
	notes        map[event.Id]struct{}
	firstUpdated time.Time
	debounce     time.Duration
	now          func() time.Time
}

func New(conf Config) *UnknownIds {
	return &UnknownIds{
		pubkeys:  make(map[crypto.Pubkey]struct{}),
		notes:    make(map[event.Id]struct{}),
		debounce: time.Duration(conf.DebounceMs) * time.Millisecond,
		now:      time.Now,
	}
}

// AddPubkeyIfMissing records pk unless the store already has its profile.
// Lookup errors are logged and the pubkey is left alone.
func (u *UnknownIds) AddPubkeyIfMissing(ctx context.Context, store ProfileLookup, pk crypto.Pubkey) {
	has, err := store.HasProfile(ctx, pk)
	if err != nil {
		log.Warn("profile lookup failed", zap.String("pubkey", pk.String()), zap.Error(err))
		return
	}
	if has {
		return
	}
	if _, ok := u.pubkeys[pk]; ok {
		return
	}
	u.pubkeys[pk] = struct{}{}
	u.markUpdated()
}

func (u *UnknownIds) AddNoteIfMissing(ctx context.Context, store ProfileLookup, id event.Id) {
	has, err := store.HasNote(ctx, id)
	if err != nil {
		log.Warn("note lookup failed", zap.String("note", id.Hex()), zap.Error(err))
		return
	}
	if has {
		return
	}
	if _, ok := u.notes[id]; ok {
		return
	}
	u.notes[id] = struct{}{}
	u.markUpdated()
}

func (u *UnknownIds) markUpdated() {
	if u.firstUpdated.IsZero() {
		u.firstUpdated = u.now()
	}
}

func (u *UnknownIds) HasPubkey(pk crypto.Pubkey) bool {
	_, ok := u.pubkeys[pk]
	return ok
}

func (u *UnknownIds) HasNote(id event.Id) bool {
	_, ok := u.notes[id]
	return ok
}

func (u *UnknownIds) Len() int {
	return len(u.pubkeys) + len(u.notes)
}

func (u *UnknownIds) Pubkeys() []crypto.Pubkey {
	res := make([]crypto.Pubkey, 0, len(u.pubkeys))
	for pk := range u.pubkeys {
		res = append(res, pk)
	}
	slices.SortFunc(res, func(a, b crypto.Pubkey) int {
		return bytes.Compare(a[:], b[:])
	})
	return res
}

func (u *UnknownIds) Notes() []event.Id {
	res := make([]event.Id, 0, len(u.notes))
	for id := range u.notes {
		res = append(res, id)
	}
	slices.SortFunc(res, func(a, b event.Id) int {
		return bytes.Compare(a[:], b[:])
	})
	return res
}

// Ready reports whether the collected ids settled for the debounce period
func (u *UnknownIds) Ready() bool {
	if u.Len() == 0 {
		return false
	}
	return u.now().Sub(u.firstUpdated) >= u.debounce
}

// Take returns relay filters for everything collected and clears the set.
// Relays AND the fields of a filter, so profiles and notes are asked for separately.
func (u *UnknownIds) Take() (filters []event.Filter, ok bool) {
	if u.Len() == 0 {
		return nil, false
	}
	if pks := u.Pubkeys(); len(pks) > 0 {
		authors := make([]string, 0, len(pks))
		for _, pk := range pks {
			authors = append(authors, pk.Hex())
		}
		filters = append(filters, event.Filter{Authors: authors, Kinds: []event.Kind{event.KindMetadata}})
	}
	if notes := u.Notes(); len(notes) > 0 {
		ids := make([]string, 0, len(notes))
		for _, id := range notes {
			ids = append(ids, id.Hex())
		}
		filters = append(filters, event.Filter{Ids: ids})
	}
	u.Clear()
	return filters, true
}

func (u *UnknownIds) Clear() {
	clear(u.pubkeys)
	clear(u.notes)
	u.firstUpdated = time.Time{}
}
