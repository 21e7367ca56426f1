package event

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zeebo/blake3"

	"github.com/anyproto/any-deck/util/crypto"
)

var ErrInvalidSignature = errors.New("invalid event signature")

type Kind int

const (
	KindMetadata    Kind = 0
	KindTextNote    Kind = 1
	KindContactList Kind = 3
)

// Id is the blake3 hash of the canonical event form
type Id [32]byte

func (id Id) Hex() string {
	return hex.EncodeToString(id[:])
}

func IdFromHex(s string) (id Id, err error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return
	}
	if len(b) != len(id) {
		return id, fmt.Errorf("unexpected event id length %d", len(b))
	}
	copy(id[:], b)
	return
}

type Tag []string

type Event struct {
	Id        string `json:"id"`
	Pubkey    string `json:"pubkey"`
	CreatedAt int64  `json:"created_at"`
	Kind      Kind   `json:"kind"`
	Tags      []Tag  `json:"tags"`
	Content   string `json:"content"`
	Sig       string `json:"sig"`
}

// New builds and signs an event
func New(kp crypto.FilledKeypair, kind Kind, tags []Tag, content string, createdAt time.Time) (*Event, error) {
	if tags == nil {
		tags = []Tag{}
	}
	ev := &Event{
		Pubkey:    kp.Pubkey.Hex(),
		CreatedAt: createdAt.Unix(),
		Kind:      kind,
		Tags:      tags,
		Content:   content,
	}
	id, err := ev.computeId()
	if err != nil {
		return nil, err
	}
	sig, err := kp.Sign(id[:])
	if err != nil {
		return nil, fmt.Errorf("sign event: %w", err)
	}
	ev.Id = id.Hex()
	ev.Sig = hex.EncodeToString(sig)
	return ev, nil
}

func (ev *Event) computeId() (id Id, err error) {
	canonical, err := json.Marshal([]any{0, ev.Pubkey, ev.CreatedAt, ev.Kind, ev.Tags, ev.Content})
	if err != nil {
		return
	}
	return blake3.Sum256(canonical), nil
}

func (ev *Event) Author() (crypto.Pubkey, error) {
	return crypto.ParsePubkey(ev.Pubkey)
}

// Verify checks the id and the signature
func (ev *Event) Verify() error {
	id, err := ev.computeId()
	if err != nil {
		return err
	}
	if id.Hex() != ev.Id {
		return fmt.Errorf("%w: id mismatch", ErrInvalidSignature)
	}
	author, err := ev.Author()
	if err != nil {
		return err
	}
	sig, err := hex.DecodeString(ev.Sig)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	ok, err := author.Verifier().Verify(id[:], sig)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidSignature
	}
	return nil
}

// ReferencedPubkeys returns the pubkeys of "p" tags
func (ev *Event) ReferencedPubkeys() (res []crypto.Pubkey) {
	for _, tag := range ev.Tags {
		if len(tag) < 2 || tag[0] != "p" {
			continue
		}
		if pk, err := crypto.ParsePubkey(tag[1]); err == nil {
			res = append(res, pk)
		}
	}
	return
}

// ReferencedNotes returns the note ids of "e" tags
func (ev *Event) ReferencedNotes() (res []Id) {
	for _, tag := range ev.Tags {
		if len(tag) < 2 || tag[0] != "e" {
			continue
		}
		if id, err := IdFromHex(tag[1]); err == nil {
			res = append(res, id)
		}
	}
	return
}

// Filter selects events on relays
type Filter struct {
	Ids     []string `json:"ids,omitempty"`
	Authors []string `json:"authors,omitempty"`
	Kinds   []Kind   `json:"kinds,omitempty"`
	// PTags matches events with a "p" tag for one of the pubkeys
	PTags []string `json:"#p,omitempty"`
	Limit int      `json:"limit,omitempty"`
}

func (f Filter) IsEmpty() bool {
	return len(f.Ids) == 0 && len(f.Authors) == 0 && len(f.PTags) == 0
}
