package crypto

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
)

const PubkeySize = ed25519.PublicKeySize

// Pubkey identifies an account. It is comparable and usable as a map key.
type Pubkey [PubkeySize]byte

func PubkeyFromBytes(b []byte) (pk Pubkey, err error) {
	if len(b) != PubkeySize {
		return pk, fmt.Errorf("%w: expected pubkey size %d, got %d", ErrInvalidKey, PubkeySize, len(b))
	}
	copy(pk[:], b)
	return
}

func PubkeyFromKey(k PubKey) (Pubkey, error) {
	raw, err := k.Raw()
	if err != nil {
		return Pubkey{}, err
	}
	return PubkeyFromBytes(raw)
}

// MustPubkeyFromHex is for tests and constants
func MustPubkeyFromHex(s string) Pubkey {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	pk, err := PubkeyFromBytes(b)
	if err != nil {
		panic(err)
	}
	return pk
}

func (p Pubkey) Bytes() []byte {
	return p[:]
}

func (p Pubkey) IsZero() bool {
	return p == Pubkey{}
}

// String returns the base58 form shown to users
func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

// Hex returns the form used on the wire
func (p Pubkey) Hex() string {
	return hex.EncodeToString(p[:])
}

// Short is a truncated form for narrow columns
func (p Pubkey) Short() string {
	s := p.String()
	if len(s) <= 12 {
		return s
	}
	return s[:6] + "…" + s[len(s)-4:]
}

func (p Pubkey) Verifier() PubKey {
	return NewEd25519PubKey(p.Bytes())
}
