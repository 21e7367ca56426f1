package crypto

import (
	"crypto/subtle"
	"errors"
)

var (
	ErrIncorrectKeyType = errors.New("incorrect key type")
	ErrInvalidKey       = errors.New("invalid key")
)

// Key is an abstract interface for all types of keys
type Key interface {
	// Equals returns if the keys are equal
	Equals(Key) bool

	// Raw returns raw key
	Raw() ([]byte, error)
}

// PrivKey is used for signing
type PrivKey interface {
	Key

	// Sign signs the raw bytes and returns the signature
	Sign([]byte) ([]byte, error)
	// GetPublic returns the associated public key
	GetPublic() PubKey
}

// PubKey verifies signatures made by the matching PrivKey
type PubKey interface {
	Key

	// Verify verifies the signed message and the signature
	Verify(data []byte, sig []byte) (bool, error)
}

func KeyEquals(k1, k2 Key) bool {
	a, err := k1.Raw()
	if err != nil {
		return false
	}
	b, err := k2.Raw()
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
