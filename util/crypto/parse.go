package crypto

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multibase"
)

// EncodeSecret renders the secret of a full keypair for export
func EncodeSecret(k PrivKey) (string, error) {
	raw, err := k.Raw()
	if err != nil {
		return "", err
	}
	return base58.Encode(raw), nil
}

// ParsePubkey accepts hex, multibase or plain base58 encodings of a 32-byte key
func ParsePubkey(s string) (Pubkey, error) {
	raw, err := decodeKeyString(s)
	if err != nil {
		return Pubkey{}, err
	}
	return PubkeyFromBytes(raw)
}

// ParseKeypair turns user input into a keypair: a mnemonic or an encoded
// 64-byte private key yields a full keypair, an encoded 32-byte public key
// a watch-only one
func ParseKeypair(input string) (Keypair, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Keypair{}, fmt.Errorf("%w: empty input", ErrInvalidKey)
	}
	if LooksLikeMnemonic(input) {
		full, err := Mnemonic(input).DeriveKeypair(0)
		if err != nil {
			return Keypair{}, err
		}
		return full.ToKeypair(), nil
	}
	raw, err := decodeKeyString(input)
	if err != nil {
		return Keypair{}, err
	}
	switch len(raw) {
	case PubkeySize:
		pk, err := PubkeyFromBytes(raw)
		if err != nil {
			return Keypair{}, err
		}
		return OnlyPubkey(pk), nil
	case ed25519.PrivateKeySize:
		priv, err := UnmarshalEd25519PrivateKey(raw)
		if err != nil {
			return Keypair{}, err
		}
		return NewKeypair(priv)
	default:
		return Keypair{}, fmt.Errorf("%w: unexpected key length %d", ErrInvalidKey, len(raw))
	}
}

func decodeKeyString(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if isHexKey(s) {
		return hex.DecodeString(s)
	}
	raw, err := base58.Decode(s)
	if err == nil && isKeyLength(len(raw)) {
		return raw, nil
	}
	if _, mbRaw, mbErr := multibase.Decode(s); mbErr == nil {
		return mbRaw, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return raw, nil
}

func isHexKey(s string) bool {
	if len(s) != PubkeySize*2 && len(s) != ed25519.PrivateKeySize*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func isKeyLength(n int) bool {
	return n == PubkeySize || n == ed25519.PrivateKeySize
}
