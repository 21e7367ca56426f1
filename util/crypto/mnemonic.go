package crypto

import (
	"bytes"
	"errors"
	"strings"

	"github.com/anyproto/go-slip10"
	"github.com/tyler-smith/go-bip39"
)

var (
	ErrInvalidWordCount = errors.New("error invalid word count for mnemonic")
	ErrInvalidMnemonic  = errors.New("error invalid mnemonic")
)

// https://github.com/satoshilabs/slips/blob/master/slip-0044.md
const accountDerivationPrefix = "m/44'/1237'"

type Mnemonic string

func NewMnemonic(wordCount int) (Mnemonic, error) {
	var size int
	switch wordCount {
	case 12:
		size = 128
	case 15:
		size = 160
	case 18:
		size = 192
	case 21:
		size = 224
	case 24:
		size = 256
	default:
		return "", ErrInvalidWordCount
	}
	entropy, err := bip39.NewEntropy(size)
	if err != nil {
		return "", err
	}
	m, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", err
	}
	return Mnemonic(m), nil
}

// LooksLikeMnemonic reports whether the input has a mnemonic word count
func LooksLikeMnemonic(s string) bool {
	switch len(strings.Fields(s)) {
	case 12, 15, 18, 21, 24:
		return true
	}
	return false
}

func (m Mnemonic) Seed() ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(strings.Join(strings.Fields(string(m)), " "), "")
	if err != nil {
		return nil, ErrInvalidMnemonic
	}
	return seed, nil
}

// DeriveKeypair derives the account keypair at m/44'/1237'/index'/0'
func (m Mnemonic) DeriveKeypair(index uint32) (FullKeypair, error) {
	seed, err := m.Seed()
	if err != nil {
		return FullKeypair{}, err
	}
	prefixNode, err := slip10.DeriveForPath(accountDerivationPrefix, seed)
	if err != nil {
		return FullKeypair{}, err
	}
	accountNode, err := prefixNode.Derive(slip10.FirstHardenedIndex + index)
	if err != nil {
		return FullKeypair{}, err
	}
	identityNode, err := accountNode.Derive(slip10.FirstHardenedIndex)
	if err != nil {
		return FullKeypair{}, err
	}
	priv, pub, err := GenerateEd25519Key(bytes.NewReader(identityNode.RawSeed()))
	if err != nil {
		return FullKeypair{}, err
	}
	pk, err := PubkeyFromKey(pub)
	if err != nil {
		return FullKeypair{}, err
	}
	return FullKeypair{Pubkey: pk, SecretKey: priv}, nil
}
