package crypto

// Keypair is either fully materialized or watch-only, in which case SecretKey is nil
type Keypair struct {
	Pubkey    Pubkey
	SecretKey PrivKey
}

func NewKeypair(secret PrivKey) (Keypair, error) {
	pk, err := PubkeyFromKey(secret.GetPublic())
	if err != nil {
		return Keypair{}, err
	}
	return Keypair{Pubkey: pk, SecretKey: secret}, nil
}

func OnlyPubkey(pk Pubkey) Keypair {
	return Keypair{Pubkey: pk}
}

func (kp Keypair) HasSecret() bool {
	return kp.SecretKey != nil
}

// ToFilled returns a signing view, ok is false for watch-only keypairs
func (kp Keypair) ToFilled() (FilledKeypair, bool) {
	if kp.SecretKey == nil {
		return FilledKeypair{}, false
	}
	return FilledKeypair{Pubkey: kp.Pubkey, SecretKey: kp.SecretKey}, true
}

// FullKeypair always carries its secret
type FullKeypair struct {
	Pubkey    Pubkey
	SecretKey PrivKey
}

func GenerateFullKeypair() (FullKeypair, error) {
	priv, pub, err := GenerateRandomEd25519KeyPair()
	if err != nil {
		return FullKeypair{}, err
	}
	pk, err := PubkeyFromKey(pub)
	if err != nil {
		return FullKeypair{}, err
	}
	return FullKeypair{Pubkey: pk, SecretKey: priv}, nil
}

func (kp FullKeypair) ToKeypair() Keypair {
	return Keypair{Pubkey: kp.Pubkey, SecretKey: kp.SecretKey}
}

func (kp FullKeypair) ToFilled() FilledKeypair {
	return FilledKeypair{Pubkey: kp.Pubkey, SecretKey: kp.SecretKey}
}

// FilledKeypair is a borrowed keypair that can sign
type FilledKeypair struct {
	Pubkey    Pubkey
	SecretKey PrivKey
}

func (kp FilledKeypair) Sign(msg []byte) ([]byte, error) {
	return kp.SecretKey.Sign(msg)
}
