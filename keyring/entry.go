package keyring

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

// privKeyLen is the byte length of a secp256k1 private scalar.
const privKeyLen = 32

// KeyEntry owns one derived public key and its private key material.
//
// The private scalar lives in an unexported fixed-size array so it cannot be
// marshaled or logged by accident, and Zero releases it deterministically.
// Entries are immutable once created; avoid duplicating them outside the
// store's lifetime.
type KeyEntry struct {
	pub  *btcec.PublicKey
	priv [privKeyLen]byte
}

// NewKeyEntry builds an entry from a public key and the matching 32-byte
// private scalar. The caller's slice is copied, not retained.
func NewKeyEntry(pub *btcec.PublicKey, priv []byte) (*KeyEntry, error) {
	if pub == nil {
		return nil, newError(KindPrivateKey, "missing public key")
	}
	if len(priv) != privKeyLen {
		return nil, newError(KindPrivateKey, fmt.Sprintf("private key must be %d bytes, got %d", privKeyLen, len(priv)))
	}
	e := &KeyEntry{pub: pub}
	copy(e.priv[:], priv)
	return e, nil
}

// PublicKey returns the derived public key.
func (e *KeyEntry) PublicKey() *btcec.PublicKey {
	return e.pub
}

// Address returns the account address of the entry's public key.
func (e *KeyEntry) Address() Address {
	return AddressFromPubKey(e.pub)
}

// Zero wipes the private scalar. The entry must not sign afterwards.
func (e *KeyEntry) Zero() {
	for i := range e.priv {
		e.priv[i] = 0
	}
}

// String renders the entry with the private material redacted.
func (e *KeyEntry) String() string {
	if e == nil || e.pub == nil {
		return "KeyEntry(<nil>)"
	}
	return "KeyEntry(pub=" + hex.EncodeToString(e.pub.SerializeCompressed()) + ")"
}

// privateKey materializes the signing key. Callers must Zero it when done.
func (e *KeyEntry) privateKey() *btcec.PrivateKey {
	priv, _ := btcec.PrivKeyFromBytes(e.priv[:])
	return priv
}
