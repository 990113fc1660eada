package keyring

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/ripemd160"
)

// AddressLen is the byte length of an account address.
const AddressLen = 20

// Address identifies an account: RIPEMD160(SHA256(compressed public key)).
//
// The raw 20 bytes carry no checksum and no human-readable prefix; display
// encodings (bech32 and friends) are a caller concern. Address is comparable
// and is used directly as the store's map key.
type Address [AddressLen]byte

// String returns the address as lowercase hex.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte {
	out := make([]byte, AddressLen)
	copy(out, a[:])
	return out
}

// AddressFromBytes converts raw bytes into an Address.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLen {
		return a, newError(KindInvalidKey, fmt.Sprintf("address must be %d bytes, got %d", AddressLen, len(b)))
	}
	copy(a[:], b)
	return a, nil
}

// AddressFromPubKey computes the account address for a public key.
//
// The pipeline is fixed: SHA-256 over the compressed SEC1 encoding, then
// RIPEMD-160 over that digest.
func AddressFromPubKey(pub *btcec.PublicKey) Address {
	sha := sha256.Sum256(pub.SerializeCompressed())
	h := ripemd160.New()
	h.Write(sha[:])
	var a Address
	copy(a[:], h.Sum(nil))
	return a
}
