package keyring

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// SignatureLen is the byte length of a compact signature: the R scalar
// followed by the S scalar, 32 bytes each, no recovery id.
const SignatureLen = 64

// sign produces a compact ECDSA signature over SHA256(msg).
func (e *KeyEntry) sign(msg []byte) []byte {
	digest := sha256.Sum256(msg)
	priv := e.privateKey()
	defer priv.Zero()

	sig := ecdsa.Sign(priv, digest[:])
	r := sig.R()
	s := sig.S()
	rb := r.Bytes()
	sb := s.Bytes()

	out := make([]byte, 0, SignatureLen)
	out = append(out, rb[:]...)
	out = append(out, sb[:]...)
	return out
}

// VerifySignature reports whether sig is a valid compact signature by pub
// over SHA256(msg).
func VerifySignature(pub *btcec.PublicKey, msg, sig []byte) bool {
	if pub == nil || len(sig) != SignatureLen {
		return false
	}
	var r, s btcec.ModNScalar
	if overflow := r.SetByteSlice(sig[:SignatureLen/2]); overflow {
		return false
	}
	if overflow := s.SetByteSlice(sig[SignatureLen/2:]); overflow {
		return false
	}
	digest := sha256.Sum256(msg)
	return ecdsa.NewSignature(&r, &s).Verify(digest[:], pub)
}
