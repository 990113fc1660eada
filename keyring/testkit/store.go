// Package testkit provides a reusable conformance suite for keyring.Store
// implementations.
package testkit

import (
	"bytes"
	"testing"

	"relaykit.dev/keyring/keyring"
)

// NewStore constructs a fresh, empty Store instance for a test.
// The returned Store MUST be isolated from other tests.
type NewStore func(t *testing.T) keyring.Store

const (
	conformanceMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	secondMnemonic      = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
	badMnemonic         = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"
)

// RunStoreConformance exercises the Store contract against newStore.
func RunStoreConformance(t *testing.T, newStore NewStore) {
	t.Helper()

	t.Run("AddIsDeterministic", func(t *testing.T) {
		s1 := newStore(t)
		s2 := newStore(t)
		addr1, err := s1.AddFromMnemonic(conformanceMnemonic)
		if err != nil {
			t.Fatalf("AddFromMnemonic(1): %v", err)
		}
		addr2, err := s2.AddFromMnemonic(conformanceMnemonic)
		if err != nil {
			t.Fatalf("AddFromMnemonic(2): %v", err)
		}
		if addr1 != addr2 {
			t.Fatalf("addresses differ: %s vs %s", addr1, addr2)
		}
	})

	t.Run("SignVerifyRoundTrip", func(t *testing.T) {
		s := newStore(t)
		addr, err := s.AddFromMnemonic(conformanceMnemonic)
		if err != nil {
			t.Fatalf("AddFromMnemonic: %v", err)
		}
		entry, err := s.Get(addr)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		msg := []byte("conformance payload")
		sig, err := s.Sign(addr, msg)
		if err != nil {
			t.Fatalf("Sign: %v", err)
		}
		if len(sig) != keyring.SignatureLen {
			t.Fatalf("signature length %d, want %d", len(sig), keyring.SignatureLen)
		}
		if !keyring.VerifySignature(entry.PublicKey(), msg, sig) {
			t.Fatalf("signature does not verify")
		}
	})

	t.Run("UnknownAddressIsInvalidKey", func(t *testing.T) {
		s := newStore(t)
		var addr keyring.Address
		addr[19] = 0x01

		if _, err := s.Get(addr); !keyring.IsKind(err, keyring.KindInvalidKey) {
			t.Fatalf("Get: expected KindInvalidKey, got %v", err)
		}
		if _, err := s.Sign(addr, []byte("x")); !keyring.IsKind(err, keyring.KindInvalidKey) {
			t.Fatalf("Sign: expected KindInvalidKey, got %v", err)
		}
	})

	t.Run("InvalidMnemonicRejected", func(t *testing.T) {
		s := newStore(t)
		_, err := s.AddFromMnemonic(badMnemonic)
		if !keyring.IsKind(err, keyring.KindInvalidMnemonic) {
			t.Fatalf("expected KindInvalidMnemonic, got %v", err)
		}
	})

	t.Run("InsertOverwritesSilently", func(t *testing.T) {
		s := newStore(t)
		addr, entryA, err := keyring.Derive(conformanceMnemonic)
		if err != nil {
			t.Fatalf("Derive(A): %v", err)
		}
		_, entryB, err := keyring.Derive(secondMnemonic)
		if err != nil {
			t.Fatalf("Derive(B): %v", err)
		}

		if prev := s.Insert(addr, entryA); prev != nil {
			t.Fatalf("expected nil previous on first insert")
		}
		prev := s.Insert(addr, entryB)
		if prev == nil {
			t.Fatalf("expected previous entry on overwrite")
		}
		got, err := s.Get(addr)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !bytes.Equal(got.PublicKey().SerializeCompressed(), entryB.PublicKey().SerializeCompressed()) {
			t.Fatalf("Get returned the replaced entry")
		}
	})
}
