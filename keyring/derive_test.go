package keyring

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestDeriveDeterministic(t *testing.T) {
	addr1, entry1, err := Derive(testMnemonic)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	addr2, entry2, err := Derive(testMnemonic)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if addr1 != addr2 {
		t.Fatalf("address not deterministic: %s vs %s", addr1, addr2)
	}
	if !bytes.Equal(entry1.PublicKey().SerializeCompressed(), entry2.PublicKey().SerializeCompressed()) {
		t.Fatalf("public key not deterministic")
	}

	// The two entries must hold the same signing key: a signature from one
	// verifies under the other's public key.
	msg := []byte("determinism probe")
	if !VerifySignature(entry2.PublicKey(), msg, entry1.sign(msg)) {
		t.Fatalf("signing keys differ for the same mnemonic")
	}
}

func TestDeriveAddressMatchesEntry(t *testing.T) {
	addr, entry, err := Derive(testMnemonic)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if got := entry.Address(); got != addr {
		t.Fatalf("entry address mismatch: got %s want %s", got, addr)
	}
	if got := AddressFromPubKey(entry.PublicKey()); got != addr {
		t.Fatalf("pipeline address mismatch: got %s want %s", got, addr)
	}
}

func TestDeriveInvalidMnemonic_WordCount(t *testing.T) {
	_, _, err := Derive("abandon about")
	if err == nil {
		t.Fatalf("expected error for short phrase")
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *keyring.Error, got %T", err)
	}
	if e.Kind != KindInvalidMnemonic {
		t.Fatalf("expected KindInvalidMnemonic, got %s", e.Kind)
	}
	if e.Cause == nil {
		t.Fatalf("expected the parse failure attached as Cause")
	}
}

func TestDeriveInvalidMnemonic_Checksum(t *testing.T) {
	// Twelve repetitions of the same word carry a bad checksum.
	bad := strings.TrimSpace(strings.Repeat("abandon ", 12))
	_, _, err := Derive(bad)
	if !IsKind(err, KindInvalidMnemonic) {
		t.Fatalf("expected KindInvalidMnemonic, got %v", err)
	}
}

func TestDeriveInvalidMnemonic_UnknownWord(t *testing.T) {
	bad := strings.Replace(testMnemonic, "about", "aboutx", 1)
	_, _, err := Derive(bad)
	if !IsKind(err, KindInvalidMnemonic) {
		t.Fatalf("expected KindInvalidMnemonic, got %v", err)
	}
}
