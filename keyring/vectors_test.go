package keyring

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// The vector files pin the full derivation pipeline (path, curve, seed
// algorithm, address hashing) to bytes derived independently of this
// implementation. Any drift in any stage shows up here first.
func TestKnownVectors(t *testing.T) {
	root := filepath.Join("testdata", "vectors")
	for _, name := range []string{"abandon12", "abandon24"} {
		t.Run(name, func(t *testing.T) {
			mnemonic := readVectorFile(t, filepath.Join(root, name+".mnemonic"))
			wantAddr := readVectorFile(t, filepath.Join(root, name+".addr"))
			wantPub := readVectorFile(t, filepath.Join(root, name+".pub"))

			addr, entry, err := Derive(mnemonic)
			if err != nil {
				t.Fatalf("Derive: %v", err)
			}
			if got := addr.String(); got != wantAddr {
				t.Fatalf("address mismatch: got %s want %s", got, wantAddr)
			}
			pubBytes, err := hex.DecodeString(wantPub)
			if err != nil {
				t.Fatalf("decode expected pubkey: %v", err)
			}
			if !bytes.Equal(entry.PublicKey().SerializeCompressed(), pubBytes) {
				t.Fatalf("public key mismatch: got %x want %s",
					entry.PublicKey().SerializeCompressed(), wantPub)
			}
		})
	}
}

func readVectorFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		t.Fatalf("empty vector file %s", path)
	}
	return s
}
