package backendreg

import (
	"flag"
	"testing"
)

func TestMemoryBackendRegistered(t *testing.T) {
	names := Names(UsageDaemon)
	found := false
	for _, n := range names {
		if n == "memory" {
			found = true
		}
	}
	if !found {
		t.Fatalf("memory backend not registered: %v", names)
	}
}

func TestOpenMemory(t *testing.T) {
	store, closeFn, err := Open("memory", UsageDaemon)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if closeFn != nil {
		defer closeFn()
	}
	if store == nil {
		t.Fatalf("expected a store")
	}
	if _, err := store.AddFromMnemonic("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"); err != nil {
		t.Fatalf("AddFromMnemonic: %v", err)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, _, err := Open("bolt", UsageDaemon); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestRegisterValidation(t *testing.T) {
	if err := Register(Backend{}); err == nil {
		t.Fatalf("expected error for empty backend")
	}
	if err := Register(Backend{Name: "x", RegisterFlags: func(fs *flag.FlagSet) {}}); err == nil {
		t.Fatalf("expected error for backend without Open")
	}
}
