package keyring

import "sync"

// Store is the key-management surface.
//
// Contract:
// - AddFromMnemonic MUST be deterministic for a fixed mnemonic, and MUST
//   leave the store unchanged when derivation fails.
// - Insert MUST silently replace an existing entry for the same address.
// - Get and Sign MUST return a KindInvalidKey error for an unknown address,
//   never abort the process.
// - Implementations MUST be safe for concurrent use.
type Store interface {
	AddFromMnemonic(mnemonic string) (Address, error)
	Get(addr Address) (*KeyEntry, error)
	Insert(addr Address, entry *KeyEntry) *KeyEntry
	Sign(addr Address, msg []byte) ([]byte, error)
}

// Memory is the in-memory Store.
//
// A single mutex guards the whole map: every operation is short CPU-bound
// cryptography, so a get or sign racing an insert for the same address
// always observes a consistent snapshot and per-key locking buys nothing.
type Memory struct {
	mu      sync.Mutex
	entries map[Address]*KeyEntry
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[Address]*KeyEntry)}
}

// AddFromMnemonic derives a keypair from the mnemonic and stores it under
// its address, which is returned. On derivation failure nothing is inserted.
func (m *Memory) AddFromMnemonic(mnemonic string) (Address, error) {
	addr, entry, err := Derive(mnemonic)
	if err != nil {
		return Address{}, err
	}
	m.Insert(addr, entry)
	return addr, nil
}

// Get returns the entry stored under addr. The store retains ownership;
// callers must not extend the entry's lifetime beyond the store's.
func (m *Memory) Get(addr Address) (*KeyEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[addr]
	if !ok {
		return nil, newError(KindInvalidKey, "no key stored for address "+addr.String())
	}
	return entry, nil
}

// Insert stores entry under addr, silently replacing any previous entry.
// The previous entry is returned, or nil if the address was vacant.
func (m *Memory) Insert(addr Address, entry *KeyEntry) *KeyEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.entries[addr]
	m.entries[addr] = entry
	return prev
}

// Sign signs msg with the key stored under addr and returns the compact
// 64-byte signature. An unknown address is a recoverable KindInvalidKey
// error.
func (m *Memory) Sign(addr Address, msg []byte) ([]byte, error) {
	entry, err := m.Get(addr)
	if err != nil {
		return nil, err
	}
	return entry.sign(msg), nil
}

// Len reports the number of stored entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
