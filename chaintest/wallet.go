package chaintest

import (
	"encoding/json"
	"fmt"

	"relaykit.dev/keyring/keyring"
)

// WalletID names a wallet registered with the chain binary.
type WalletID string

// WalletAddress is the chain binary's display encoding of an account
// address (bech32 with a chain prefix). The core keyring never consumes it.
type WalletAddress string

// Wallet pairs a chain-registered account with the locally derived keypair.
type Wallet struct {
	ID      WalletID
	Address WalletAddress
	Key     *keyring.KeyEntry
}

// KeyFile is the JSON document the chain binary prints for `keys add`.
type KeyFile struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Address  string `json:"address"`
	PubKey   string `json:"pubkey"`
	Mnemonic string `json:"mnemonic"`
}

// walletFromKeyFile parses a `keys add` JSON document and derives the
// signing key locally. Only the mnemonic feeds the derivation; the rest of
// the document is audit material.
func walletFromKeyFile(id WalletID, seedJSON []byte) (*Wallet, error) {
	var kf KeyFile
	if err := json.Unmarshal(seedJSON, &kf); err != nil {
		return nil, fmt.Errorf("parse key file for wallet %s: %w", id, err)
	}
	if kf.Address == "" {
		return nil, fmt.Errorf("key file for wallet %s has no address field", id)
	}
	if kf.Mnemonic == "" {
		return nil, fmt.Errorf("key file for wallet %s has no mnemonic field", id)
	}
	_, key, err := keyring.Derive(kf.Mnemonic)
	if err != nil {
		return nil, fmt.Errorf("derive key for wallet %s: %w", id, err)
	}
	return &Wallet{ID: id, Address: WalletAddress(kf.Address), Key: key}, nil
}
