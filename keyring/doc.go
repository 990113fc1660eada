// Package keyring implements a deterministic key-management store: a BIP-39
// mnemonic is derived along a fixed BIP-44 path into a secp256k1 keypair,
// stored under the 20-byte account address computed from its public key, and
// used to sign arbitrary byte payloads on demand.
//
// Derivation is referentially transparent: the same mnemonic always yields
// the same address and the same keypair, across process restarts and across
// implementations. The derivation path and the address hash pipeline are
// compiled-in constants because external wallet software derives the same
// bytes independently; making them configurable would break that guarantee.
package keyring
