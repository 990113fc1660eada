package keyring

import (
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"
)

// DerivationPath is the fixed BIP-44 path used for every derived account.
//
// Interoperability with external wallet software depends on every
// implementation deriving along this exact path; it is deliberately not
// configurable.
const DerivationPath = "m/44'/118'/0'/0/0"

// derivationSteps is DerivationPath decomposed into child indices.
var derivationSteps = [...]uint32{
	hdkeychain.HardenedKeyStart + 44,
	hdkeychain.HardenedKeyStart + 118,
	hdkeychain.HardenedKeyStart + 0,
	0,
	0,
}

// Derive converts a BIP-39 mnemonic into its account address and keypair.
//
// The mnemonic is validated against the standard wordlist and checksum, the
// seed is computed with an empty passphrase, and hierarchical derivation
// follows DerivationPath. Intermediate extended keys are zeroed before
// returning.
func Derive(mnemonic string) (Address, *KeyEntry, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return Address{}, nil, wrapError(KindInvalidMnemonic, "mnemonic failed wordlist/checksum validation", err)
	}

	ext, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return Address{}, nil, wrapError(KindPrivateKey, "master key construction failed", err)
	}
	for _, step := range derivationSteps {
		child, derr := ext.Derive(step)
		ext.Zero()
		if derr != nil {
			return Address{}, nil, wrapError(KindPrivateKey, "child key derivation failed", derr)
		}
		ext = child
	}
	defer ext.Zero()

	priv, err := ext.ECPrivKey()
	if err != nil {
		return Address{}, nil, wrapError(KindPrivateKey, "extended key holds no private key", err)
	}
	defer priv.Zero()

	raw := priv.Serialize()
	entry, err := NewKeyEntry(priv.PubKey(), raw)
	for i := range raw {
		raw[i] = 0
	}
	if err != nil {
		return Address{}, nil, err
	}
	return entry.Address(), entry, nil
}
