package backendreg

import (
	"flag"

	"relaykit.dev/keyring/keyring"
)

// The in-memory backend ships with the library: it is the only supported
// store behavior and needs no flags.
func init() {
	MustRegister(Backend{
		Name:          "memory",
		Description:   "in-memory key store (entries live for the process lifetime)",
		Usage:         UsageCLI | UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {},
		Open: func() (keyring.Store, func() error, error) {
			return keyring.NewMemory(), nil, nil
		},
	})
}
