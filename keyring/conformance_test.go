package keyring_test

import (
	"testing"

	"relaykit.dev/keyring/keyring"
	"relaykit.dev/keyring/keyring/testkit"
)

func TestMemoryStoreConformance(t *testing.T) {
	testkit.RunStoreConformance(t, func(t *testing.T) keyring.Store {
		return keyring.NewMemory()
	})
}
