package chaintest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"relaykit.dev/keyring/keyring"
)

const sampleConfig = `proxy_app = "tcp://127.0.0.1:26658"
moniker = "localnet"

[rpc]
laddr = "tcp://127.0.0.1:26657"
max_open_connections = 900

[p2p]
laddr = "tcp://0.0.0.0:26656"
`

func TestUpdateChainConfig(t *testing.T) {
	home := t.TempDir()
	if err := os.MkdirAll(filepath.Join(home, "config"), 0o755); err != nil {
		t.Fatalf("mkdir config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(home, chainConfigPath), []byte(sampleConfig), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c := &ChainCommand{ChainID: "test-1", HomePath: home, RPCPort: 26657}
	err := c.UpdateChainConfig(func(cfg map[string]any) error {
		rpc, ok := cfg["rpc"].(map[string]any)
		if !ok {
			t.Fatalf("rpc section missing or wrong shape: %T", cfg["rpc"])
		}
		rpc["laddr"] = c.RPCListenAddress()
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateChainConfig: %v", err)
	}

	raw, err := c.ReadFile(chainConfigPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var got map[string]any
	if err := toml.Unmarshal(raw, &got); err != nil {
		t.Fatalf("decode rewritten config: %v", err)
	}
	rpc := got["rpc"].(map[string]any)
	if rpc["laddr"] != "tcp://localhost:26657" {
		t.Fatalf("laddr not rewritten: %v", rpc["laddr"])
	}
	// Untouched values survive the round trip.
	if got["moniker"] != "localnet" {
		t.Fatalf("moniker lost: %v", got["moniker"])
	}
	if rpc["max_open_connections"] != int64(900) {
		t.Fatalf("max_open_connections lost: %v", rpc["max_open_connections"])
	}
}

func TestUpdateChainConfigMissingFile(t *testing.T) {
	c := &ChainCommand{ChainID: "test-1", HomePath: t.TempDir()}
	err := c.UpdateChainConfig(func(cfg map[string]any) error { return nil })
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestWalletFromKeyFile(t *testing.T) {
	seedJSON := []byte(`{
		"name": "relayer-0",
		"type": "local",
		"address": "cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4",
		"pubkey": "cosmospub1addwnpep...",
		"mnemonic": "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	}`)

	w, err := walletFromKeyFile("relayer-0", seedJSON)
	if err != nil {
		t.Fatalf("walletFromKeyFile: %v", err)
	}
	if w.ID != "relayer-0" {
		t.Fatalf("wallet id mismatch: %s", w.ID)
	}
	if w.Address != "cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4" {
		t.Fatalf("wallet address mismatch: %s", w.Address)
	}
	// The locally derived key must agree with the golden derivation vector.
	if got := w.Key.Address().String(); got != "28ff5c6d57d8cfd492b6fb42614536ed648e01fd" {
		t.Fatalf("derived address mismatch: %s", got)
	}
}

func TestWalletFromKeyFileRejectsIncomplete(t *testing.T) {
	if _, err := walletFromKeyFile("w", []byte(`{"address":"cosmos1..."}`)); err == nil {
		t.Fatalf("expected error for missing mnemonic")
	}
	if _, err := walletFromKeyFile("w", []byte(`{"mnemonic":"abandon about"}`)); err == nil {
		t.Fatalf("expected error for missing address")
	}
	if _, err := walletFromKeyFile("w", []byte(`not json`)); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestWalletFromKeyFileSurfacesDerivationErrors(t *testing.T) {
	seedJSON := []byte(`{
		"address": "cosmos1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq",
		"mnemonic": "abandon about"
	}`)
	_, err := walletFromKeyFile("w", seedJSON)
	if err == nil {
		t.Fatalf("expected derivation error")
	}
	if !keyring.IsKind(err, keyring.KindInvalidMnemonic) {
		t.Fatalf("expected wrapped KindInvalidMnemonic, got %v", err)
	}
}

func TestChainCommandAddresses(t *testing.T) {
	c := &ChainCommand{RPCPort: 26657, GRPCPort: 9090, P2PPort: 26656}
	checks := map[string]string{
		c.RPCAddress():        "http://localhost:26657",
		c.WebSocketAddress():  "ws://localhost:26657/websocket",
		c.GRPCAddress():       "http://localhost:9090",
		c.RPCListenAddress():  "tcp://localhost:26657",
		c.GRPCListenAddress(): "localhost:9090",
	}
	for got, want := range checks {
		if got != want {
			t.Fatalf("address mismatch: got %s want %s", got, want)
		}
	}
}

func TestExecFailureIncludesStderr(t *testing.T) {
	c := &ChainCommand{CommandPath: "/bin/sh"}
	_, err := c.Exec("-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("stderr not surfaced: %v", err)
	}
}

func TestExecCapturesStdout(t *testing.T) {
	c := &ChainCommand{CommandPath: "/bin/sh"}
	out, err := c.Exec("-c", "echo hello")
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Fatalf("unexpected output %q", out)
	}
}
