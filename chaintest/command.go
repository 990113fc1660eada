// Package chaintest drives an external chain binary for integration
// scenarios: initialize a chain home, register wallets, rewrite the chain
// configuration, and run the node with its output captured.
//
// The keyring core only ever sees the mnemonic string extracted here; how
// it was obtained is this package's concern alone.
package chaintest

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// ChainCommand runs a chain binary against a dedicated home directory.
type ChainCommand struct {
	CommandPath string
	ChainID     string
	HomePath    string

	RPCPort  uint16
	GRPCPort uint16
	P2PPort  uint16

	// Logger defaults to a no-op logger when nil.
	Logger *zap.Logger
}

func (c *ChainCommand) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *ChainCommand) RPCAddress() string {
	return fmt.Sprintf("http://localhost:%d", c.RPCPort)
}

func (c *ChainCommand) WebSocketAddress() string {
	return fmt.Sprintf("ws://localhost:%d/websocket", c.RPCPort)
}

func (c *ChainCommand) GRPCAddress() string {
	return fmt.Sprintf("http://localhost:%d", c.GRPCPort)
}

func (c *ChainCommand) RPCListenAddress() string {
	return fmt.Sprintf("tcp://localhost:%d", c.RPCPort)
}

func (c *ChainCommand) GRPCListenAddress() string {
	return fmt.Sprintf("localhost:%d", c.GRPCPort)
}

// Exec runs the chain binary to completion and returns its stdout. A
// non-zero exit surfaces stderr in the error.
func (c *ChainCommand) Exec(args ...string) (string, error) {
	c.logger().Debug("executing command",
		zap.String("path", c.CommandPath),
		zap.Strings("args", args),
	)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(c.CommandPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("command %s %v failed: %w: %s",
			c.CommandPath, args, err, strings.TrimSpace(stderr.String()))
	}

	c.logger().Debug("command executed successfully",
		zap.String("output", stdout.String()),
	)
	return stdout.String(), nil
}

// Initialize creates the chain home directory structure.
func (c *ChainCommand) Initialize() error {
	_, err := c.Exec(
		"--home", c.HomePath,
		"--chain-id", c.ChainID,
		"init", c.ChainID,
	)
	return err
}

// WriteFile writes content under the chain home.
func (c *ChainCommand) WriteFile(relPath string, content []byte) error {
	fullPath := filepath.Join(c.HomePath, relPath)
	if err := os.WriteFile(fullPath, content, 0o600); err != nil {
		return err
	}
	c.logger().Debug("created new file", zap.String("path", fullPath))
	return nil
}

// ReadFile reads a file under the chain home.
func (c *ChainCommand) ReadFile(relPath string) ([]byte, error) {
	return os.ReadFile(filepath.Join(c.HomePath, relPath))
}

// AddRandomWallet registers a wallet under a randomized id with the given
// prefix, so repeated runs against the same chain home do not collide.
func (c *ChainCommand) AddRandomWallet(prefix string) (*Wallet, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("generate wallet id: %w", err)
	}
	id := fmt.Sprintf("%s-%x", prefix, binary.BigEndian.Uint32(buf[:]))
	return c.AddWallet(WalletID(id))
}

// AddWallet registers a wallet with the chain binary's test keyring,
// writes the emitted key JSON to <id>-seed.json for audit, and derives the
// signing key locally from the mnemonic.
func (c *ChainCommand) AddWallet(id WalletID) (*Wallet, error) {
	seedContent, err := c.Exec(
		"--home", c.HomePath,
		"keys", "add", string(id),
		"--keyring-backend", "test",
		"--output", "json",
	)
	if err != nil {
		return nil, err
	}

	seedPath := fmt.Sprintf("%s-seed.json", id)
	if err := c.WriteFile(seedPath, []byte(seedContent)); err != nil {
		return nil, err
	}

	return walletFromKeyFile(id, []byte(seedContent))
}

// Amount is a denomination with a quantity, e.g. {"stake", 1_000_000}.
type Amount struct {
	Denom  string
	Amount uint64
}

// AddGenesisAccount funds the wallet address in the genesis state.
func (c *ChainCommand) AddGenesisAccount(addr WalletAddress, amounts []Amount) error {
	parts := make([]string, 0, len(amounts))
	for _, a := range amounts {
		parts = append(parts, fmt.Sprintf("%d%s", a.Amount, a.Denom))
	}
	_, err := c.Exec(
		"--home", c.HomePath,
		"add-genesis-account", string(addr), strings.Join(parts, ","),
	)
	return err
}

// AddGenesisValidator emits a gentx staking the amount from the wallet.
func (c *ChainCommand) AddGenesisValidator(id WalletID, denom string, amount uint64) error {
	_, err := c.Exec(
		"--home", c.HomePath,
		"gentx", string(id),
		"--keyring-backend", "test",
		"--chain-id", c.ChainID,
		fmt.Sprintf("%d%s", amount, denom),
	)
	return err
}

// CollectGenTxs folds the emitted gentxs into the genesis document.
func (c *ChainCommand) CollectGenTxs() error {
	_, err := c.Exec("--home", c.HomePath, "collect-gentxs")
	return err
}

// chainConfigPath is where the chain binary keeps its node configuration,
// relative to the chain home.
const chainConfigPath = "config/config.toml"

// UpdateChainConfig reads config/config.toml, hands the decoded document to
// edit, and writes the result back.
func (c *ChainCommand) UpdateChainConfig(edit func(cfg map[string]any) error) error {
	raw, err := c.ReadFile(chainConfigPath)
	if err != nil {
		return fmt.Errorf("read chain config: %w", err)
	}

	var cfg map[string]any
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("decode chain config: %w", err)
	}
	if err := edit(cfg); err != nil {
		return err
	}

	out, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode chain config: %w", err)
	}
	return c.WriteFile(chainConfigPath, out)
}

// Start spawns the chain process with stdout and stderr piped to log files
// under the chain home. The caller owns the returned process.
func (c *ChainCommand) Start() (*ChildProcess, error) {
	stdout, err := os.Create(filepath.Join(c.HomePath, c.ChainID+".stdout.log"))
	if err != nil {
		return nil, err
	}
	stderr, err := os.Create(filepath.Join(c.HomePath, c.ChainID+".stderr.log"))
	if err != nil {
		_ = stdout.Close()
		return nil, err
	}

	cmd := exec.Command(c.CommandPath,
		"--home", c.HomePath,
		"start",
		"--pruning", "nothing",
		"--grpc.address", c.GRPCListenAddress(),
		"--rpc.laddr", c.RPCListenAddress(),
	)
	cmd.Stdin = nil
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		_ = stdout.Close()
		_ = stderr.Close()
		return nil, fmt.Errorf("start chain process: %w", err)
	}

	c.logger().Debug("started chain process",
		zap.Int("pid", cmd.Process.Pid),
		zap.String("rpc", c.RPCListenAddress()),
		zap.String("grpc", c.GRPCListenAddress()),
	)
	return &ChildProcess{cmd: cmd, stdout: stdout, stderr: stderr, logger: c.logger()}, nil
}
