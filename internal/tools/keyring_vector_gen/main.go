// Command keyring_vector_gen derives a mnemonic and emits the expected
// address and public key, for maintaining keyring/testdata/vectors.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"relaykit.dev/keyring/keyring"
)

func main() {
	mnemonic := flag.String("mnemonic", "", "BIP-39 mnemonic phrase")
	name := flag.String("name", "", "vector name; when set with -dir, writes <name>.{mnemonic,addr,pub}")
	dir := flag.String("dir", "", "output directory for vector files")
	flag.Parse()

	if *mnemonic == "" {
		fmt.Fprintln(os.Stderr, "missing -mnemonic")
		os.Exit(2)
	}

	addr, entry, err := keyring.Derive(*mnemonic)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	pubHex := hex.EncodeToString(entry.PublicKey().SerializeCompressed())

	fmt.Printf("path=%s\n", keyring.DerivationPath)
	fmt.Printf("addr=%s\n", addr)
	fmt.Printf("pub=%s\n", pubHex)

	if *dir == "" || *name == "" {
		return
	}
	files := map[string]string{
		*name + ".mnemonic": *mnemonic + "\n",
		*name + ".addr":     addr.String() + "\n",
		*name + ".pub":      pubHex + "\n",
	}
	for fname, content := range files {
		path := filepath.Join(*dir, fname)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
	}
}
