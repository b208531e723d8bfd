// Package cli holds flag-resolution helpers shared by the hdkey subcommands.
package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/wallet-sdk/hdwallet"
	"github/chapool/wallet-sdk/internal/config"
	"github/chapool/wallet-sdk/internal/util"
	"github/chapool/wallet-sdk/seed"
)

// ResolveMnemonic returns the mnemonic from the flag value, falling back to
// a hidden terminal prompt. Invalid checksums are warned about but accepted,
// since BIP-39 expansion is defined for any string.
func ResolveMnemonic(flagValue string) (string, error) {
	mnemonic := flagValue
	if mnemonic == "" {
		var err error
		mnemonic, err = util.PromptSecret("Enter mnemonic: ")
		if err != nil {
			return "", err
		}
	}
	if mnemonic == "" {
		return "", errors.New("mnemonic must not be empty")
	}

	if !seed.Validate(mnemonic) {
		log.Warn().Msg("Mnemonic failed BIP-39 checksum validation, deriving anyway")
	}
	return mnemonic, nil
}

// ResolvePassphrase prompts for the optional BIP-39 passphrase when
// requested; otherwise the passphrase is empty. Passphrases are never taken
// from flags so they cannot leak into shell history.
func ResolvePassphrase(prompt bool) (string, error) {
	if !prompt {
		return "", nil
	}
	return util.PromptSecret("Enter passphrase: ")
}

// ResolvePath returns the explicit path if given, otherwise the configured
// account prefix with the index appended.
func ResolvePath(cfg config.Config, path string, index uint32) string {
	if path != "" {
		return path
	}
	return fmt.Sprintf("%s/%d", cfg.DefaultPathPrefix, index)
}

// DeriveLeaf expands the mnemonic and walks the derivation path. The cleanup
// function disposes every key buffer created along the way and must be
// deferred by the caller before touching the leaf.
func DeriveLeaf(mnemonic string, passphrase string, path string) (*hdwallet.HDNode, func(), error) {
	manager := seed.NewManager()
	if err := manager.Initialize(mnemonic, passphrase); err != nil {
		return nil, nil, errors.Wrap(err, "failed to initialize seed manager")
	}
	defer manager.Clear()

	seedBytes := manager.GetSeed()
	defer func() {
		for i := range seedBytes {
			seedBytes[i] = 0
		}
	}()

	master, err := hdwallet.FromSeed(seedBytes)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to compute master node")
	}

	leaf, err := master.DerivePath(path)
	if err != nil {
		master.Dispose()
		return nil, nil, errors.Wrapf(err, "failed to derive %q", path)
	}

	cleanup := func() {
		leaf.Dispose()
		master.Dispose()
	}
	return leaf, cleanup, nil
}
