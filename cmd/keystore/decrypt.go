package keystore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/wallet-sdk/hdwallet"
	"github/chapool/wallet-sdk/internal/cli"
	"github/chapool/wallet-sdk/internal/config"
	"github/chapool/wallet-sdk/internal/util"
	"github/chapool/wallet-sdk/keystore"
)

const (
	inFlag    = "in"
	pathFlag  = "path"
	indexFlag = "index"
)

func newDecrypt(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Unlock a keystore v3 file and print a derived address",
		Long: `Decrypts the seed from a keystore v3 file and prints the address at the
given derivation path. The seed itself is never printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDecrypt(cmd, cfg)
		},
	}

	cmd.Flags().String(inFlag, "keystore.json", "keystore file to unlock")
	cmd.Flags().String(pathFlag, "", "full derivation path, e.g. m/44'/60'/0'/0/0")
	cmd.Flags().Uint32(indexFlag, 0, "account index under the configured prefix")

	return cmd
}

//nolint:forbidigo // CLI result output goes to stdout by design
func runDecrypt(cmd *cobra.Command, cfg config.Config) error {
	in, _ := cmd.Flags().GetString(inFlag)
	encoded, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrap(err, "failed to read keystore file")
	}

	var encrypted keystore.EncryptedKey
	if err := json.Unmarshal(encoded, &encrypted); err != nil {
		return errors.Wrap(err, "failed to parse keystore file")
	}

	password, err := util.PromptSecret("Enter keystore password: ")
	if err != nil {
		return errors.Wrap(err, "failed to read password")
	}

	seedBytes, err := keystore.Decrypt(&encrypted, password)
	if err != nil {
		return errors.Wrap(err, "failed to decrypt keystore (invalid password?)")
	}
	defer func() {
		for i := range seedBytes {
			seedBytes[i] = 0
		}
	}()

	master, err := hdwallet.FromSeed(seedBytes)
	if err != nil {
		return errors.Wrap(err, "failed to compute master node")
	}
	defer master.Dispose()

	index, _ := cmd.Flags().GetUint32(indexFlag)
	pathValue, _ := cmd.Flags().GetString(pathFlag)
	path := cli.ResolvePath(cfg, pathValue, index)

	leaf, err := master.DerivePath(path)
	if err != nil {
		return errors.Wrapf(err, "failed to derive %q", path)
	}
	defer leaf.Dispose()

	fmt.Printf("path:    %s\n", leaf.Path())
	fmt.Printf("address: %s\n", leaf.Address().Hex())
	return nil
}
