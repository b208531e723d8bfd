package derive

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/wallet-sdk/internal/cli"
	"github/chapool/wallet-sdk/internal/config"
)

const (
	mnemonicFlag   = "mnemonic"
	pathFlag       = "path"
	indexFlag      = "index"
	passphraseFlag = "prompt-passphrase"
	jsonFlag       = "json"
)

type account struct {
	Path      string `json:"path"`
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
}

// New returns the derive subcommand: mnemonic + path -> address
func New(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive an account address from a mnemonic",
		Long: `Expands a BIP-39 mnemonic to a seed and derives the account at the
given BIP-44 path (or --index under the configured prefix).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg)
		},
	}

	cmd.Flags().String(mnemonicFlag, "", "BIP-39 mnemonic (prompted if omitted)")
	cmd.Flags().String(pathFlag, "", "full derivation path, e.g. m/44'/60'/0'/0/0")
	cmd.Flags().Uint32(indexFlag, 0, "account index under the configured prefix")
	cmd.Flags().Bool(passphraseFlag, false, "prompt for an optional BIP-39 passphrase")
	cmd.Flags().Bool(jsonFlag, false, "print the result as JSON")

	return cmd
}

//nolint:forbidigo // CLI result output goes to stdout by design
func run(cmd *cobra.Command, cfg config.Config) error {
	mnemonic, err := cli.ResolveMnemonic(mustString(cmd, mnemonicFlag))
	if err != nil {
		return err
	}

	passphrase, err := cli.ResolvePassphrase(mustBool(cmd, passphraseFlag))
	if err != nil {
		return err
	}

	index, _ := cmd.Flags().GetUint32(indexFlag)
	path := cli.ResolvePath(cfg, mustString(cmd, pathFlag), index)

	leaf, cleanup, err := cli.DeriveLeaf(mnemonic, passphrase, path)
	if err != nil {
		return err
	}
	defer cleanup()

	result := account{
		Path:      leaf.Path(),
		Address:   leaf.Address().Hex(),
		PublicKey: hex.EncodeToString(leaf.CompressedPublicKey()),
	}

	if mustBool(cmd, jsonFlag) {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	}

	fmt.Printf("path:       %s\n", result.Path)
	fmt.Printf("address:    %s\n", result.Address)
	fmt.Printf("public key: %s\n", result.PublicKey)
	return nil
}

func mustString(cmd *cobra.Command, name string) string {
	val, _ := cmd.Flags().GetString(name)
	return val
}

func mustBool(cmd *cobra.Command, name string) bool {
	val, _ := cmd.Flags().GetBool(name)
	return val
}
