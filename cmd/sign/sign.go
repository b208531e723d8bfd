package sign

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/wallet-sdk/internal/cli"
	"github/chapool/wallet-sdk/internal/config"
)

const (
	mnemonicFlag   = "mnemonic"
	pathFlag       = "path"
	indexFlag      = "index"
	messageFlag    = "message"
	passphraseFlag = "prompt-passphrase"
	jsonFlag       = "json"
)

type signed struct {
	Path      string `json:"path"`
	Address   string `json:"address"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Compact   string `json:"compact"`
}

// New returns the sign subcommand: personal-message signing
func New(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a personal message with a derived account",
		Long: `Hashes the message with the EVM personal-message prefix and signs the
digest with the account at the given path. Prints both the standard
0x-prefixed signature and the compact wallet form.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg)
		},
	}

	cmd.Flags().String(mnemonicFlag, "", "BIP-39 mnemonic (prompted if omitted)")
	cmd.Flags().String(pathFlag, "", "full derivation path, e.g. m/44'/60'/0'/0/0")
	cmd.Flags().Uint32(indexFlag, 0, "account index under the configured prefix")
	cmd.Flags().String(messageFlag, "", "message to sign")
	cmd.Flags().Bool(passphraseFlag, false, "prompt for an optional BIP-39 passphrase")
	cmd.Flags().Bool(jsonFlag, false, "print the result as JSON")

	if err := cmd.MarkFlagRequired(messageFlag); err != nil {
		panic(err)
	}

	return cmd
}

//nolint:forbidigo // CLI result output goes to stdout by design
func run(cmd *cobra.Command, cfg config.Config) error {
	message, _ := cmd.Flags().GetString(messageFlag)

	mnemonicValue, _ := cmd.Flags().GetString(mnemonicFlag)
	mnemonic, err := cli.ResolveMnemonic(mnemonicValue)
	if err != nil {
		return err
	}

	promptPassphrase, _ := cmd.Flags().GetBool(passphraseFlag)
	passphrase, err := cli.ResolvePassphrase(promptPassphrase)
	if err != nil {
		return err
	}

	index, _ := cmd.Flags().GetUint32(indexFlag)
	pathValue, _ := cmd.Flags().GetString(pathFlag)
	path := cli.ResolvePath(cfg, pathValue, index)

	leaf, cleanup, err := cli.DeriveLeaf(mnemonic, passphrase, path)
	if err != nil {
		return err
	}
	defer cleanup()

	digest := accounts.TextHash([]byte(message))
	signature, err := leaf.SigningKey().Sign(digest)
	if err != nil {
		return errors.Wrap(err, "failed to sign message")
	}

	compact, err := signature.Compact()
	if err != nil {
		return errors.Wrap(err, "failed to encode compact signature")
	}

	result := signed{
		Path:      leaf.Path(),
		Address:   leaf.Address().Hex(),
		Message:   message,
		Signature: signature.Standard(),
		Compact:   compact,
	}

	useJSON, _ := cmd.Flags().GetBool(jsonFlag)
	if useJSON {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	}

	fmt.Printf("path:      %s\n", result.Path)
	fmt.Printf("address:   %s\n", result.Address)
	fmt.Printf("signature: %s\n", result.Signature)
	fmt.Printf("compact:   %s\n", result.Compact)
	return nil
}
