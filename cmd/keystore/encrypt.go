package keystore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/wallet-sdk/internal/cli"
	"github/chapool/wallet-sdk/internal/util"
	"github/chapool/wallet-sdk/keystore"
	"github/chapool/wallet-sdk/seed"
)

const (
	mnemonicFlag   = "mnemonic"
	passphraseFlag = "prompt-passphrase"
	outFlag        = "out"
	lightFlag      = "light"

	minPasswordLength = 8
	keystoreFileMode  = 0o600
)

func newEncrypt() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a wallet seed into a keystore v3 file",
		Long: `Expands a BIP-39 mnemonic to its seed and seals the seed into an
Ethereum keystore v3 file. The encryption password is prompted and
confirmed on the terminal.`,
		RunE: runEncrypt,
	}

	cmd.Flags().String(mnemonicFlag, "", "BIP-39 mnemonic (prompted if omitted)")
	cmd.Flags().Bool(passphraseFlag, false, "prompt for an optional BIP-39 passphrase")
	cmd.Flags().String(outFlag, "keystore.json", "output file")
	cmd.Flags().Bool(lightFlag, false, "use reduced scrypt cost (testing only)")

	return cmd
}

func runEncrypt(cmd *cobra.Command, _ []string) error {
	logger := log.With().Str("component", "keystore_encrypt").Logger()

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

	password, err := util.PromptSecret(fmt.Sprintf("Enter keystore password (min %d characters): ", minPasswordLength))
	if err != nil {
		return errors.Wrap(err, "failed to read password")
	}
	if len(password) < minPasswordLength {
		return errors.Errorf("password must be at least %d characters", minPasswordLength)
	}

	passwordConfirm, err := util.PromptSecret("Confirm password: ")
	if err != nil {
		return errors.Wrap(err, "failed to read password confirmation")
	}
	if password != passwordConfirm {
		return errors.New("passwords do not match")
	}

	seedBytes := seed.ExpandMnemonic(mnemonic, passphrase)
	defer func() {
		for i := range seedBytes {
			seedBytes[i] = 0
		}
	}()

	params := keystore.DefaultScryptParams()
	useLight, _ := cmd.Flags().GetBool(lightFlag)
	if useLight {
		params = keystore.LightScryptParams()
	}

	encrypted, err := keystore.Encrypt(seedBytes, password, params)
	if err != nil {
		return errors.Wrap(err, "failed to encrypt seed")
	}

	encoded, err := json.MarshalIndent(encrypted, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal keystore")
	}

	out, _ := cmd.Flags().GetString(outFlag)
	if err := os.WriteFile(out, encoded, keystoreFileMode); err != nil {
		return errors.Wrap(err, "failed to write keystore file")
	}

	logger.Info().Str("file", out).Str("id", encrypted.ID).Msg("Keystore created")
	return nil
}
