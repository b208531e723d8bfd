package mnemonic

import (
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/wallet-sdk/seed"
)

const bitsFlag = "bits"

// New returns the mnemonic subcommand: fresh BIP-39 mnemonic generation
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate a new BIP-39 mnemonic",
		//nolint:forbidigo // CLI result output goes to stdout by design
		RunE: func(cmd *cobra.Command, _ []string) error {
			bits, _ := cmd.Flags().GetInt(bitsFlag)
			mnemonic, err := seed.NewMnemonic(bits)
			if err != nil {
				return err
			}

			fmt.Println(mnemonic)
			return nil
		},
	}

	cmd.Flags().Int(bitsFlag, 256, "entropy size in bits (128-256, multiple of 32)")
	return cmd
}
