package keystore

import (
	"github.com/spf13/cobra"
	"github/chapool/wallet-sdk/internal/config"
	"github/chapool/wallet-sdk/internal/util/command"
)

// New returns the keystore subcommand group
func New(cfg config.Config) *cobra.Command {
	return command.NewSubcommandGroup("keystore", "Manage keystore v3 files",
		newEncrypt(),
		newDecrypt(cfg),
	)
}
