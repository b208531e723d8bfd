package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/wallet-sdk/cmd/derive"
	"github/chapool/wallet-sdk/cmd/keystore"
	"github/chapool/wallet-sdk/cmd/mnemonic"
	"github/chapool/wallet-sdk/cmd/sign"
	"github/chapool/wallet-sdk/internal/config"
	"github/chapool/wallet-sdk/internal/util"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "hdkey",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

Hierarchical deterministic key tool for EVM chains.
Derives BIP-44 accounts, signs personal messages and manages
keystore v3 files. Configurable through HDKEY_* ENV vars.`, config.ModuleName),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cfg := config.DefaultConfigFromEnv()
	initLogger(cfg)

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		mnemonic.New(),
		derive.New(cfg),
		sign.New(cfg),
		keystore.New(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}

func initLogger(cfg config.Config) {
	zerolog.SetGlobalLevel(util.LogLevelFromString(cfg.Logger.Level))
	if cfg.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
			w.TimeFormat = "15:04:05"
		}))
	}
}
