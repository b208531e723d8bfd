// Package command holds shared helpers for building the CLI command tree.
package command

import (
	"github.com/spf13/cobra"
)

// NewSubcommandGroup returns a command that only exists to group its
// subcommands; invoking it directly prints help.
func NewSubcommandGroup(use string, short string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(subcommands...)
	return cmd
}
