package command

import (
	"github.com/spf13/cobra"
)

// NewSubcommandGroup returns a command that exists solely to group its
// subcommands; invoking the group itself prints its usage.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use: use,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}
