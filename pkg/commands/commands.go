package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "saga",
		Short: base.Wrap80("Scroll-driven narrative decks in the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addPresent(topLevel)
	addSteps(topLevel)
	addDecks(topLevel)
	addImport(topLevel)
	addRemove(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}
