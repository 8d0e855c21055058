package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/saga/pkg/runner/decks"
	"tableflip.dev/saga/pkg/store"
)

func addDecks(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "decks",
		Aliases: []string{"list"},
		Short:   "List the imported decks",
		Example: `
saga decks
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			d := decks.Decks{Persistence: p}
			err = d.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
