package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/saga/pkg/app"
	"tableflip.dev/saga/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <deck>",
		Aliases: []string{"rm"},
		Short:   "Remove a deck from the library",
		Example: `
saga remove "launch talk"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("expected a deck name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			svc := &app.Service{Persistence: p}
			name := strings.Join(args, " ")
			if err := svc.Remove(context.Background(), name); err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("removed %q\n", name)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
