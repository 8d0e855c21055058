package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/saga/pkg/app"
	"tableflip.dev/saga/pkg/store"
)

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a deck file into the library",
		Example: `
saga import talk.yaml
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one deck file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			svc := &app.Service{Persistence: p}
			n, err := svc.Import(context.Background(), args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("imported %q (%d sections)\n", n.Name, len(n.Sections))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
