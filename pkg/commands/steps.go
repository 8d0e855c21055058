package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/saga/pkg/runner/steps"
	"tableflip.dev/saga/pkg/store"
)

func addSteps(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "steps <deck>",
		Short: "List the navigable steps of a deck",
		Example: `
saga steps talk.yaml
saga steps "launch talk"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one deck file or name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := steps.Steps{
				Persistence: p,
				Ref:         args[0],
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
