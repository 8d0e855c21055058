package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/saga/pkg/app"
	"tableflip.dev/saga/pkg/narrative"
	"tableflip.dev/saga/pkg/runner/present"
	"tableflip.dev/saga/pkg/store"
)

func addPresent(topLevel *cobra.Command) {
	watch := false

	cmd := &cobra.Command{
		Use:   "present <deck>",
		Short: "Present a deck full screen",
		Long: "Present a deck full screen. The deck argument is either a YAML " +
			"file path or the name of an imported library deck.",
		Example: `
saga present talk.yaml
saga present "launch talk"
saga present "launch talk" --watch
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one deck file or name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			svc := &app.Service{Persistence: p}

			ctx := context.Background()
			ref := args[0]
			deck, err := svc.Load(ctx, ref)
			if err != nil {
				return oo.HandleError(err)
			}

			var opts []present.Option
			if watch {
				ctx, cancel := context.WithCancel(ctx)
				defer cancel()
				events, err := svc.Watch(ctx)
				if err != nil {
					return oo.HandleError(err)
				}
				load := func() (*narrative.Narrative, error) {
					return svc.Load(ctx, ref)
				}
				opts = append(opts, present.WithLibrary(events, load))
			}

			err = present.Run(deck, cfg.Nav(), cfg.FPS(), opts...)
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Reload the deck when its library entry changes on disk.")

	topLevel.AddCommand(cmd)
}
