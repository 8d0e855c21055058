package steps

import (
	"context"

	"tableflip.dev/saga/pkg/app"
	"tableflip.dev/saga/pkg/printers"
	"tableflip.dev/saga/pkg/store"
)

// Steps lists the navigable step model for a deck.
type Steps struct {
	Persistence store.Persistence
	Ref         string

	pp printers.PrettyPrint
}

func (s *Steps) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: s.Persistence}
	n, err := svc.Load(ctx, s.Ref)
	if err != nil {
		return err
	}

	s.pp.NewLine()
	s.pp.Steps(n)
	return nil
}
