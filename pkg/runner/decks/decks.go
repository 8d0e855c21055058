package decks

import (
	"context"

	"tableflip.dev/saga/pkg/app"
	"tableflip.dev/saga/pkg/printers"
	"tableflip.dev/saga/pkg/store"
)

// Decks lists the decks in the library.
type Decks struct {
	Persistence store.Persistence

	pp printers.PrettyPrint
}

func (d *Decks) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: d.Persistence}
	names, err := svc.Decks(ctx)
	if err != nil {
		return err
	}

	d.pp.NewLine()
	d.pp.Title("Decks")
	d.pp.Decks(names...)
	return nil
}
