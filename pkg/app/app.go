package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"tableflip.dev/saga/pkg/narrative"
	"tableflip.dev/saga/pkg/store"
)

// Service provides high-level deck operations. It wraps persistence and
// narrative parsing so UIs and CLIs can share logic.
type Service struct {
	Persistence store.Persistence
}

var errNoPersistence = errors.New("app: no persistence configured")

// Load resolves a deck reference. A ref that names a readable file is parsed
// directly; anything else is looked up in the library by name.
func (s *Service) Load(ctx context.Context, ref string) (*narrative.Narrative, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New("app: deck reference required")
	}

	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return narrative.LoadFile(ref)
	}

	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Get(ctx, ref)
}

// Import parses a deck file and stores it in the library under its name.
func (s *Service) Import(ctx context.Context, path string) (*narrative.Narrative, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	n, err := narrative.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := s.Persistence.Store(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Decks returns the sorted names of all library decks.
func (s *Service) Decks(ctx context.Context) ([]string, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.List(ctx), nil
}

// Remove deletes the named deck from the library.
func (s *Service) Remove(ctx context.Context, name string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	names, err := s.Decks(ctx)
	if err != nil {
		return err
	}
	for _, have := range names {
		if have == name {
			return s.Persistence.Delete(name)
		}
	}
	return fmt.Errorf("app: no deck named %q", name)
}

// Watch subscribes to library change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
