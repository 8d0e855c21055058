package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/saga/pkg/narrative"
)

// Persistence is the deck library contract: imported decks stored by name.
// Navigation state is never persisted here, only content.
type Persistence interface {
	Get(ctx context.Context, name string) (*narrative.Narrative, error)
	List(ctx context.Context) []string
	Store(n *narrative.Narrative) error
	Delete(name string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Get(ctx context.Context, name string) (*narrative.Narrative, error) {
	val, err := p.d.Read(toKey(name))
	if err != nil {
		return nil, fmt.Errorf("store: deck %q: %w", name, err)
	}
	n := &narrative.Narrative{}
	if err := json.Unmarshal(val, n); err != nil {
		return nil, fmt.Errorf("store: deck %q: %w", name, err)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *persistence) List(ctx context.Context) []string {
	names := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		name, err := fromKey(key)
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *persistence) Store(n *narrative.Narrative) error {
	if n == nil {
		return errors.New("store: nil deck")
	}
	if err := n.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(n.Name), data)
}

func (p *persistence) Delete(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("store: deck name required")
	}
	return p.d.Erase(toKey(name))
}

// Deck names pass through base64 so arbitrary titles stay filesystem-safe.
func toKey(name string) string {
	return base64.URLEncoding.EncodeToString([]byte(name))
}

func fromKey(key string) (string, error) {
	name, err := base64.URLEncoding.DecodeString(key)
	if err != nil {
		return "", fmt.Errorf("store: bad key %q: %w", key, err)
	}
	return string(name), nil
}
