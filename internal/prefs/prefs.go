// Package prefs persists client-local preferences such as the selected theme.
// Nothing here talks to the server: each client keeps its own store.
package prefs

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/go-while/go-foxstarter/internal/models"
)

// ThemeKey is the key the selected theme is stored under
const ThemeKey = "theme"

// Store is a small key-value store scoped to one client
type Store interface {
	// Get returns the value of key and whether it was set
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// LoadTheme returns the stored theme, or models.DefaultTheme when none was saved
// or the stored value is not a known theme.
func LoadTheme(ctx context.Context, s Store) (models.Theme, error) {
	v, ok, err := s.Get(ctx, ThemeKey)
	if err != nil {
		return models.DefaultTheme, errors.Wrap(err, "loading theme preference failed")
	}
	if !ok {
		return models.DefaultTheme, nil
	}
	return models.ParseTheme(v), nil
}

// SaveTheme stores the selected theme
func SaveTheme(ctx context.Context, s Store, theme models.Theme) error {
	return errors.Wrap(s.Set(ctx, ThemeKey, theme.String()), "saving theme preference failed")
}

// MemStore keeps preferences in memory only
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemStore returns an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{values: map[string]string{}}
}

func (m *MemStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemStore) Close() error {
	return nil
}
