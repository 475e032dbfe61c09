package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/go-while/go-foxstarter/internal/models"
)

func TestMemStoreThemeDefaultsToLight(t *testing.T) {
	requireT := require.New(t)
	ctx := t.Context()

	s := NewMemStore()
	theme, err := LoadTheme(ctx, s)
	requireT.NoError(err)
	requireT.Equal(models.ThemeLight, theme)

	requireT.NoError(SaveTheme(ctx, s, models.ThemeDark))
	theme, err = LoadTheme(ctx, s)
	requireT.NoError(err)
	requireT.Equal(models.ThemeDark, theme)
}

func TestUnknownStoredThemeFallsBack(t *testing.T) {
	requireT := require.New(t)
	ctx := t.Context()

	s := NewMemStore()
	requireT.NoError(s.Set(ctx, ThemeKey, "sepia"))

	theme, err := LoadTheme(ctx, s)
	requireT.NoError(err)
	requireT.Equal(models.DefaultTheme, theme)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	requireT := require.New(t)
	ctx := t.Context()
	log := zaptest.NewLogger(t)
	dir := t.TempDir()

	s, err := OpenSQLiteStore(ctx, log, dir, "http://localhost:3000")
	requireT.NoError(err)

	_, ok, err := s.Get(ctx, ThemeKey)
	requireT.NoError(err)
	requireT.False(ok)

	requireT.NoError(SaveTheme(ctx, s, models.ThemeDark))
	requireT.NoError(SaveTheme(ctx, s, models.ThemeLight))
	requireT.NoError(SaveTheme(ctx, s, models.ThemeDark))
	requireT.NoError(s.Close())

	s, err = OpenSQLiteStore(ctx, log, dir, "http://localhost:3000")
	requireT.NoError(err)
	defer s.Close()

	theme, err := LoadTheme(ctx, s)
	requireT.NoError(err)
	requireT.Equal(models.ThemeDark, theme)
}

func TestSQLiteStoreScopes(t *testing.T) {
	requireT := require.New(t)
	ctx := t.Context()
	log := zaptest.NewLogger(t)
	dir := t.TempDir()

	a, err := OpenSQLiteStore(ctx, log, dir, "a")
	requireT.NoError(err)
	defer a.Close()
	b, err := OpenSQLiteStore(ctx, log, dir, "b")
	requireT.NoError(err)
	defer b.Close()

	requireT.NoError(a.Set(ctx, ThemeKey, "dark"))

	v, ok, err := a.Get(ctx, ThemeKey)
	requireT.NoError(err)
	requireT.True(ok)
	requireT.Equal("dark", v)

	_, ok, err = b.Get(ctx, ThemeKey)
	requireT.NoError(err)
	requireT.False(ok)
}

func TestIsRetryableError(t *testing.T) {
	requireT := require.New(t)

	requireT.False(isRetryableError(nil))
	requireT.True(isRetryableError(errors.New("database is locked")))
	requireT.True(isRetryableError(errors.New("SQLITE_BUSY")))
	requireT.False(isRetryableError(errors.New("no such table: preferences")))
}

func TestRetryStopsOnContext(t *testing.T) {
	requireT := require.New(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	s := &SQLiteStore{log: zaptest.NewLogger(t)}
	calls := 0
	err := s.retry(ctx, "locked", func() error {
		calls++
		return errors.New("database is locked")
	})
	requireT.ErrorIs(err, context.Canceled)
	requireT.Equal(1, calls)
}
