package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskfx/internal/currency"
	"github.com/jask/jaskfx/internal/database"
)

func openRepo(t *testing.T) *CurrencyRepo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fx.db")
	require.NoError(t, database.RunMigrations(path))
	db, err := database.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewCurrencyRepo(db)
}

func fixture() []currency.Currency {
	return []currency.Currency{
		{Code: "EUR", DisplayName: "Euro", FullName: "Euro Zone", Quote: decimal.RequireFromString("0.9213")},
		{Code: "USD", DisplayName: "Dollar", FullName: "US Dollar", Quote: decimal.NewFromInt(1)},
		{Code: "JPY", DisplayName: "Yen", FullName: "Japanese Yen", Quote: decimal.RequireFromString("149.30")},
	}
}

func TestCurrencyRepoEmptyList(t *testing.T) {
	repo := openRepo(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Nil(t, snap)
}

func TestCurrencyRepoRoundTrip(t *testing.T) {
	repo := openRepo(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, repo.SaveAll(ctx, fixture()))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"EUR", "USD", "JPY"}, currency.Codes(got))
	for i, want := range fixture() {
		require.Equal(t, want.DisplayName, got[i].DisplayName)
		require.Equal(t, want.FullName, got[i].FullName)
		require.True(t, want.Quote.Equal(got[i].Quote), "quote for %s", want.Code)
	}

	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, 3, snap.Count)
	require.NotEmpty(t, snap.ID)
}

func TestCurrencyRepoSaveAllReplaces(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, fixture()))
	first, err := repo.Snapshot(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.SaveAll(ctx, fixture()[:1]))
	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"EUR"}, currency.Codes(got))

	second, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, 1, second.Count)
}

func TestCurrencyRepoSaveAllGivesUpWhenConnectionHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx.db")
	require.NoError(t, database.RunMigrations(path))
	db, err := database.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := NewCurrencyRepo(db)

	held, err := db.Begin()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	start := time.Now()
	err = repo.SaveAll(ctx, fixture())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), time.Second)

	require.NoError(t, held.Rollback())
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}
