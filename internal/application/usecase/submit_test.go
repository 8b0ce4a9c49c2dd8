package usecase

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"fitboard/internal/domain"
	"fitboard/internal/infrastructure/kv"
	"fitboard/internal/infrastructure/repository"
)

func TestSubmitScoreUpsertsProfile(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	f := newFixture(store)

	require.NoError(t, f.submit.SubmitScore(ctx, "Alice@X.com", "Alice", "2024-01-01", 50))

	profiles := repository.NewProfileStore(store)
	p, ok, err := profiles.Get(ctx, "alice@x.com")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Alice", p.Name)
	require.Equal(t, "alice@x.com", p.Email)
}

func TestSubmitScoreRecordsAssignedExercise(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	f := newFixture(store)

	require.NoError(t, f.exercises.SetExercise(ctx, "2024-01-01", "Push-ups"))
	require.NoError(t, f.submit.SubmitScore(ctx, "alice@x.com", "Alice", "2024-01-01", 50))

	logger := zerolog.Nop()
	ledger := repository.NewScoreLedger(store, &logger)
	recorded, err := ledger.RecordedExercises(ctx, "alice@x.com")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"2024-01-01": "Push-ups"}, recorded)
}

func TestSubmitScoreValidationBeforeWrite(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	f := newFixture(store)

	var verr *domain.ValidationError
	require.ErrorAs(t, f.submit.SubmitScore(ctx, "alice@x.com", "Alice", "2024-01-01", -5), &verr)
	require.ErrorAs(t, f.submit.SubmitScore(ctx, "alice@x.com", "Alice", "yesterday", 5), &verr)
	require.ErrorAs(t, f.submit.SubmitScore(ctx, "  ", "Alice", "2024-01-01", 5), &verr)

	// Nothing reached the store.
	fields, err := store.HGetAll(ctx, "history:alice@x.com")
	require.NoError(t, err)
	require.Empty(t, fields)
}

func TestSubmitScoreZeroIsValid(t *testing.T) {
	ctx := context.Background()
	f := newFixture(kv.NewMemory())

	require.NoError(t, f.submit.SubmitScore(ctx, "alice@x.com", "Alice", "2024-01-01", 0))

	entries, err := f.leaderboard.DailyLeaderboard(ctx, "2024-01-01", 10)
	require.NoError(t, err)
	require.Equal(t, 0, entries[0].Score)
}
