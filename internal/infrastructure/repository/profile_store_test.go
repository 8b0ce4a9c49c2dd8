package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fitboard/internal/domain"
	"fitboard/internal/infrastructure/kv"
)

func TestProfileUpsertCreatesWithDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewProfileStore(kv.NewMemory())

	err := s.Upsert(ctx, "alice@x.com", domain.Profile{Name: "Alice", Email: "alice@x.com"})
	require.NoError(t, err)

	p, ok, err := s.Get(ctx, "alice@x.com")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Alice", p.Name)
	require.Equal(t, domain.RoleUser, p.Role)
}

func TestProfileUpsertLeavesAbsentFieldsUntouched(t *testing.T) {
	ctx := context.Background()
	s := NewProfileStore(kv.NewMemory())

	require.NoError(t, s.Upsert(ctx, "alice@x.com", domain.Profile{Name: "Alice", Picture: "https://pics/alice.png"}))
	require.NoError(t, s.Upsert(ctx, "alice@x.com", domain.Profile{Name: "Alice B."}))

	p, ok, err := s.Get(ctx, "alice@x.com")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Alice B.", p.Name)
	require.Equal(t, "https://pics/alice.png", p.Picture)
	require.Equal(t, domain.RoleUser, p.Role)
}

func TestProfileGetAbsent(t *testing.T) {
	s := NewProfileStore(kv.NewMemory())

	_, ok, err := s.Get(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProfileGetByEmail(t *testing.T) {
	ctx := context.Background()
	s := NewProfileStore(kv.NewMemory())

	require.NoError(t, s.Upsert(ctx, "alice@x.com", domain.Profile{Name: "Alice", Email: "alice@x.com"}))

	p, ok, err := s.GetByEmail(ctx, "Alice@X.com")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Alice", p.Name)

	_, ok, err = s.GetByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProfileUpsertRejectsEmptyParticipant(t *testing.T) {
	s := NewProfileStore(kv.NewMemory())

	err := s.Upsert(context.Background(), "", domain.Profile{Name: "Ghost"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}
