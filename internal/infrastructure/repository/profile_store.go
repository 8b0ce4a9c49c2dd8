package repository

import (
	"context"
	"strconv"
	"time"

	"fitboard/internal/domain"
	"fitboard/internal/infrastructure/kv"
)

// ProfileStore maps participant identifiers to display profiles. Read-mostly;
// upserted whenever a participant is seen.
type ProfileStore struct {
	store kv.Store
}

func NewProfileStore(store kv.Store) *ProfileStore {
	return &ProfileStore{store: store}
}

// Upsert writes the profile fields that are present and leaves the rest
// untouched. On first sight the participant joins the member set, gains a
// creation timestamp and defaults to the user role. Idempotent.
func (s *ProfileStore) Upsert(ctx context.Context, participant string, p domain.Profile) error {
	if participant == "" {
		return &domain.ValidationError{Field: "participant", Reason: "must not be empty"}
	}

	existing, err := s.store.HGetAll(ctx, profileKey(participant))
	if err != nil {
		return err
	}

	pipe := s.store.Pipeline()
	key := profileKey(participant)
	if p.Name != "" {
		pipe.HSet(ctx, key, "name", p.Name)
	}
	if p.Email != "" {
		pipe.HSet(ctx, key, "email", p.Email)
		pipe.Set(ctx, emailIndexKey(p.Email), participant)
	}
	if p.Picture != "" {
		pipe.HSet(ctx, key, "picture", p.Picture)
	}
	switch {
	case p.Role != "":
		pipe.HSet(ctx, key, "role", p.Role)
	case len(existing) == 0:
		pipe.HSet(ctx, key, "role", domain.RoleUser)
	}
	if len(existing) == 0 {
		pipe.HSet(ctx, key, "createdAt", strconv.FormatInt(time.Now().UnixMilli(), 10))
	}
	pipe.SAdd(ctx, usersSetKey, participant)
	return pipe.Exec(ctx)
}

// Get returns the stored profile, reporting absence through ok.
func (s *ProfileStore) Get(ctx context.Context, participant string) (domain.Profile, bool, error) {
	fields, err := s.store.HGetAll(ctx, profileKey(participant))
	if err != nil {
		return domain.Profile{}, false, err
	}
	if len(fields) == 0 {
		return domain.Profile{}, false, nil
	}
	return domain.Profile{
		Name:    fields["name"],
		Email:   fields["email"],
		Picture: fields["picture"],
		Role:    fields["role"],
	}, true, nil
}

// GetByEmail resolves a participant through the email reverse index.
func (s *ProfileStore) GetByEmail(ctx context.Context, email string) (domain.Profile, bool, error) {
	participant, ok, err := s.store.Get(ctx, emailIndexKey(domain.NormalizeParticipant(email)))
	if err != nil || !ok {
		return domain.Profile{}, false, err
	}
	return s.Get(ctx, participant)
}
