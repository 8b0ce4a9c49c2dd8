package repository

import (
	"context"

	"fitboard/internal/domain"
	"fitboard/internal/infrastructure/kv"
)

// ExerciseDirectory maps a calendar day to the exercise assigned for it.
// The admin-authorization check belongs to the caller, not here.
type ExerciseDirectory struct {
	store kv.Store
}

func NewExerciseDirectory(store kv.Store) *ExerciseDirectory {
	return &ExerciseDirectory{store: store}
}

// SetExercise assigns the day's exercise and tracks the name in the set of
// all exercises ever assigned.
func (d *ExerciseDirectory) SetExercise(ctx context.Context, date, name string) error {
	if err := domain.ValidateDate(date); err != nil {
		return err
	}
	if name == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	pipe := d.store.Pipeline()
	pipe.Set(ctx, exerciseKey(date), name)
	pipe.SAdd(ctx, exercisesSetKey, name)
	return pipe.Exec(ctx)
}

// GetExercise returns the day's assigned exercise, reporting absence through
// ok rather than an error or a sentinel string.
func (d *ExerciseDirectory) GetExercise(ctx context.Context, date string) (string, bool, error) {
	return d.store.Get(ctx, exerciseKey(date))
}
