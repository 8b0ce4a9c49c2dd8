package usecase

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"fitboard/internal/domain"
	"fitboard/internal/infrastructure/repository"
)

// HistoryUseCase assembles a participant's timeline by joining the score
// history with the exercises assigned on those days.
type HistoryUseCase struct {
	ledger    *repository.ScoreLedger
	exercises *repository.ExerciseDirectory
	logger    zerolog.Logger
}

func NewHistoryUseCase(ledger *repository.ScoreLedger, exercises *repository.ExerciseDirectory, logger *zerolog.Logger) *HistoryUseCase {
	return &HistoryUseCase{
		ledger:    ledger,
		exercises: exercises,
		logger:    logger.With().Str("component", "history").Logger(),
	}
}

// ParticipantTimeline returns one entry per day that has a score, newest
// first. The exercise recorded at submission time wins; otherwise the
// directory's current assignment is used; a day with neither keeps an empty
// exercise. An unknown participant gets an empty timeline, not an error.
func (uc *HistoryUseCase) ParticipantTimeline(ctx context.Context, participant string) ([]domain.HistoryEntry, error) {
	participant = domain.NormalizeParticipant(participant)
	if participant == "" {
		return nil, &domain.ValidationError{Field: "participant", Reason: "must not be empty"}
	}

	scores, err := uc.ledger.History(ctx, participant)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return []domain.HistoryEntry{}, nil
	}

	recorded, err := uc.ledger.RecordedExercises(ctx, participant)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(scores))
	for date := range scores {
		dates = append(dates, date)
	}
	// YYYY-MM-DD sorts lexically in chronological order; reverse for newest
	// first.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	entries := make([]domain.HistoryEntry, 0, len(dates))
	for _, date := range dates {
		exercise := recorded[date]
		if exercise == "" {
			name, ok, err := uc.exercises.GetExercise(ctx, date)
			if err != nil {
				return nil, err
			}
			if ok {
				exercise = name
			}
		}
		entries = append(entries, domain.HistoryEntry{
			Date:     date,
			Score:    scores[date],
			Exercise: exercise,
		})
	}
	return entries, nil
}
