package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"fitboard/internal/domain"
	"fitboard/internal/infrastructure/repository"
)

// SubmitUseCase handles score submissions: profile upsert, then the
// pipelined ledger write.
type SubmitUseCase struct {
	ledger    *repository.ScoreLedger
	profiles  *repository.ProfileStore
	exercises *repository.ExerciseDirectory
	logger    zerolog.Logger
}

func NewSubmitUseCase(ledger *repository.ScoreLedger, profiles *repository.ProfileStore, exercises *repository.ExerciseDirectory, logger *zerolog.Logger) *SubmitUseCase {
	return &SubmitUseCase{
		ledger:    ledger,
		profiles:  profiles,
		exercises: exercises,
		logger:    logger.With().Str("component", "submit").Logger(),
	}
}

// SubmitScore records one participant's score for one day, overwriting any
// earlier submission for the same pair. Write failures are returned to the
// caller for retry; there is no automatic retry here.
func (uc *SubmitUseCase) SubmitScore(ctx context.Context, participant, name, date string, score int) error {
	participant = domain.NormalizeParticipant(participant)
	if err := domain.ValidateSubmission(date, participant, score); err != nil {
		return err
	}

	profile := domain.Profile{Name: name}
	if strings.Contains(participant, "@") {
		profile.Email = participant
	}
	if err := uc.profiles.Upsert(ctx, participant, profile); err != nil {
		return err
	}

	// Decorating the submission with the day's exercise is best effort; a
	// directory outage must not block the score write.
	exercise, _, err := uc.exercises.GetExercise(ctx, date)
	if err != nil {
		uc.logger.Warn().Err(err).Str("date", date).Msg("exercise lookup failed; recording score without it")
		exercise = ""
	}

	return uc.ledger.RecordScore(ctx, domain.ScoreRecord{
		Date:        date,
		Participant: participant,
		Score:       score,
	}, exercise)
}
