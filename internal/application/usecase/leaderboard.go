package usecase

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"fitboard/internal/domain"
	"fitboard/internal/infrastructure/repository"
)

const defaultLeaderboardLimit = 10

// LeaderboardUseCase produces the ranked, profile-enriched view of one
// day's scores.
type LeaderboardUseCase struct {
	ledger   *repository.ScoreLedger
	profiles *repository.ProfileStore
	logger   zerolog.Logger
}

func NewLeaderboardUseCase(ledger *repository.ScoreLedger, profiles *repository.ProfileStore, logger *zerolog.Logger) *LeaderboardUseCase {
	return &LeaderboardUseCase{
		ledger:   ledger,
		profiles: profiles,
		logger:   logger.With().Str("component", "leaderboard").Logger(),
	}
}

// DailyLeaderboard ranks the day's scores and resolves each participant's
// profile. A ranking failure fails the whole query; a profile lookup
// failure only degrades that one entry to the raw identifier. Profile
// lookups run concurrently, one result slot per rank, so completion order
// cannot reshuffle the board.
func (uc *LeaderboardUseCase) DailyLeaderboard(ctx context.Context, date string, limit int) ([]domain.LeaderboardEntry, error) {
	if err := domain.ValidateDate(date); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	ranked, err := uc.ledger.DayRanking(ctx, date, 0, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, len(ranked))
	var wg sync.WaitGroup
	for i, r := range ranked {
		wg.Add(1)
		go func(i int, r domain.RankedScore) {
			defer wg.Done()
			entries[i] = uc.enrich(ctx, i+1, r)
		}(i, r)
	}
	wg.Wait()
	return entries, nil
}

func (uc *LeaderboardUseCase) enrich(ctx context.Context, rank int, r domain.RankedScore) domain.LeaderboardEntry {
	entry := domain.LeaderboardEntry{
		Rank:        rank,
		Participant: r.Participant,
		Score:       r.Score,
		Name:        r.Participant,
	}
	profile, ok, err := uc.profiles.Get(ctx, r.Participant)
	if err != nil {
		uc.logger.Warn().Err(err).Str("participant", r.Participant).Msg("profile lookup failed; showing raw identifier")
		return entry
	}
	if ok && profile.Name != "" {
		entry.Name = profile.Name
	}
	if ok {
		entry.Picture = profile.Picture
	}
	return entry
}
