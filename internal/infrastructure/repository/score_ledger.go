package repository

import (
	"context"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"fitboard/internal/domain"
	"fitboard/internal/infrastructure/kv"
)

// ScoreLedger owns the per-day ranked scores and the per-participant score
// history. It is the only writer of either.
type ScoreLedger struct {
	store  kv.Store
	logger zerolog.Logger
}

func NewScoreLedger(store kv.Store, logger *zerolog.Logger) *ScoreLedger {
	return &ScoreLedger{
		store:  store,
		logger: logger.With().Str("component", "score_ledger").Logger(),
	}
}

// RecordScore upserts the participant's ranked entry and history field for
// one day, in a single pipelined batch. When the day's assigned exercise is
// known it is recorded alongside, so the timeline keeps showing what was
// actually assigned even if the directory entry changes later.
//
// The batch is not atomic: on a partial failure the ranked view and the
// history view can disagree for this one write until the next overwrite
// converges them. That window is logged, not surfaced.
func (l *ScoreLedger) RecordScore(ctx context.Context, rec domain.ScoreRecord, exercise string) error {
	if err := domain.ValidateSubmission(rec.Date, rec.Participant, rec.Score); err != nil {
		return err
	}

	pipe := l.store.Pipeline()
	pipe.ZAdd(ctx, scoresKey(rec.Date), rec.Participant, float64(rec.Score))
	pipe.HSet(ctx, historyKey(rec.Participant), rec.Date, strconv.Itoa(rec.Score))
	if exercise != "" {
		pipe.HSet(ctx, exerciseLogKey(rec.Participant), rec.Date, exercise)
	}
	if err := pipe.Exec(ctx); err != nil {
		l.logger.Warn().
			Err(err).
			Str("date", rec.Date).
			Str("participant", rec.Participant).
			Msg("pipelined score write failed; ranking and history may diverge until the next write")
		return err
	}
	return nil
}

// History returns every recorded date→score for the participant. Ordering
// is the caller's concern. An unknown participant yields an empty map.
func (l *ScoreLedger) History(ctx context.Context, participant string) (map[string]int, error) {
	fields, err := l.store.HGetAll(ctx, historyKey(participant))
	if err != nil {
		return nil, err
	}
	history := make(map[string]int, len(fields))
	for date, raw := range fields {
		score, err := strconv.Atoi(raw)
		if err != nil {
			l.logger.Warn().
				Str("participant", participant).
				Str("date", date).
				Str("value", raw).
				Msg("skipping unparsable history score")
			continue
		}
		history[date] = score
	}
	return history, nil
}

// RecordedExercises returns the date→exercise pairs captured at submission
// time for the participant.
func (l *ScoreLedger) RecordedExercises(ctx context.Context, participant string) (map[string]string, error) {
	return l.store.HGetAll(ctx, exerciseLogKey(participant))
}

// DayRanking returns the day's scores in descending order, paginated by
// [offset, offset+limit). Equal scores order by ascending participant so
// results are reproducible; the backend's own tie order (reverse lexical
// under ZREVRANGE) never shows through. The day's set is fetched in full
// before sorting: a bounded fetch is cut in the backend's tie order and can
// drop the very members the ascending tie-break ranks first. One day's
// board is small enough to rank whole.
func (l *ScoreLedger) DayRanking(ctx context.Context, date string, offset, limit int) ([]domain.RankedScore, error) {
	if err := domain.ValidateDate(date); err != nil {
		return nil, err
	}
	if limit <= 0 || offset < 0 {
		return []domain.RankedScore{}, nil
	}

	members, err := l.store.ZRevRangeWithScores(ctx, scoresKey(date), 0, -1)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(members, func(i, j int) bool {
		if members[i].Score != members[j].Score {
			return members[i].Score > members[j].Score
		}
		return members[i].Member < members[j].Member
	})

	if offset >= len(members) {
		return []domain.RankedScore{}, nil
	}
	members = members[offset:]
	if len(members) > limit {
		members = members[:limit]
	}

	ranked := make([]domain.RankedScore, 0, len(members))
	for _, m := range members {
		ranked = append(ranked, domain.RankedScore{Participant: m.Member, Score: int(m.Score)})
	}
	return ranked, nil
}
