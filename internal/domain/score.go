package domain

// ScoreRecord is one participant's score for one calendar day. Exactly one
// record is current per (date, participant); a later submission for the same
// pair overwrites it.
type ScoreRecord struct {
	Date        string `json:"date"`
	Participant string `json:"participant"`
	Score       int    `json:"score"`
}

// RankedScore is a Score Ledger ranking row, before profile enrichment.
type RankedScore struct {
	Participant string `json:"participant"`
	Score       int    `json:"score"`
}

// LeaderboardEntry is one row of a day's leaderboard, enriched with the
// participant's display profile. Rank is 1-based.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Participant string `json:"participant"`
	Score       int    `json:"score"`
	Name        string `json:"name"`
	Picture     string `json:"picture,omitempty"`
}

// HistoryEntry is one day of a participant's timeline. Exercise is empty
// when no exercise was assigned for that date.
type HistoryEntry struct {
	Date     string `json:"date"`
	Score    int    `json:"score"`
	Exercise string `json:"exercise,omitempty"`
}
