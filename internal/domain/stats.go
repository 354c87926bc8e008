package domain

import "time"

// Game type identifiers, stored as-is in game_stats rows.
const (
	GameChooseTranslation = "choose_translation"
	GameBuildWord         = "build_word"
	GameFindMissingLetter = "find_missing_letter"
	GameRecallTyping      = "recall_typing"
	GameGuessWord         = "guess_word"
)

// GameEvent is a single finished game round
type GameEvent struct {
	UserID     int64
	GameType   string
	Correct    bool
	TimeTaken  *float64 // seconds, set only for recall_typing
	Collection string
	OccurredAt time.Time
}

// GameStats holds accumulated counters for one (game type, collection) bucket.
// Invariant: Played = Correct + Incorrect.
type GameStats struct {
	GameType   string   `db:"game_type"`
	Collection string   `db:"collection"`
	Played     int      `db:"played"`
	Correct    int      `db:"correct"`
	Incorrect  int      `db:"incorrect"`
	BestTime   *float64 `db:"best_time"`
}

// UserStats is a point-in-time aggregate over all of a user's collections
type UserStats struct {
	UserID              int64
	DisplayName         string
	TotalCorrectAnswers int
	BestTestScore       int
	BestTestTime        *float64
	LastActivity        *time.Time
	Games               []GameStats
}

// RankingRow is the raw per-user input to the ranking computation
type RankingRow struct {
	UserID         int64    `db:"user_id"`
	Name           string   `db:"name"`
	FirstName      string   `db:"first_name"`
	LastName       string   `db:"last_name"`
	Username       string   `db:"username"`
	TotalCorrect   int      `db:"total_correct"`
	BestTestScore  int      `db:"best_test_score"`
	GameCorrect    int      `db:"game_correct"`
	BestRecallTime *float64 `db:"best_recall_time"`
	LastActive     string   `db:"last_active"`
}

// RankedUser is a derived ranking entry, never persisted
type RankedUser struct {
	UserID        int64
	DisplayName   string
	OverallScore  float64
	Rank          int
	TotalCorrect  int
	BestTestScore int
	LastActive    string
}
