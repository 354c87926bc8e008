package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"lexibot/internal/domain"

	"github.com/jmoiron/sqlx"
)

// StatsRepo implements repository.StatsRepository
type StatsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new statistics repository
func NewStatsRepo(db *sqlx.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// RecordTestResult appends a test-result row and max-merges the
// denormalized best score on the user row.
func (r *StatsRepo) RecordTestResult(userID int64, score, total int, collection string) error {
	_, err := r.db.Exec(
		`INSERT INTO test_results (user_id, score, total, collection, created_at) VALUES (?, ?, ?, ?, ?)`,
		userID, score, total, collection, time.Now(),
	)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		`UPDATE users SET best_test_score = MAX(best_test_score, ?), last_active = ? WHERE user_id = ?`,
		score, time.Now(), userID,
	)
	return err
}

// UpdateBestTestTime min-merges a finished test's duration
func (r *StatsRepo) UpdateBestTestTime(userID int64, seconds float64) error {
	query := `
		UPDATE users
		SET best_test_time = CASE
			WHEN best_test_time IS NULL OR ? < best_test_time THEN ?
			ELSE best_test_time
		END
		WHERE user_id = ?
	`
	_, err := r.db.Exec(query, seconds, seconds, userID)
	return err
}

// RecordGameEvent bumps the counters of the (game type, collection)
// bucket. Only recall_typing keeps a best time; every other game type
// forces the field back to NULL so a reclassified word cannot carry a
// stale timing.
func (r *StatsRepo) RecordGameEvent(ev domain.GameEvent) error {
	correct, incorrect := 0, 0
	if ev.Correct {
		correct = 1
	} else {
		incorrect = 1
	}

	var query string
	args := []interface{}{ev.UserID, ev.GameType, ev.Collection, correct, incorrect}

	if ev.GameType == domain.GameRecallTyping {
		var newTime sql.NullFloat64
		if ev.TimeTaken != nil {
			newTime = sql.NullFloat64{Float64: *ev.TimeTaken, Valid: true}
		}
		query = `
			INSERT INTO game_stats (user_id, game_type, collection, played, correct, incorrect, best_time)
			VALUES (?, ?, ?, 1, ?, ?, ?)
			ON CONFLICT (user_id, game_type, collection) DO UPDATE SET
				played = played + 1,
				correct = correct + excluded.correct,
				incorrect = incorrect + excluded.incorrect,
				best_time = CASE
					WHEN excluded.best_time IS NULL THEN game_stats.best_time
					WHEN game_stats.best_time IS NULL OR excluded.best_time < game_stats.best_time THEN excluded.best_time
					ELSE game_stats.best_time
				END
		`
		args = append(args, newTime)
	} else {
		query = `
			INSERT INTO game_stats (user_id, game_type, collection, played, correct, incorrect, best_time)
			VALUES (?, ?, ?, 1, ?, ?, NULL)
			ON CONFLICT (user_id, game_type, collection) DO UPDATE SET
				played = played + 1,
				correct = correct + excluded.correct,
				incorrect = incorrect + excluded.incorrect,
				best_time = NULL
		`
	}

	if _, err := r.db.Exec(query, args...); err != nil {
		return err
	}

	_, err := r.db.Exec(`UPDATE users SET last_active = ? WHERE user_id = ?`, ev.OccurredAt, ev.UserID)
	return err
}

// UserStats aggregates headline numbers across all collections
func (r *StatsRepo) UserStats(userID int64) (*domain.UserStats, error) {
	var u domain.User
	err := r.db.Get(&u, `SELECT * FROM users WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	stats := &domain.UserStats{
		UserID:        userID,
		DisplayName:   u.DisplayName(),
		BestTestScore: u.BestTestScore,
		BestTestTime:  u.BestTestTime,
	}
	lastActive := u.LastActive
	stats.LastActivity = &lastActive

	err = r.db.Get(&stats.TotalCorrectAnswers,
		`SELECT COALESCE(SUM(score), 0) FROM test_results WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT game_type, '' AS collection,
		       SUM(played) AS played, SUM(correct) AS correct, SUM(incorrect) AS incorrect,
		       MIN(best_time) AS best_time
		FROM game_stats
		WHERE user_id = ?
		GROUP BY game_type
		ORDER BY game_type
	`
	if err := r.db.Select(&stats.Games, query, userID); err != nil {
		return nil, err
	}
	return stats, nil
}

// CollectionStats returns per-collection game breakdowns
func (r *StatsRepo) CollectionStats(userID int64) (map[string][]domain.GameStats, error) {
	var rows []domain.GameStats
	query := `
		SELECT game_type, collection, played, correct, incorrect, best_time
		FROM game_stats
		WHERE user_id = ?
		ORDER BY collection, game_type
	`
	if err := r.db.Select(&rows, query, userID); err != nil {
		return nil, err
	}

	grouped := make(map[string][]domain.GameStats)
	for _, row := range rows {
		grouped[row.Collection] = append(grouped[row.Collection], row)
	}
	return grouped, nil
}

// RankingRows returns one row per registered user with everything the
// ranking needs. Row order is the enumeration order ties fall back to.
func (r *StatsRepo) RankingRows() ([]domain.RankingRow, error) {
	query := `
		SELECT u.user_id, u.name, u.first_name, u.last_name, u.username,
		       u.best_test_score,
		       CAST(u.last_active AS TEXT) AS last_active,
		       COALESCE(tr.total_correct, 0) AS total_correct,
		       COALESCE(gs.game_correct, 0) AS game_correct,
		       gs.best_recall_time
		FROM users u
		LEFT JOIN (
			SELECT user_id, SUM(score) AS total_correct
			FROM test_results GROUP BY user_id
		) tr ON tr.user_id = u.user_id
		LEFT JOIN (
			SELECT user_id,
			       SUM(correct) AS game_correct,
			       MIN(CASE WHEN game_type = 'recall_typing' THEN best_time END) AS best_recall_time
			FROM game_stats GROUP BY user_id
		) gs ON gs.user_id = u.user_id
		ORDER BY u.user_id
	`
	var rows []domain.RankingRow
	if err := r.db.Select(&rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

// ResetAll wipes all history and zeroes the denormalized bests
func (r *StatsRepo) ResetAll() error {
	if _, err := r.db.Exec(`UPDATE users SET best_test_score = 0, best_test_time = NULL`); err != nil {
		return err
	}
	if _, err := r.db.Exec(`DELETE FROM test_results`); err != nil {
		return err
	}
	_, err := r.db.Exec(`DELETE FROM game_stats`)
	return err
}

// DeleteUser removes every stats record of one user
func (r *StatsRepo) DeleteUser(userID int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM test_results WHERE user_id = ?`, userID)
	if err != nil {
		return false, err
	}
	testRows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	res, err = r.db.Exec(`DELETE FROM game_stats WHERE user_id = ?`, userID)
	if err != nil {
		return false, err
	}
	gameRows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return testRows > 0 || gameRows > 0, nil
}
