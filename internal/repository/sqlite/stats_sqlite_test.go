package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lexibot/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteDB opens an in-memory database with the real schema so the
// upsert and merge SQL actually executes.
func newSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	schema, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "000001_init.up.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)
	return db
}

func gameRow(t *testing.T, db *sqlx.DB, userID int64, gameType string) domain.GameStats {
	t.Helper()
	var row domain.GameStats
	err := db.Get(&row,
		`SELECT game_type, collection, played, correct, incorrect, best_time
		 FROM game_stats WHERE user_id = ? AND game_type = ?`,
		userID, gameType)
	require.NoError(t, err)
	return row
}

func TestStatsRepo_RecallBestTimeMinMerges(t *testing.T) {
	db := newSQLiteDB(t)
	require.NoError(t, NewUserRepo(db).Create(42, "Alice", "Alice", "", "alice"))
	repo := NewStatsRepo(db)

	first, second := 3.2, 5.0
	ev := domain.GameEvent{
		UserID:     42,
		GameType:   domain.GameRecallTyping,
		Correct:    true,
		TimeTaken:  &first,
		Collection: "all_words.json",
		OccurredAt: time.Now(),
	}
	require.NoError(t, repo.RecordGameEvent(ev))

	// a slower round must not displace the best time
	ev.TimeTaken = &second
	require.NoError(t, repo.RecordGameEvent(ev))

	row := gameRow(t, db, 42, domain.GameRecallTyping)
	assert.Equal(t, 2, row.Played)
	assert.Equal(t, 2, row.Correct)
	assert.Equal(t, 0, row.Incorrect)
	require.NotNil(t, row.BestTime)
	assert.Equal(t, 3.2, *row.BestTime)
}

func TestStatsRepo_UntimedGameClearsBestTime(t *testing.T) {
	db := newSQLiteDB(t)
	require.NoError(t, NewUserRepo(db).Create(42, "Alice", "Alice", "", "alice"))
	repo := NewStatsRepo(db)

	_, err := db.Exec(
		`INSERT INTO game_stats (user_id, game_type, collection, played, correct, incorrect, best_time)
		 VALUES (42, ?, 'all_words.json', 1, 1, 0, 9.9)`,
		domain.GameBuildWord)
	require.NoError(t, err)

	require.NoError(t, repo.RecordGameEvent(domain.GameEvent{
		UserID:     42,
		GameType:   domain.GameBuildWord,
		Correct:    false,
		Collection: "all_words.json",
		OccurredAt: time.Now(),
	}))

	row := gameRow(t, db, 42, domain.GameBuildWord)
	assert.Equal(t, 2, row.Played)
	assert.Equal(t, 1, row.Correct)
	assert.Equal(t, 1, row.Incorrect)
	assert.Nil(t, row.BestTime)
}

func TestStatsRepo_RecallMissCarriesNoTime(t *testing.T) {
	db := newSQLiteDB(t)
	require.NoError(t, NewUserRepo(db).Create(42, "Alice", "Alice", "", "alice"))
	repo := NewStatsRepo(db)

	taken := 3.2
	require.NoError(t, repo.RecordGameEvent(domain.GameEvent{
		UserID:     42,
		GameType:   domain.GameRecallTyping,
		Correct:    true,
		TimeTaken:  &taken,
		Collection: "all_words.json",
		OccurredAt: time.Now(),
	}))
	require.NoError(t, repo.RecordGameEvent(domain.GameEvent{
		UserID:     42,
		GameType:   domain.GameRecallTyping,
		Correct:    false,
		Collection: "all_words.json",
		OccurredAt: time.Now(),
	}))

	row := gameRow(t, db, 42, domain.GameRecallTyping)
	assert.Equal(t, row.Correct+row.Incorrect, row.Played)
	require.NotNil(t, row.BestTime)
	assert.Equal(t, 3.2, *row.BestTime)
}
