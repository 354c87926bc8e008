package sqlite

import (
	"testing"
	"time"

	"lexibot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepo_RecordTestResult(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepo(db)

	mock.ExpectExec("INSERT INTO test_results").
		WithArgs(int64(42), 8, 10, "all_words.json", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE users SET best_test_score = MAX").
		WithArgs(8, sqlmock.AnyArg(), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecordTestResult(42, 8, 10, "all_words.json")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_UpdateBestTestTime(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepo(db)

	mock.ExpectExec("UPDATE users\\s+SET best_test_time = CASE").
		WithArgs(31.5, 31.5, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateBestTestTime(42, 31.5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_RecordGameEvent_RecallTypingKeepsBestTime(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepo(db)

	taken := 3.2
	ev := domain.GameEvent{
		UserID:     42,
		GameType:   domain.GameRecallTyping,
		Correct:    true,
		TimeTaken:  &taken,
		Collection: "all_words.json",
		OccurredAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO game_stats").
		WithArgs(int64(42), domain.GameRecallTyping, "all_words.json", 1, 0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE users SET last_active").
		WithArgs(sqlmock.AnyArg(), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RecordGameEvent(ev))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_RecordGameEvent_OtherGamesDropBestTime(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepo(db)

	ev := domain.GameEvent{
		UserID:     42,
		GameType:   domain.GameChooseTranslation,
		Correct:    false,
		Collection: "all_words.json",
		OccurredAt: time.Now(),
	}

	// untimed game types carry no best_time argument at all
	mock.ExpectExec("INSERT INTO game_stats").
		WithArgs(int64(42), domain.GameChooseTranslation, "all_words.json", 0, 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE users SET last_active").
		WithArgs(sqlmock.AnyArg(), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RecordGameEvent(ev))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_UserStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepo(db)

	now := time.Now()
	userRows := sqlmock.NewRows([]string{
		"user_id", "name", "first_name", "last_name", "username",
		"best_test_score", "best_test_time", "muted", "registered_at", "last_active",
	}).AddRow(int64(42), "Alice", "Alice", "", "alice", 9, 40.0, false, now, now)

	mock.ExpectQuery("SELECT \\* FROM users WHERE user_id = \\?").
		WithArgs(int64(42)).
		WillReturnRows(userRows)
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(score\\), 0\\) FROM test_results").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(17))
	mock.ExpectQuery("SELECT game_type, '' AS collection").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{
			"game_type", "collection", "played", "correct", "incorrect", "best_time",
		}).AddRow(domain.GameRecallTyping, "", 5, 4, 1, 3.2))

	stats, err := repo.UserStats(42)
	require.NoError(t, err)
	assert.Equal(t, "Alice", stats.DisplayName)
	assert.Equal(t, 17, stats.TotalCorrectAnswers)
	assert.Equal(t, 9, stats.BestTestScore)
	require.Len(t, stats.Games, 1)
	require.NotNil(t, stats.Games[0].BestTime)
	assert.Equal(t, 3.2, *stats.Games[0].BestTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_UserStatsUnknown(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepo(db)

	mock.ExpectQuery("SELECT \\* FROM users WHERE user_id = \\?").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := repo.UserStats(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_RankingRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepo(db)

	rows := sqlmock.NewRows([]string{
		"user_id", "name", "first_name", "last_name", "username",
		"best_test_score", "last_active", "total_correct", "game_correct", "best_recall_time",
	}).
		AddRow(int64(1), "Alice", "Alice", "", "alice", 9, "2024-03-01 10:00:00", 20, 6, 4.0).
		AddRow(int64(2), "Bob", "Bob", "", "bob", 0, "2024-03-02 10:00:00", 0, 0, nil)

	mock.ExpectQuery("SELECT u.user_id, u.name").WillReturnRows(rows)

	ranking, err := repo.RankingRows()
	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, 20, ranking[0].TotalCorrect)
	assert.Equal(t, 6, ranking[0].GameCorrect)
	require.NotNil(t, ranking[0].BestRecallTime)
	assert.Equal(t, 4.0, *ranking[0].BestRecallTime)
	assert.Nil(t, ranking[1].BestRecallTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_ResetAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepo(db)

	mock.ExpectExec("UPDATE users SET best_test_score = 0, best_test_time = NULL").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM test_results").
		WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectExec("DELETE FROM game_stats").
		WillReturnResult(sqlmock.NewResult(0, 10))

	assert.NoError(t, repo.ResetAll())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_DeleteUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepo(db)

	mock.ExpectExec("DELETE FROM test_results WHERE user_id = \\?").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM game_stats WHERE user_id = \\?").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.DeleteUser(42)
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
