package repository

import (
	"lexibot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(userID int64, name, firstName, lastName, username string) error
	Get(userID int64) (*domain.User, error)
	UpdateLastActive(userID int64) error
	SetMuted(userID int64, muted bool) error
	Delete(userID int64) (bool, error)
	All() ([]domain.User, error)
}

// StatsRepository defines gameplay and test statistics operations
type StatsRepository interface {
	RecordTestResult(userID int64, score, total int, collection string) error
	UpdateBestTestTime(userID int64, seconds float64) error
	RecordGameEvent(ev domain.GameEvent) error
	UserStats(userID int64) (*domain.UserStats, error)
	CollectionStats(userID int64) (map[string][]domain.GameStats, error)
	RankingRows() ([]domain.RankingRow, error)
	ResetAll() error
	DeleteUser(userID int64) (bool, error)
}

// BanRepository defines the banned-user set
type BanRepository interface {
	Ban(userID int64) error
	Unban(userID int64) (bool, error)
	IsBanned(userID int64) (bool, error)
	All() ([]int64, error)
}
