package testutil

import (
	"lexibot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(userID int64, name, firstName, lastName, username string) error {
	args := m.Called(userID, name, firstName, lastName, username)
	return args.Error(0)
}

func (m *MockUserRepository) Get(userID int64) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastActive(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) SetMuted(userID int64, muted bool) error {
	args := m.Called(userID, muted)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) All() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockStatsRepository is a mock of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) RecordTestResult(userID int64, score, total int, collection string) error {
	args := m.Called(userID, score, total, collection)
	return args.Error(0)
}

func (m *MockStatsRepository) UpdateBestTestTime(userID int64, seconds float64) error {
	args := m.Called(userID, seconds)
	return args.Error(0)
}

func (m *MockStatsRepository) RecordGameEvent(ev domain.GameEvent) error {
	args := m.Called(ev)
	return args.Error(0)
}

func (m *MockStatsRepository) UserStats(userID int64) (*domain.UserStats, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockStatsRepository) CollectionStats(userID int64) (map[string][]domain.GameStats, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.GameStats), args.Error(1)
}

func (m *MockStatsRepository) RankingRows() ([]domain.RankingRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankingRow), args.Error(1)
}

func (m *MockStatsRepository) ResetAll() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockStatsRepository) DeleteUser(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

// MockBanRepository is a mock of repository.BanRepository
type MockBanRepository struct {
	mock.Mock
}

func (m *MockBanRepository) Ban(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockBanRepository) Unban(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBanRepository) IsBanned(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBanRepository) All() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
