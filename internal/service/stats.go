package service

import (
	"lexibot/internal/domain"
	"lexibot/internal/repository"

	"go.uber.org/zap"
)

// StatsService exposes read and maintenance operations over statistics
type StatsService struct {
	stats  repository.StatsRepository
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(stats repository.StatsRepository, logger *zap.Logger) *StatsService {
	return &StatsService{stats: stats, logger: logger}
}

// UserStats returns one user's aggregate statistics
func (s *StatsService) UserStats(userID int64) (*domain.UserStats, error) {
	return s.stats.UserStats(userID)
}

// CollectionStats returns the per-collection game breakdown
func (s *StatsService) CollectionStats(userID int64) (map[string][]domain.GameStats, error) {
	return s.stats.CollectionStats(userID)
}

// Reset wipes all accumulated statistics for every user
func (s *StatsService) Reset() error {
	if err := s.stats.ResetAll(); err != nil {
		return err
	}
	s.logger.Info("All statistics reset")
	return nil
}
