package service

import (
	"lexibot/internal/repository"
	"lexibot/internal/wordstore"

	"go.uber.org/zap"
)

// ModerationService covers admin actions over users
type ModerationService struct {
	users    repository.UserRepository
	stats    repository.StatsRepository
	bans     repository.BanRepository
	registry *wordstore.Registry
	logger   *zap.Logger
}

// NewModerationService creates a new moderation service
func NewModerationService(
	users repository.UserRepository,
	stats repository.StatsRepository,
	bans repository.BanRepository,
	registry *wordstore.Registry,
	logger *zap.Logger,
) *ModerationService {
	return &ModerationService{
		users:    users,
		stats:    stats,
		bans:     bans,
		registry: registry,
		logger:   logger,
	}
}

// Ban blocks a user from interacting with the bot
func (s *ModerationService) Ban(userID int64) error {
	if err := s.bans.Ban(userID); err != nil {
		return err
	}
	s.logger.Info("User banned", zap.Int64("user_id", userID))
	return nil
}

// Unban lifts a ban, reporting whether one existed
func (s *ModerationService) Unban(userID int64) (bool, error) {
	return s.bans.Unban(userID)
}

// IsBanned checks the banned set
func (s *ModerationService) IsBanned(userID int64) (bool, error) {
	return s.bans.IsBanned(userID)
}

// DeleteUser erases a user completely: the profile row, all recorded
// statistics and the collection binding. The personal set file itself
// is kept so its words can be recovered.
func (s *ModerationService) DeleteUser(userID int64) (bool, error) {
	existed, err := s.users.Delete(userID)
	if err != nil {
		return false, err
	}
	if _, err := s.stats.DeleteUser(userID); err != nil {
		return existed, err
	}
	if err := s.registry.Remove(userID); err != nil {
		return existed, err
	}
	if existed {
		s.logger.Info("User deleted", zap.Int64("user_id", userID))
	}
	return existed, nil
}
