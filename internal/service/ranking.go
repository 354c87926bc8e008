package service

import (
	"math"
	"sort"

	"lexibot/internal/domain"
	"lexibot/internal/repository"

	"go.uber.org/zap"
)

// Weights of the composite activity score
const (
	gameCorrectWeight = 0.5
	recallTimeBonus   = 100.0
)

// RankingService turns raw per-user statistics into a leaderboard
type RankingService struct {
	stats  repository.StatsRepository
	logger *zap.Logger
}

// NewRankingService creates a new ranking service
func NewRankingService(stats repository.StatsRepository, logger *zap.Logger) *RankingService {
	return &RankingService{stats: stats, logger: logger}
}

// score computes the composite activity score of one user: correct
// test answers at full weight, correct game answers at half weight,
// the best single-test score, plus a speed bonus that grows as the
// best recall time shrinks.
func score(row domain.RankingRow) float64 {
	s := float64(row.TotalCorrect) +
		gameCorrectWeight*float64(row.GameCorrect) +
		float64(row.BestTestScore)
	if row.BestRecallTime != nil {
		t := *row.BestRecallTime
		if t > 0 && !math.IsInf(t, 0) && !math.IsNaN(t) {
			s += recallTimeBonus / t
		}
	}
	return s
}

// displayName mirrors domain.User.DisplayName for ranking rows
func displayName(row domain.RankingRow) string {
	switch {
	case row.FirstName != "" && row.LastName != "":
		return row.FirstName + " " + row.LastName
	case row.FirstName != "":
		return row.FirstName
	case row.Name != "":
		return row.Name
	case row.Username != "":
		return "@" + row.Username
	}
	return ""
}

// Ranking returns every user ordered by descending score with 1-based
// ranks. Users with equal scores keep their enumeration order.
func (s *RankingService) Ranking() ([]domain.RankedUser, error) {
	rows, err := s.stats.RankingRows()
	if err != nil {
		return nil, err
	}

	ranked := make([]domain.RankedUser, 0, len(rows))
	for _, row := range rows {
		ranked = append(ranked, domain.RankedUser{
			UserID:        row.UserID,
			DisplayName:   displayName(row),
			OverallScore:  score(row),
			TotalCorrect:  row.TotalCorrect,
			BestTestScore: row.BestTestScore,
			LastActive:    row.LastActive,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallScore > ranked[j].OverallScore
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}

// Top returns the first n leaderboard entries
func (s *RankingService) Top(n int) ([]domain.RankedUser, error) {
	ranked, err := s.Ranking()
	if err != nil {
		return nil, err
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// Position finds one user's leaderboard entry
func (s *RankingService) Position(userID int64) (*domain.RankedUser, error) {
	ranked, err := s.Ranking()
	if err != nil {
		return nil, err
	}
	for i := range ranked {
		if ranked[i].UserID == userID {
			return &ranked[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
