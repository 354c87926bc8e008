package service

import (
	"fmt"
	"math/rand"
	"time"

	"lexibot/internal/domain"
	"lexibot/internal/repository"

	"go.uber.org/zap"
)

// TestService runs knowledge tests over the user's active collection
type TestService struct {
	stats     repository.StatsRepository
	questions int
	rand      *rand.Rand
	logger    *zap.Logger
}

// NewTestService creates a new test service. questions caps how many
// words one test asks about.
func NewTestService(stats repository.StatsRepository, questions int, logger *zap.Logger) *TestService {
	return &TestService{
		stats:     stats,
		questions: questions,
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:    logger,
	}
}

// NewSession samples the question words and starts the clock. Tests
// need at least two words to build meaningful options.
func (s *TestService) NewSession(userID int64, collection string, words []domain.WordPair) (*domain.TestSession, error) {
	if len(words) < 2 {
		return nil, fmt.Errorf("collection %s has too few words for a test: %w", collection, domain.ErrLimitExceeded)
	}

	n := s.questions
	if len(words) < n {
		n = len(words)
	}

	sampled := make([]domain.WordPair, 0, n)
	for _, i := range s.rand.Perm(len(words))[:n] {
		sampled = append(sampled, words[i])
	}

	return &domain.TestSession{
		UserID:     userID,
		Collection: collection,
		Words:      sampled,
		AllWords:   words,
		StartedAt:  time.Now(),
	}, nil
}

// NextQuestion prepares the options of the current question
func (s *TestService) NextQuestion(sess *domain.TestSession, games *GameService) (domain.WordPair, []string) {
	word := sess.Current()
	sess.Options = games.QuizOptions(sess.AllWords, word)
	return word, sess.Options
}

// Answer grades the reply to the current question and advances.
// Returns whether the reply was correct.
func (s *TestService) Answer(sess *domain.TestSession, reply string) bool {
	correct := reply == sess.Current().Ru
	if correct {
		sess.Correct++
	}
	sess.Index++
	return correct
}

// Finish persists the result: the score row always, the duration only
// when every question was answered correctly, matching how personal
// bests are displayed.
func (s *TestService) Finish(sess *domain.TestSession) (score, total int, elapsed float64, err error) {
	score = sess.Correct
	total = len(sess.Words)
	elapsed = time.Since(sess.StartedAt).Seconds()

	if err := s.stats.RecordTestResult(sess.UserID, score, total, sess.Collection); err != nil {
		return score, total, elapsed, err
	}
	if score == total {
		if err := s.stats.UpdateBestTestTime(sess.UserID, elapsed); err != nil {
			return score, total, elapsed, err
		}
	}
	s.logger.Info("Test finished",
		zap.Int64("user_id", sess.UserID),
		zap.Int("score", score),
		zap.Int("total", total),
	)
	return score, total, elapsed, nil
}
