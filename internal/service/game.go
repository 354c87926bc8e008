package service

import (
	"math/rand"
	"strings"
	"time"

	"lexibot/internal/domain"
	"lexibot/internal/repository"

	"go.uber.org/zap"
)

const quizOptionCount = 4

// GameService prepares game rounds and records their outcomes
type GameService struct {
	stats  repository.StatsRepository
	rand   *rand.Rand
	logger *zap.Logger
}

// NewGameService creates a new game service
func NewGameService(stats repository.StatsRepository, logger *zap.Logger) *GameService {
	return &GameService{
		stats:  stats,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
}

// RandomWord picks a uniformly random pair from the pool
func (s *GameService) RandomWord(words []domain.WordPair) (domain.WordPair, bool) {
	if len(words) == 0 {
		return domain.WordPair{}, false
	}
	return words[s.rand.Intn(len(words))], true
}

// QuizOptions builds a shuffled option list: the correct translation
// plus up to three distinct distractors drawn from the pool.
func (s *GameService) QuizOptions(words []domain.WordPair, answer domain.WordPair) []string {
	options := []string{answer.Ru}
	seen := map[string]struct{}{answer.Ru: {}}

	perm := s.rand.Perm(len(words))
	for _, i := range perm {
		if len(options) == quizOptionCount {
			break
		}
		ru := words[i].Ru
		if _, ok := seen[ru]; ok {
			continue
		}
		seen[ru] = struct{}{}
		options = append(options, ru)
	}

	s.rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// ShuffleWord returns the word's letters in a random order that is
// guaranteed to differ from the original for words of two or more
// distinct letters.
func (s *GameService) ShuffleWord(word string) string {
	runes := []rune(word)
	if len(runes) < 2 {
		return word
	}
	shuffled := make([]rune, len(runes))
	for attempt := 0; attempt < 10; attempt++ {
		copy(shuffled, runes)
		s.rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if string(shuffled) != string(runes) {
			break
		}
	}
	return string(shuffled)
}

// MissingLetter blanks one random letter out of the word. Words
// shorter than two letters cannot host this game.
func (s *GameService) MissingLetter(word string) (masked, letter string, ok bool) {
	runes := []rune(word)
	if len(runes) < 2 {
		return "", "", false
	}
	idx := s.rand.Intn(len(runes))
	letter = string(runes[idx])
	runes[idx] = '_'
	return string(runes), letter, true
}

// CheckAnswer compares a typed answer against the expected text,
// ignoring case and surrounding whitespace.
func (s *GameService) CheckAnswer(given, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(expected))
}

// Record persists one finished round. Recording failures are logged
// and swallowed so a database hiccup never interrupts play.
func (s *GameService) Record(ev domain.GameEvent) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}
	if err := s.stats.RecordGameEvent(ev); err != nil {
		s.logger.Error("Failed to record game event",
			zap.Int64("user_id", ev.UserID),
			zap.String("game_type", ev.GameType),
			zap.Error(err),
		)
	}
}
