package domain

import "time"

// TestSession tracks one running knowledge test
type TestSession struct {
	UserID      int64
	Collection  string
	Words       []WordPair // sampled questions, in ask order
	AllWords    []WordPair // full pool, used for distractors
	Index       int
	Correct     int
	Options     []string // options of the current question
	StartedAt   time.Time
}

// Done reports whether every sampled question has been answered
func (s *TestSession) Done() bool {
	return s.Index >= len(s.Words)
}

// Current returns the question being asked
func (s *TestSession) Current() WordPair {
	return s.Words[s.Index]
}
