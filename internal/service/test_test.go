package service

import (
	"testing"

	"lexibot/internal/domain"
	"lexibot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTestService_NewSession(t *testing.T) {
	svc := NewTestService(new(testutil.MockStatsRepository), 3, testutil.NewTestLogger())
	words := testutil.SampleWords()

	sess, err := svc.NewSession(42, "all_words.json", words)
	require.NoError(t, err)
	assert.Len(t, sess.Words, 3)
	assert.Equal(t, words, sess.AllWords)
	assert.False(t, sess.Done())
}

func TestTestService_NewSessionShortPool(t *testing.T) {
	svc := NewTestService(new(testutil.MockStatsRepository), 10, testutil.NewTestLogger())
	words := testutil.SampleWords()

	sess, err := svc.NewSession(42, "all_words.json", words)
	require.NoError(t, err)
	assert.Len(t, sess.Words, len(words))
}

func TestTestService_NewSessionTooFewWords(t *testing.T) {
	svc := NewTestService(new(testutil.MockStatsRepository), 10, testutil.NewTestLogger())

	_, err := svc.NewSession(42, "tiny.json", []domain.WordPair{{En: "cat", Ru: "кошка"}})
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)
}

func TestTestService_AnswerAdvances(t *testing.T) {
	svc := NewTestService(new(testutil.MockStatsRepository), 2, testutil.NewTestLogger())
	sess, err := svc.NewSession(42, "all_words.json", testutil.SampleWords())
	require.NoError(t, err)

	first := sess.Current()
	assert.True(t, svc.Answer(sess, first.Ru))
	assert.False(t, svc.Answer(sess, "wrong"))
	assert.True(t, sess.Done())
	assert.Equal(t, 1, sess.Correct)
}

func TestTestService_FinishPerfectScoreRecordsTime(t *testing.T) {
	stats := new(testutil.MockStatsRepository)
	stats.On("RecordTestResult", int64(42), 2, 2, "all_words.json").Return(nil)
	stats.On("UpdateBestTestTime", int64(42), mock.AnythingOfType("float64")).Return(nil)

	svc := NewTestService(stats, 2, testutil.NewTestLogger())
	sess, err := svc.NewSession(42, "all_words.json", testutil.SampleWords())
	require.NoError(t, err)

	svc.Answer(sess, sess.Current().Ru)
	svc.Answer(sess, sess.Current().Ru)

	score, total, elapsed, err := svc.Finish(sess)
	require.NoError(t, err)
	assert.Equal(t, 2, score)
	assert.Equal(t, 2, total)
	assert.GreaterOrEqual(t, elapsed, 0.0)
	stats.AssertExpectations(t)
}

func TestTestService_FinishImperfectScoreSkipsTime(t *testing.T) {
	stats := new(testutil.MockStatsRepository)
	stats.On("RecordTestResult", int64(42), 1, 2, "all_words.json").Return(nil)

	svc := NewTestService(stats, 2, testutil.NewTestLogger())
	sess, err := svc.NewSession(42, "all_words.json", testutil.SampleWords())
	require.NoError(t, err)

	svc.Answer(sess, sess.Current().Ru)
	svc.Answer(sess, "wrong")

	_, _, _, err = svc.Finish(sess)
	require.NoError(t, err)
	stats.AssertNotCalled(t, "UpdateBestTestTime", mock.Anything, mock.Anything)
	stats.AssertExpectations(t)
}
