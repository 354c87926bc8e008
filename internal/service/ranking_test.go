package service

import (
	"testing"

	"lexibot/internal/domain"
	"lexibot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingService_Score(t *testing.T) {
	tests := []struct {
		name string
		row  domain.RankingRow
		want float64
	}{
		{
			name: "empty user scores zero",
			row:  domain.RankingRow{},
			want: 0,
		},
		{
			name: "test answers at full weight",
			row:  domain.RankingRow{TotalCorrect: 10},
			want: 10,
		},
		{
			name: "game answers at half weight",
			row:  domain.RankingRow{GameCorrect: 10},
			want: 5,
		},
		{
			name: "recall time of four seconds adds twenty five",
			row:  domain.RankingRow{BestRecallTime: testutil.FloatPtr(4.0)},
			want: 25,
		},
		{
			name: "all components combined",
			row: domain.RankingRow{
				TotalCorrect:   20,
				GameCorrect:    6,
				BestTestScore:  9,
				BestRecallTime: testutil.FloatPtr(4.0),
			},
			want: 20 + 3 + 9 + 25,
		},
		{
			name: "zero recall time yields no bonus",
			row:  domain.RankingRow{BestRecallTime: testutil.FloatPtr(0)},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, score(tt.row), 1e-9)
		})
	}
}

func TestRankingService_Ranking(t *testing.T) {
	stats := new(testutil.MockStatsRepository)
	stats.On("RankingRows").Return([]domain.RankingRow{
		{UserID: 1, FirstName: "Alice", TotalCorrect: 5},
		{UserID: 2, FirstName: "Bob", TotalCorrect: 20},
		{UserID: 3, FirstName: "Carol", TotalCorrect: 5},
	}, nil)

	svc := NewRankingService(stats, testutil.NewTestLogger())
	ranked, err := svc.Ranking()
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, int64(2), ranked[0].UserID)
	assert.Equal(t, 1, ranked[0].Rank)
	// equal scores keep enumeration order
	assert.Equal(t, int64(1), ranked[1].UserID)
	assert.Equal(t, int64(3), ranked[2].UserID)
	assert.Equal(t, 3, ranked[2].Rank)
	stats.AssertExpectations(t)
}

func TestRankingService_BetterTimeScoresHigher(t *testing.T) {
	stats := new(testutil.MockStatsRepository)
	stats.On("RankingRows").Return([]domain.RankingRow{
		{UserID: 1, FirstName: "Slow", BestRecallTime: testutil.FloatPtr(10.0)},
		{UserID: 2, FirstName: "Fast", BestRecallTime: testutil.FloatPtr(2.0)},
	}, nil)

	svc := NewRankingService(stats, testutil.NewTestLogger())
	ranked, err := svc.Ranking()
	require.NoError(t, err)
	assert.Equal(t, int64(2), ranked[0].UserID)
	assert.Greater(t, ranked[0].OverallScore, ranked[1].OverallScore)
}

func TestRankingService_Position(t *testing.T) {
	stats := new(testutil.MockStatsRepository)
	stats.On("RankingRows").Return([]domain.RankingRow{
		{UserID: 1, FirstName: "Alice", TotalCorrect: 5},
		{UserID: 2, FirstName: "Bob", TotalCorrect: 20},
	}, nil)

	svc := NewRankingService(stats, testutil.NewTestLogger())

	pos, err := svc.Position(1)
	require.NoError(t, err)
	assert.Equal(t, 2, pos.Rank)

	_, err = svc.Position(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
