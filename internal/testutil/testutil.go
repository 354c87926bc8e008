package testutil

import (
	"lexibot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger returns a silent logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// SampleWords is a small fixture collection
func SampleWords() []domain.WordPair {
	return []domain.WordPair{
		{En: "cat", Ru: "кошка"},
		{En: "dog", Ru: "собака"},
		{En: "house", Ru: "дом"},
		{En: "water", Ru: "вода"},
		{En: "book", Ru: "книга"},
	}
}

// FloatPtr returns a pointer to v
func FloatPtr(v float64) *float64 {
	return &v
}
