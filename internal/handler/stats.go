package handler

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"lexibot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func sortedKeys(m map[string][]domain.GameStats) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var gameTitles = map[string]string{
	domain.GameChooseTranslation: "🤔 Выбери перевод",
	domain.GameFindMissingLetter: "🔍 Найди букву",
	domain.GameBuildWord:         "🧩 Собери слово",
	domain.GameGuessWord:         "🎧 Угадай слово",
	domain.GameRecallTyping:      "📝 Ввод по памяти",
}

// showStats sends the user their personal statistics
func (h *Handler) showStats(c tele.Context) error {
	userID := c.Sender().ID

	stats, err := h.stats.UserStats(userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Send("Статистики пока нет. Сыграй в игры или пройди тест!", mainMenuMarkup())
		}
		h.logger.Error("Failed to load user stats", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Статистика: %s\n\n", stats.DisplayName)
	fmt.Fprintf(&b, "Правильных ответов в тестах: %d\n", stats.TotalCorrectAnswers)
	fmt.Fprintf(&b, "Лучший результат теста: %d\n", stats.BestTestScore)
	if stats.BestTestTime != nil {
		fmt.Fprintf(&b, "Лучшее время теста: %.1f сек\n", *stats.BestTestTime)
	}

	if len(stats.Games) > 0 {
		b.WriteString("\n🎮 Игры:\n")
		for _, g := range stats.Games {
			title, ok := gameTitles[g.GameType]
			if !ok {
				title = g.GameType
			}
			fmt.Fprintf(&b, "%s: %d/%d", title, g.Correct, g.Played)
			if g.BestTime != nil {
				fmt.Fprintf(&b, " (лучшее время %.1f сек)", *g.BestTime)
			}
			b.WriteString("\n")
		}
	}

	if byCollection, err := h.stats.CollectionStats(userID); err == nil && len(byCollection) > 1 {
		b.WriteString("\n📚 По наборам:\n")
		for _, name := range sortedKeys(byCollection) {
			played, correct := 0, 0
			for _, g := range byCollection[name] {
				played += g.Played
				correct += g.Correct
			}
			fmt.Fprintf(&b, "%s: %d/%d\n", name, correct, played)
		}
	}

	return c.Send(b.String(), mainMenuMarkup())
}

// showRanking sends the leaderboard with the user's own position
func (h *Handler) showRanking(c tele.Context) error {
	userID := c.Sender().ID

	top, err := h.ranking.Top(10)
	if err != nil {
		h.logger.Error("Failed to build ranking", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}
	if len(top) == 0 {
		return c.Send("В рейтинге пока никого нет.", mainMenuMarkup())
	}

	var b strings.Builder
	b.WriteString("🏆 Таблица лидеров:\n\n")
	for _, r := range top {
		medal := fmt.Sprintf("%d.", r.Rank)
		switch r.Rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}
		fmt.Fprintf(&b, "%s %s — %.1f\n", medal, r.DisplayName, r.OverallScore)
	}

	if pos, err := h.ranking.Position(userID); err == nil && pos.Rank > len(top) {
		fmt.Fprintf(&b, "\nТвоё место: %d (%.1f)", pos.Rank, pos.OverallScore)
	}

	return c.Send(b.String(), mainMenuMarkup())
}
