package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"lexibot/internal/domain"
	"lexibot/internal/export"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const adminOnly = "Эта команда только для администратора."

// handleAdminAdd handles /add <english> <russian>
func (h *Handler) handleAdminAdd(c tele.Context) error {
	if !h.isAdmin(c) {
		return c.Send(adminOnly)
	}

	args := c.Args()
	if len(args) < 2 {
		return c.Send("Использование: /add слово перевод")
	}
	en := args[0]
	ru := strings.Join(args[1:], " ")

	if err := h.wordSets.AddToShared(en, ru); err != nil {
		if errors.Is(err, domain.ErrBadWord) {
			return c.Send("Это слово добавить нельзя 🚫")
		}
		h.logger.Error("Failed to add shared word", zap.Error(err))
		return c.Send("Не удалось сохранить слово.")
	}
	return c.Send(fmt.Sprintf("✅ Добавлено в общий набор: %s — %s", en, ru))
}

// handleAdminDel handles /del <english>
func (h *Handler) handleAdminDel(c tele.Context) error {
	if !h.isAdmin(c) {
		return c.Send(adminOnly)
	}

	args := c.Args()
	if len(args) != 1 {
		return c.Send("Использование: /del слово")
	}

	removed, err := h.wordSets.DeleteFromShared(args[0])
	if err != nil {
		h.logger.Error("Failed to delete shared word", zap.Error(err))
		return c.Send("Не удалось удалить слово.")
	}
	if !removed {
		return c.Send(fmt.Sprintf("Слова «%s» в общем наборе нет.", args[0]))
	}
	return c.Send(fmt.Sprintf("🗑 Удалено из общего набора: %s", args[0]))
}

// handleAdminList handles /list, printing all registered users
func (h *Handler) handleAdminList(c tele.Context) error {
	if !h.isAdmin(c) {
		return c.Send(adminOnly)
	}

	users, err := h.users.All()
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err))
		return c.Send("Не удалось получить список пользователей.")
	}
	if len(users) == 0 {
		return c.Send("Пользователей пока нет.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👥 Пользователи (%d):\n\n", len(users))
	for _, u := range users {
		fmt.Fprintf(&b, "%d — %s", u.UserID, u.DisplayName())
		if banned, err := h.moderation.IsBanned(u.UserID); err == nil && banned {
			b.WriteString(" 🚫")
		}
		b.WriteString("\n")
	}
	return c.Send(b.String())
}

// handleAdminStats handles /stats, printing the full leaderboard
func (h *Handler) handleAdminStats(c tele.Context) error {
	if !h.isAdmin(c) {
		return c.Send(adminOnly)
	}

	ranked, err := h.ranking.Ranking()
	if err != nil {
		h.logger.Error("Failed to build ranking", zap.Error(err))
		return c.Send("Не удалось построить рейтинг.")
	}
	if len(ranked) == 0 {
		return c.Send("Статистики пока нет.")
	}

	var b strings.Builder
	b.WriteString("📊 Полный рейтинг:\n\n")
	for _, r := range ranked {
		fmt.Fprintf(&b, "%d. %s — %.1f (тесты: %d, лучший: %d)\n",
			r.Rank, r.DisplayName, r.OverallScore, r.TotalCorrect, r.BestTestScore)
	}
	return c.Send(b.String())
}

func parseUserIDArg(c tele.Context) (int64, error) {
	args := c.Args()
	if len(args) != 1 {
		return 0, fmt.Errorf("expected one argument")
	}
	return strconv.ParseInt(args[0], 10, 64)
}

// handleAdminDelUser handles /deluser <id>
func (h *Handler) handleAdminDelUser(c tele.Context) error {
	if !h.isAdmin(c) {
		return c.Send(adminOnly)
	}

	userID, err := parseUserIDArg(c)
	if err != nil {
		return c.Send("Использование: /deluser <id>")
	}

	existed, err := h.moderation.DeleteUser(userID)
	if err != nil {
		h.logger.Error("Failed to delete user", zap.Error(err), zap.Int64("target_id", userID))
		return c.Send("Не удалось удалить пользователя.")
	}
	if !existed {
		return c.Send("Такого пользователя нет.")
	}
	return c.Send(fmt.Sprintf("🗑 Пользователь %d удалён.", userID))
}

// handleAdminBan handles /ban <id>
func (h *Handler) handleAdminBan(c tele.Context) error {
	if !h.isAdmin(c) {
		return c.Send(adminOnly)
	}

	userID, err := parseUserIDArg(c)
	if err != nil {
		return c.Send("Использование: /ban <id>")
	}

	if err := h.moderation.Ban(userID); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Send("Пользователь уже заблокирован.")
		}
		h.logger.Error("Failed to ban user", zap.Error(err), zap.Int64("target_id", userID))
		return c.Send("Не удалось заблокировать пользователя.")
	}
	return c.Send(fmt.Sprintf("🚫 Пользователь %d заблокирован.", userID))
}

// handleAdminUnban handles /unban <id>
func (h *Handler) handleAdminUnban(c tele.Context) error {
	if !h.isAdmin(c) {
		return c.Send(adminOnly)
	}

	userID, err := parseUserIDArg(c)
	if err != nil {
		return c.Send("Использование: /unban <id>")
	}

	existed, err := h.moderation.Unban(userID)
	if err != nil {
		h.logger.Error("Failed to unban user", zap.Error(err), zap.Int64("target_id", userID))
		return c.Send("Не удалось разблокировать пользователя.")
	}
	if !existed {
		return c.Send("Этот пользователь не был заблокирован.")
	}
	return c.Send(fmt.Sprintf("✅ Пользователь %d разблокирован.", userID))
}

// handleAdminExport handles /export, sending the shared set as xlsx
func (h *Handler) handleAdminExport(c tele.Context) error {
	if !h.isAdmin(c) {
		return c.Send(adminOnly)
	}

	words, err := h.wordSets.SharedWords()
	if err != nil {
		h.logger.Error("Failed to load shared words", zap.Error(err))
		return c.Send("Не удалось выгрузить набор.")
	}

	buf, err := export.ExportWorkbook(words)
	if err != nil {
		h.logger.Error("Failed to build workbook", zap.Error(err))
		return c.Send("Не удалось выгрузить набор.")
	}

	doc := &tele.Document{
		File:     tele.FromReader(buf),
		FileName: "all_words.xlsx",
	}
	return c.Send(doc)
}

// handleAdminImport handles /import, prompting for a file
func (h *Handler) handleAdminImport(c tele.Context) error {
	if !h.isAdmin(c) {
		return c.Send(adminOnly)
	}
	return c.Send("Пришли файл .xlsx или .csv со столбцами «английский, русский».")
}

// handleDocument imports a word file sent by the admin
func (h *Handler) handleDocument(c tele.Context) error {
	if !h.isAdmin(c) {
		return nil
	}

	doc := c.Message().Document
	if doc == nil {
		return nil
	}

	rc, err := h.bot.File(&doc.File)
	if err != nil {
		h.logger.Error("Failed to download document", zap.Error(err))
		return c.Send("Не удалось скачать файл.")
	}
	defer rc.Close()

	var pairs []domain.WordPair
	switch {
	case strings.HasSuffix(strings.ToLower(doc.FileName), ".xlsx"):
		pairs, err = export.ParseWorkbook(rc)
	case strings.HasSuffix(strings.ToLower(doc.FileName), ".csv"):
		pairs, err = export.ParseCSV(rc)
	default:
		return c.Send("Поддерживаются только файлы .xlsx и .csv.")
	}
	if err != nil {
		h.logger.Error("Failed to parse import file", zap.Error(err), zap.String("file", doc.FileName))
		return c.Send("Не удалось разобрать файл.")
	}

	res := export.Import(pairs, h.wordSets.AddToShared)
	h.logger.Info("Word import finished",
		zap.Int("processed", res.Processed),
		zap.Int("added", res.Added),
		zap.Int("skipped", res.Skipped),
	)

	text := fmt.Sprintf("📥 Импорт завершён.\nОбработано: %d\nДобавлено: %d\nПропущено: %d",
		res.Processed, res.Added, res.Skipped)
	if len(res.Errors) > 0 && len(res.Errors) <= 5 {
		text += "\n\nОшибки:\n" + strings.Join(res.Errors, "\n")
	}
	return c.Send(text)
}

// handleAdminResetStats handles /resetstats
func (h *Handler) handleAdminResetStats(c tele.Context) error {
	if !h.isAdmin(c) {
		return c.Send(adminOnly)
	}

	if err := h.stats.Reset(); err != nil {
		h.logger.Error("Failed to reset stats", zap.Error(err))
		return c.Send("Не удалось сбросить статистику.")
	}
	return c.Send("♻️ Статистика всех пользователей сброшена.")
}
