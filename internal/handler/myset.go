package handler

import (
	"errors"
	"fmt"
	"strings"

	"lexibot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// displayName resolves the sender's name for set allocation
func (h *Handler) displayName(c tele.Context) string {
	user, err := h.users.Get(c.Sender().ID)
	if err == nil && user != nil {
		return user.DisplayName()
	}
	return c.Sender().FirstName
}

// showMySetMenu opens the personal set menu
func (h *Handler) showMySetMenu(c tele.Context) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	name := h.wordSets.ActiveCollection(userID)
	text := fmt.Sprintf("📁 Текущий набор: %s", name)
	if !h.wordSets.HasPersonalSet(userID) {
		text += "\n\nЭто общий набор. Создай свой, чтобы добавлять слова."
	}
	return c.Send(text, mySetMarkup())
}

// promptAddWord asks for a new word pair
func (h *Handler) promptAddWord(c tele.Context) error {
	userID := c.Sender().ID
	if !h.wordSets.HasPersonalSet(userID) {
		return c.Send("Сначала создай свой набор 🆕", mySetMarkup())
	}

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingAddWord})
	return c.Send("Напиши пару в формате:\n\nслово - перевод", backMarkup())
}

// handleAddWordInput parses "english - russian" and stores the pair
func (h *Handler) handleAddWordInput(c tele.Context, text string) error {
	userID := c.Sender().ID

	parts := strings.SplitN(text, "-", 2)
	if len(parts) != 2 {
		return c.Send("Не понял 🤔 Нужен формат: слово - перевод")
	}
	en := strings.TrimSpace(parts[0])
	ru := strings.TrimSpace(parts[1])
	if en == "" || ru == "" {
		return c.Send("Обе части должны быть заполнены: слово - перевод")
	}

	err := h.wordSets.AddWord(userID, en, ru)
	switch {
	case errors.Is(err, domain.ErrLimitExceeded):
		h.ResetState(userID)
		return c.Send("Набор заполнен до предела 😕", mySetMarkup())
	case errors.Is(err, domain.ErrBadWord):
		return c.Send("Это слово добавить нельзя 🚫")
	case err != nil:
		h.logger.Error("Failed to add word", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Не удалось сохранить слово. Попробуйте ещё раз.")
	}

	return c.Send(fmt.Sprintf("✅ Сохранено: %s — %s\n\nМожешь отправить следующую пару.", en, ru))
}

// promptDelWord asks which word to remove
func (h *Handler) promptDelWord(c tele.Context) error {
	userID := c.Sender().ID
	if !h.wordSets.HasPersonalSet(userID) {
		return c.Send("Сначала создай свой набор 🆕", mySetMarkup())
	}

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingDelWord})
	return c.Send("Какое слово удалить? Напиши его по-английски.", backMarkup())
}

func (h *Handler) handleDelWordInput(c tele.Context, text string) error {
	userID := c.Sender().ID

	removed, err := h.wordSets.DeleteWord(userID, text)
	if err != nil {
		h.logger.Error("Failed to delete word", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Не удалось удалить слово. Попробуйте ещё раз.")
	}

	h.ResetState(userID)
	if !removed {
		return c.Send(fmt.Sprintf("Слова «%s» в наборе нет.", text), mySetMarkup())
	}
	return c.Send(fmt.Sprintf("🗑 Слово «%s» удалено.", text), mySetMarkup())
}

// showMyWords lists the active collection's contents
func (h *Handler) showMyWords(c tele.Context) error {
	userID := c.Sender().ID

	words := h.wordSets.Words(userID)
	if len(words) == 0 {
		return c.Send("В наборе пока нет слов 😕", mySetMarkup())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📄 Слова в наборе (%d):\n\n", len(words))
	for i, w := range words {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, w.En, w.Ru)
	}
	return c.Send(b.String(), mySetMarkup())
}

// showSetInfo describes the active collection
func (h *Handler) showSetInfo(c tele.Context) error {
	userID := c.Sender().ID

	info, err := h.wordSets.SetInfo(userID)
	if err != nil {
		h.logger.Error("Failed to load set info", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}
	return c.Send(
		fmt.Sprintf("ℹ️ Набор: %s\nСлов: %d\nРазмер: %d байт", info.Name, info.WordCount, info.SizeBytes),
		mySetMarkup(),
	)
}

// runDedup removes duplicate entries from the active collection
func (h *Handler) runDedup(c tele.Context) error {
	userID := c.Sender().ID
	if !h.wordSets.HasPersonalSet(userID) {
		return c.Send("Сначала создай свой набор 🆕", mySetMarkup())
	}

	removed, err := h.wordSets.Deduplicate(userID)
	if err != nil {
		h.logger.Error("Failed to deduplicate", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}
	if removed == 0 {
		return c.Send("Дублей не нашлось 👌", mySetMarkup())
	}
	return c.Send(fmt.Sprintf("🧹 Убрано дублей: %d", removed), mySetMarkup())
}

// promptCreateSet asks for confirmation before creating a set
func (h *Handler) promptCreateSet(c tele.Context) error {
	userID := c.Sender().ID
	h.SetState(userID, &domain.StateData{State: domain.StateWaitingCreateSet})
	return c.Send("Создать личный набор слов?", confirmMarkup())
}

func (h *Handler) handleCreateSetConfirm(c tele.Context, text string) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	if text != btnConfirmYes {
		return c.Send("Хорошо, не создаю.", mySetMarkup())
	}

	name, err := h.wordSets.CreatePersonalSet(userID, h.displayName(c))
	if err != nil {
		h.logger.Error("Failed to create personal set", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Не удалось создать набор. Попробуйте позже.", mySetMarkup())
	}
	return c.Send(fmt.Sprintf("🆕 Готово! Твой набор: %s", name), mySetMarkup())
}

// promptDeleteSet asks for confirmation before deleting the active set
func (h *Handler) promptDeleteSet(c tele.Context) error {
	userID := c.Sender().ID
	if !h.wordSets.HasPersonalSet(userID) {
		return c.Send("Общий набор удалить нельзя.", mySetMarkup())
	}

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingDeleteSet})
	return c.Send(
		fmt.Sprintf("Удалить набор %s со всеми словами?", h.wordSets.ActiveCollection(userID)),
		confirmMarkup(),
	)
}

func (h *Handler) handleDeleteSetConfirm(c tele.Context, text string) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	if text != btnConfirmYes {
		return c.Send("Хорошо, оставляю как есть.", mySetMarkup())
	}

	if err := h.wordSets.DeleteSet(userID); err != nil {
		h.logger.Error("Failed to delete personal set", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Не удалось удалить набор. Попробуйте позже.", mySetMarkup())
	}
	return c.Send("🗑 Набор удалён. Ты снова на общем наборе.", mySetMarkup())
}

// showCollectionPicker lists all collections as keyboard buttons
func (h *Handler) showCollectionPicker(c tele.Context) error {
	userID := c.Sender().ID

	names, err := h.wordSets.AvailableCollections()
	if err != nil {
		h.logger.Error("Failed to list collections", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	rows := make([][]string, 0, len(names)+1)
	for _, name := range names {
		rows = append(rows, []string{name})
	}
	rows = append(rows, []string{btnMainMenu})

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingPickSet})
	return c.Send("📚 Выбери набор:", keyboard(rows...))
}

func (h *Handler) handlePickSet(c tele.Context, text string) error {
	userID := c.Sender().ID

	err := h.wordSets.SelectCollection(userID, text, h.displayName(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Send("Такого набора нет. Выбери из списка.")
		}
		h.logger.Error("Failed to select collection", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	h.ResetState(userID)
	return c.Send(fmt.Sprintf("✅ Теперь активен набор: %s", h.wordSets.ActiveCollection(userID)), mySetMarkup())
}
