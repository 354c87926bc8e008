package handler

import (
	"fmt"

	"lexibot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const mainMenuText = "🏠 Главное меню\n\nВыберите действие:"

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	user, err := h.users.Get(userID)
	if err != nil {
		h.logger.Error("Failed to look up user", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	if user == nil {
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingName})
		return c.Send("Привет! 👋 Я помогу тебе учить английские слова.\n\nКак тебя зовут?")
	}

	if err := h.users.UpdateLastActive(userID); err != nil {
		h.logger.Warn("Failed to update last active", zap.Error(err))
	}

	h.ResetState(userID)
	return c.Send(mainMenuText, mainMenuMarkup())
}

// completeRegistration stores the freshly introduced user
func (h *Handler) completeRegistration(c tele.Context, name string) error {
	sender := c.Sender()

	if err := h.users.Create(sender.ID, name, sender.FirstName, sender.LastName, sender.Username); err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	h.logger.Info("User registered",
		zap.Int64("user_id", sender.ID),
		zap.String("name", name),
	)

	h.ResetState(sender.ID)
	return c.Send(
		fmt.Sprintf("Приятно познакомиться, %s! 🎉\n\n%s", name, mainMenuText),
		mainMenuMarkup(),
	)
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	text := "Я бот для изучения английских слов.\n\n" +
		btnLearn + " — карточки со словами\n" +
		btnGames + " — мини-игры на закрепление\n" +
		btnTest + " — проверка знаний\n" +
		btnStats + " — твоя статистика\n" +
		btnRanking + " — таблица лидеров\n" +
		btnMySet + " — личный набор слов"
	return c.Send(text, mainMenuMarkup())
}

// handleMainMenu returns the user to the main menu
func (h *Handler) handleMainMenu(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return c.Send(mainMenuText, mainMenuMarkup())
}
