package handler

import (
	"strings"

	"lexibot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes all text messages: menu buttons first, then the
// user's current state.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)

	// Registration runs before anything else
	if state.State == domain.StateWaitingName {
		if text == "" {
			return c.Send("Напиши своё имя текстом, пожалуйста.")
		}
		return h.completeRegistration(c, text)
	}

	user, err := h.users.Get(userID)
	if err != nil {
		h.logger.Error("Failed to look up user", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}
	if user == nil {
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingName})
		return c.Send("Привет! 👋 Давай знакомиться. Как тебя зовут?")
	}

	// Menu buttons win over whatever the user was doing
	if in, ok := intentByText[text]; ok {
		return h.dispatchIntent(c, in)
	}

	switch state.State {
	case domain.StateChooseTranslation:
		return h.handleChooseTranslationAnswer(c, state, text)
	case domain.StateFindMissingLetter:
		return h.handleFindLetterAnswer(c, state, text)
	case domain.StateBuildWord:
		return h.handleBuildWordAnswer(c, state, text)
	case domain.StateGuessWord:
		return h.handleGuessWordAnswer(c, state, text)
	case domain.StateRecallTyping:
		return h.handleRecallAnswer(c, state, text)
	case domain.StateInTest:
		return h.handleTestAnswer(c, state, text)
	case domain.StateWaitingAddWord:
		return h.handleAddWordInput(c, text)
	case domain.StateWaitingDelWord:
		return h.handleDelWordInput(c, text)
	case domain.StateWaitingCreateSet:
		return h.handleCreateSetConfirm(c, text)
	case domain.StateWaitingDeleteSet:
		return h.handleDeleteSetConfirm(c, text)
	case domain.StateWaitingPickSet:
		return h.handlePickSet(c, text)
	default:
		return c.Send("Не понимаю 🤔 Выбери действие на клавиатуре.", mainMenuMarkup())
	}
}

func (h *Handler) dispatchIntent(c tele.Context, in intent) error {
	switch in {
	case intentMainMenu:
		return h.handleMainMenu(c)
	case intentLearn:
		return h.startLearning(c)
	case intentNextWord:
		return h.showNextWord(c)
	case intentRandomWord:
		return h.showRandomWord(c)
	case intentGames:
		return h.showGamesMenu(c)
	case intentGameChooseTranslation:
		return h.startChooseTranslation(c)
	case intentGameFindLetter:
		return h.startFindLetter(c)
	case intentGameBuildWord:
		return h.startBuildWord(c)
	case intentGameGuessWord:
		return h.startGuessWord(c)
	case intentGameRecallTyping:
		return h.startRecall(c)
	case intentTest:
		return h.startTest(c)
	case intentStats:
		return h.showStats(c)
	case intentRanking:
		return h.showRanking(c)
	case intentMySet:
		return h.showMySetMenu(c)
	case intentAddWord:
		return h.promptAddWord(c)
	case intentDelWord:
		return h.promptDelWord(c)
	case intentMyWords:
		return h.showMyWords(c)
	case intentSetInfo:
		return h.showSetInfo(c)
	case intentDedup:
		return h.runDedup(c)
	case intentCreateSet:
		return h.promptCreateSet(c)
	case intentDeleteSet:
		return h.promptDeleteSet(c)
	case intentPickSet:
		return h.showCollectionPicker(c)
	}
	return nil
}
