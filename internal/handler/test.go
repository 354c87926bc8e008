package handler

import (
	"errors"
	"fmt"

	"lexibot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// startTest begins a knowledge test over the active collection
func (h *Handler) startTest(c tele.Context) error {
	userID := c.Sender().ID

	words := h.wordSets.Words(userID)
	sess, err := h.tests.NewSession(userID, h.wordSets.ActiveCollection(userID), words)
	if err != nil {
		if errors.Is(err, domain.ErrLimitExceeded) {
			return c.Send("Для теста нужно хотя бы два слова в наборе 😕", mainMenuMarkup())
		}
		h.logger.Error("Failed to start test", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	h.SetState(userID, &domain.StateData{
		State: domain.StateInTest,
		Test:  sess,
	})

	if err := c.Send(fmt.Sprintf("📝 Проверка знаний: %d вопросов. Поехали!", len(sess.Words))); err != nil {
		return err
	}
	return h.sendTestQuestion(c, sess)
}

func (h *Handler) sendTestQuestion(c tele.Context, sess *domain.TestSession) error {
	word, options := h.tests.NextQuestion(sess, h.games)
	return c.Send(
		fmt.Sprintf("Вопрос %d из %d\n\nКак переводится *%s*?", sess.Index+1, len(sess.Words), word.En),
		optionsMarkup(options),
		tele.ModeMarkdown,
	)
}

// handleTestAnswer grades one answer and either asks the next
// question or wraps the test up.
func (h *Handler) handleTestAnswer(c tele.Context, state *domain.StateData, text string) error {
	userID := c.Sender().ID
	sess := state.Test
	if sess == nil {
		h.ResetState(userID)
		return c.Send(mainMenuText, mainMenuMarkup())
	}

	asked := sess.Current()
	if h.tests.Answer(sess, text) {
		if err := c.Send("✅ Верно!"); err != nil {
			return err
		}
	} else {
		if err := c.Send(fmt.Sprintf("❌ Неверно. Правильный ответ: %s", asked.Ru)); err != nil {
			return err
		}
	}

	if !sess.Done() {
		return h.sendTestQuestion(c, sess)
	}

	score, total, elapsed, err := h.tests.Finish(sess)
	if err != nil {
		h.logger.Error("Failed to save test result", zap.Error(err))
	}
	h.ResetState(userID)

	text = fmt.Sprintf("🏁 Тест завершён!\n\nРезультат: %d из %d\nВремя: %.1f сек", score, total, elapsed)
	if score == total {
		text += "\n\n🌟 Идеально!"
	}
	return c.Send(text, mainMenuMarkup())
}
