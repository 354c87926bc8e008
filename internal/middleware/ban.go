package middleware

import (
	"lexibot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// BanMiddleware silently drops updates from banned users
func BanMiddleware(moderation *service.ModerationService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			banned, err := moderation.IsBanned(sender.ID)
			if err != nil {
				logger.Error("Failed to check ban status in middleware", zap.Error(err))
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}
			if banned {
				logger.Debug("Dropping update from banned user", zap.Int64("user_id", sender.ID))
				return nil
			}

			return next(c)
		}
	}
}
