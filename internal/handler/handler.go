package handler

import (
	"sync"

	"lexibot/internal/assets"
	"lexibot/internal/domain"
	"lexibot/internal/repository"
	"lexibot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	users      repository.UserRepository
	wordSets   *service.WordSetService
	stats      *service.StatsService
	ranking    *service.RankingService
	games      *service.GameService
	tests      *service.TestService
	moderation *service.ModerationService
	assets     *assets.Library
	logger     *zap.Logger

	adminID         int64
	recallCountdown int

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	users repository.UserRepository,
	wordSets *service.WordSetService,
	stats *service.StatsService,
	ranking *service.RankingService,
	games *service.GameService,
	tests *service.TestService,
	moderation *service.ModerationService,
	lib *assets.Library,
	adminID int64,
	recallCountdown int,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:             bot,
		users:           users,
		wordSets:        wordSets,
		stats:           stats,
		ranking:         ranking,
		games:           games,
		tests:           tests,
		moderation:      moderation,
		assets:          lib,
		adminID:         adminID,
		recallCountdown: recallCountdown,
		logger:          logger,
		states:          make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)

	// Admin commands
	h.bot.Handle("/add", h.handleAdminAdd)
	h.bot.Handle("/del", h.handleAdminDel)
	h.bot.Handle("/list", h.handleAdminList)
	h.bot.Handle("/stats", h.handleAdminStats)
	h.bot.Handle("/deluser", h.handleAdminDelUser)
	h.bot.Handle("/ban", h.handleAdminBan)
	h.bot.Handle("/unban", h.handleAdminUnban)
	h.bot.Handle("/export", h.handleAdminExport)
	h.bot.Handle("/import", h.handleAdminImport)
	h.bot.Handle("/resetstats", h.handleAdminResetStats)

	// Word set files sent for import
	h.bot.Handle(tele.OnDocument, h.handleDocument)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

func (h *Handler) isAdmin(c tele.Context) bool {
	return h.adminID != 0 && c.Sender().ID == h.adminID
}
