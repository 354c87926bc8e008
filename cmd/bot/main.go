package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"lexibot/internal/assets"
	"lexibot/internal/badwords"
	"lexibot/internal/config"
	"lexibot/internal/handler"
	"lexibot/internal/middleware"
	"lexibot/internal/repository/sqlite"
	"lexibot/internal/scheduler"
	"lexibot/internal/service"
	"lexibot/internal/wordstore"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting LexiBot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Open database
	db, err := openDatabase(cfg.DBPath)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database opened", zap.String("path", cfg.DBPath))

	// Run migrations
	if err := runMigrations(db, cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Word storage
	store, err := wordstore.New(cfg.DataDir, logger)
	if err != nil {
		logger.Fatal("Failed to initialize word store", zap.Error(err))
	}
	registry, err := wordstore.NewRegistry(cfg.DataDir, store, logger)
	if err != nil {
		logger.Fatal("Failed to load collection registry", zap.Error(err))
	}
	filter := badwords.Load(filepath.Join(cfg.DataDir, "bad_words.json"), logger)
	library := assets.NewLibrary(cfg.DataDir)

	// Initialize repositories
	userRepo := sqlite.NewUserRepo(db)
	statsRepo := sqlite.NewStatsRepo(db)
	banRepo := sqlite.NewBanRepo(db)

	// Initialize services
	wordSetService := service.NewWordSetService(store, registry, wordstore.NewAllocator(), filter, cfg.MaxUserWords, logger)
	statsService := service.NewStatsService(statsRepo, logger)
	rankingService := service.NewRankingService(statsRepo, logger)
	gameService := service.NewGameService(statsRepo, logger)
	testService := service.NewTestService(statsRepo, cfg.TestQuestionsCount, logger)
	moderationService := service.NewModerationService(userRepo, statsRepo, banRepo, registry, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}
	bot.Use(middleware.BanMiddleware(moderationService, logger))

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(
		bot,
		userRepo,
		wordSetService,
		statsService,
		rankingService,
		gameService,
		testService,
		moderationService,
		library,
		cfg.AdminID,
		cfg.RecallCountdownSeconds,
		logger,
	)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Periodic stats reset
	var sched *scheduler.Scheduler
	if cfg.StatsResetEnabled {
		sched = scheduler.New(statsService, logger)
		if err := sched.Start(); err != nil {
			logger.Fatal("Failed to start scheduler", zap.Error(err))
		}
		logger.Info("Monthly stats reset scheduled")
	}

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	if sched != nil {
		sched.Stop()
	}

	logger.Info("Bot stopped gracefully")
}

// openDatabase opens the SQLite file, creating its directory if needed
func openDatabase(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite handles one writer at a time
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sqlx.DB, migrationsPath string, logger *zap.Logger) error {
	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsPath,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			logger.Info("No new migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied successfully")
	return nil
}
