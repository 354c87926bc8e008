package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	BotToken string
	AdminID  int64

	DataDir        string
	DBPath         string
	MigrationsPath string

	MaxUserWords           int
	TestQuestionsCount     int
	RecallCountdownSeconds int
	StatsResetEnabled      bool
}

// Load reads configuration from the environment, with .env as a
// fallback for local runs
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	adminID, err := strconv.ParseInt(getEnv("ADMIN_ID", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_ID: %w", err)
	}

	return &Config{
		BotToken:               token,
		AdminID:                adminID,
		DataDir:                getEnv("DATA_DIR", "data"),
		DBPath:                 getEnv("DB_PATH", "data/lexibot.db"),
		MigrationsPath:         getEnv("MIGRATIONS_PATH", "migrations"),
		MaxUserWords:           getEnvInt("MAX_USER_WORDS", 50),
		TestQuestionsCount:     getEnvInt("TEST_QUESTIONS_COUNT", 10),
		RecallCountdownSeconds: getEnvInt("RECALL_COUNTDOWN_SECONDS", 30),
		StatsResetEnabled:      getEnvBool("STATS_RESET_ENABLED", false),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
