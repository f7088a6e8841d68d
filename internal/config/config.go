package config

import (
	"os"
	"strconv"

	"github.com/nbox/ProductHunt-Statistic/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	// Token is the Product Hunt API bearer credential. It might be empty
	// here; the catalog service rejects an empty token before doing any
	// work, so the failure maps to the dedicated exit code.
	Token string

	Timezone     string
	DateOverride string
	TopN         int
	OutDir       string
	ReadmePath   string
	DBPath       string
	LogLevel     string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		Token:        getEnv("PRODUCTHUNT_TOKEN", ""),
		Timezone:     getEnv("PH_TZ", constants.DefaultTimezone),
		DateOverride: getEnv("DATE", ""),
		TopN:         getEnvInt("TOP_N", constants.DefaultTopN),
		OutDir:       getEnv("OUT_DIR", "."),
		ReadmePath:   getEnv("README_PATH", constants.DefaultReadmePath),
		DBPath:       getEnv("DB_PATH", constants.DefaultDBPath),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	logger.Info().
		Str("timezone", cfg.Timezone).
		Str("date_override", cfg.DateOverride).
		Int("top_n", cfg.TopN).
		Str("out_dir", cfg.OutDir).
		Str("readme_path", cfg.ReadmePath).
		Str("db_path", cfg.DBPath).
		Str("log_level", cfg.LogLevel).
		Bool("token_set", cfg.Token != "").
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

var Module = fx.Provide(Load)
