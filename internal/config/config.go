// Package config reads process configuration from RESTOBOT_* environment
// variables and builds the shared logger.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/llm"
)

// JournalDisabled as the DB path turns the order journal off.
const JournalDisabled = "off"

type Config struct {
	// DataDir holds corpus files. Empty means the embedded defaults.
	DataDir string
	DBPath  string

	LogLevel  string
	LogFormat string

	ConfirmThreshold  float64
	FallbackLength    float64
	FallbackDistance  float64
	RecommendMinScore float64
	RecommendEvery    int
	ApologyThreshold  float64

	LLM llm.Config
}

func DefaultConfig() Config {
	return Config{
		DBPath:            defaultDBPath(),
		LogLevel:          "warn",
		LogFormat:         "console",
		ConfirmThreshold:  0.5,
		FallbackLength:    0.2,
		FallbackDistance:  0.2,
		RecommendMinScore: 0.4,
		RecommendEvery:    10,
		ApologyThreshold:  -0.75,
		LLM:               llm.DefaultConfig(),
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".restobot", "orders.db")
	}
	return filepath.Join(home, ".restobot", "orders.db")
}

// JournalEnabled reports whether checkouts should be recorded.
func (c Config) JournalEnabled() bool {
	return c.DBPath != "" && !strings.EqualFold(c.DBPath, JournalDisabled)
}

// LoadConfig overlays RESTOBOT_* variables on the defaults. Unset or
// unparsable values keep their defaults.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RESTOBOT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("RESTOBOT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := strings.ToLower(os.Getenv("RESTOBOT_LOG_LEVEL")); v != "" {
		switch v {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = v
		}
	}
	if v := strings.ToLower(os.Getenv("RESTOBOT_LOG_FORMAT")); v == "json" || v == "console" {
		cfg.LogFormat = v
	}

	ratio := func(key string, dst *float64) {
		if v := os.Getenv(key); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
				*dst = f
			}
		}
	}
	ratio("RESTOBOT_CONFIRM_THRESHOLD", &cfg.ConfirmThreshold)
	ratio("RESTOBOT_FALLBACK_LENGTH", &cfg.FallbackLength)
	ratio("RESTOBOT_FALLBACK_DISTANCE", &cfg.FallbackDistance)

	if v := os.Getenv("RESTOBOT_RECOMMEND_MIN_SENTIMENT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= -1 && f <= 1 {
			cfg.RecommendMinScore = f
		}
	}
	if v := os.Getenv("RESTOBOT_RECOMMEND_EVERY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RecommendEvery = n
		}
	}
	if v := os.Getenv("RESTOBOT_APOLOGY_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= -1 && f <= 1 {
			cfg.ApologyThreshold = f
		}
	}

	cfg.LLM = llm.LoadConfig()
	return cfg
}
