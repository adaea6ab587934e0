package llm

import (
	"os"
	"strconv"
)

// Config controls the optional model-backed intent classifier.
type Config struct {
	Enabled     bool
	LogCalls    bool
	Endpoint    string
	Model       string
	TimeoutMs   int
	MaxRetries  int
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns a disabled configuration pointing at a local
// Ollama. Classification prompts are short, so the token budget is small.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		LogCalls:    false,
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		TimeoutMs:   3000,
		MaxRetries:  1,
		Temperature: 0,
		MaxTokens:   64,
	}
}

// LoadConfig reads RESTOBOT_LLM_* environment variables. Unset or
// unparsable values keep their defaults.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RESTOBOT_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("RESTOBOT_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("RESTOBOT_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("RESTOBOT_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("RESTOBOT_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("RESTOBOT_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("RESTOBOT_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("RESTOBOT_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}

	return cfg
}
