package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string `yaml:"port"`

	// MockMode bypasses the model and returns the fixed demo evaluation.
	MockMode   bool          `yaml:"mock_mode"`
	Provider   string        `yaml:"provider"`    // "openai" | "gemini"
	LLMTimeout time.Duration `yaml:"llm_timeout"` // 0 = no deadline on the model call

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	OpenAI   OpenAIConfig   `yaml:"openai"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type TelegramConfig struct {
	Token      string `yaml:"token"`
	WebhookURL string `yaml:"webhook_url"`
}

func Default() *Config {
	return &Config{
		Port:      "8000",
		Provider:  "openai",
		LogLevel:  "info",
		LogFormat: "json",
		OpenAI: OpenAIConfig{
			Model:   "gpt-4.1-mini",
			BaseURL: "https://api.openai.com/v1",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at path,
// a .env file in the working directory (if any) and the environment, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	cfg.Port = getEnv("PORT", cfg.Port)
	if v, ok := os.LookupEnv("MOCK_MODE"); ok && v != "" {
		cfg.MockMode = v == "true"
	}
	cfg.Provider = strings.ToLower(getEnv("LLM_PROVIDER", cfg.Provider))
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("bad LLM_TIMEOUT %q: %w", v, err)
		}
		cfg.LLMTimeout = d
	}
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	cfg.OpenAI.APIKey = getEnv("OPENAI_API_KEY", cfg.OpenAI.APIKey)
	cfg.OpenAI.Model = getEnv("OPENAI_MODEL", cfg.OpenAI.Model)
	cfg.OpenAI.BaseURL = getEnv("OPENAI_BASE_URL", cfg.OpenAI.BaseURL)
	cfg.Gemini.APIKey = getEnv("GEMINI_API_KEY", cfg.Gemini.APIKey)
	cfg.Gemini.Model = getEnv("GEMINI_MODEL", cfg.Gemini.Model)
	cfg.Telegram.Token = getEnv("TELEGRAM_BOT_TOKEN", cfg.Telegram.Token)
	cfg.Telegram.WebhookURL = getEnv("WEBHOOK_URL", cfg.Telegram.WebhookURL)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q: use openai or gemini", c.Provider)
	}
	if c.LLMTimeout < 0 {
		return fmt.Errorf("LLM_TIMEOUT must not be negative")
	}
	return nil
}

// MissingCredential names the env var of the provider key that live mode needs but lacks.
// It is empty in mock mode or when the key is set.
func (c *Config) MissingCredential() string {
	if c.MockMode {
		return ""
	}
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return "GEMINI_API_KEY"
		}
	default:
		if c.OpenAI.APIKey == "" {
			return "OPENAI_API_KEY"
		}
	}
	return ""
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
