package config

import (
	"errors"
	"os"
	"strings"

	"github.com/minhyannv/pizzeria-agent-go/pkg/payment"
)

// DefaultAPIVersion is the Azure OpenAI API version used when none is configured.
const DefaultAPIVersion = "2024-02-01"

// Config holds all runtime configuration for the pizzeria assistant.
type Config struct {
	// Azure OpenAI endpoint. Empty selects the plain OpenAI API.
	Endpoint   string
	APIKey     string
	Deployment string
	APIVersion string
	BaseURL    string

	MaxTurns    int
	MaxTokens   int64
	Temperature float64

	MenuFile       string
	PaymentMethods []string

	LogLevel string
	Verbose  bool
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		APIVersion:     DefaultAPIVersion,
		MaxTurns:       10,
		MaxTokens:      1000,
		Temperature:    0.7,
		PaymentMethods: append([]string(nil), payment.DefaultMethods...),
		LogLevel:       "info",
	}
}

// FromEnv overlays the Azure OpenAI environment variables on cfg. The plain
// OpenAI variables are used as fallbacks for the key and model.
func FromEnv(cfg Config) Config {
	if v := env("AZURE_OPENAI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := firstNonEmpty(env("AZURE_OPENAI_API_KEY"), env("OPENAI_API_KEY")); v != "" {
		cfg.APIKey = v
	}
	if v := firstNonEmpty(env("AZURE_OPENAI_DEPLOYMENT_NAME"), env("OPENAI_MODEL")); v != "" {
		cfg.Deployment = v
	}
	if v := env("AZURE_OPENAI_API_VERSION"); v != "" {
		cfg.APIVersion = v
	}
	if v := env("OPENAI_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	return cfg
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.Deployment = strings.TrimSpace(cfg.Deployment)
	cfg.APIVersion = strings.TrimSpace(cfg.APIVersion)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.MenuFile = strings.TrimSpace(cfg.MenuFile)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	// Debug output is gated on Verbose, so the two settings move together.
	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}
	if cfg.LogLevel == "debug" {
		cfg.Verbose = true
	}

	methods := make([]string, 0, len(cfg.PaymentMethods))
	for _, m := range cfg.PaymentMethods {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		methods = append(methods, m)
	}
	cfg.PaymentMethods = methods

	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = 1
	}
	if cfg.MaxTokens < 0 {
		cfg.MaxTokens = 0
	}
	return cfg
}

// Validate reports the settings that must be present before talking to the model.
func Validate(cfg Config) error {
	if cfg.APIKey == "" {
		return errors.New("APIKey is not set")
	}
	if cfg.Deployment == "" {
		return errors.New("Deployment is not set")
	}
	if len(cfg.PaymentMethods) == 0 {
		return errors.New("at least one payment method is required")
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return errors.New("temperature must be between 0 and 2")
	}
	return nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
