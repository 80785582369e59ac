package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"

	configpkg "github.com/minhyannv/pizzeria-agent-go/pkg/config"
)

// envVarPrefix maps every flag to PIZZERIA_<FLAG_NAME>.
const envVarPrefix = "PIZZERIA"

// parseCLIConfig loads .env, the Azure OpenAI environment and flags into the
// runtime config. Flags win over PIZZERIA_* variables, which win over the
// AZURE_OPENAI_* defaults.
func parseCLIConfig(args []string) (configpkg.Config, error) {
	_ = godotenv.Load()

	cfg := configpkg.FromEnv(configpkg.DefaultConfig())
	fs := flag.NewFlagSet("pizzeria", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	bindFlags(fs, &cfg)

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix(envVarPrefix)); err != nil {
		if errors.Is(err, ff.ErrHelp) {
			fs.Usage()
		}
		return configpkg.Config{}, err
	}
	return configpkg.Normalize(cfg), nil
}

func bindFlags(fs *flag.FlagSet, cfg *configpkg.Config) {
	fs.StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "Azure OpenAI endpoint (empty uses the OpenAI API)")
	fs.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "API key")
	fs.StringVar(&cfg.Deployment, "deployment", cfg.Deployment, "Azure deployment name or OpenAI model")
	fs.StringVar(&cfg.APIVersion, "api-version", cfg.APIVersion, "Azure OpenAI API version")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "OpenAI-compatible base URL (ignored with -endpoint)")
	fs.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "Max tool-call turns per message")
	fs.Int64Var(&cfg.MaxTokens, "max-tokens", cfg.MaxTokens, "Max tokens per completion (0 for the service default)")
	fs.Float64Var(&cfg.Temperature, "temperature", cfg.Temperature, "Sampling temperature")
	fs.StringVar(&cfg.MenuFile, "menu", cfg.MenuFile, "YAML menu file (empty uses the built-in menu)")
	fs.Var(newStringSliceFlag(&cfg.PaymentMethods), "payment-methods", "Accepted payment method. Repeat the flag or separate values with commas")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log verbosity debug | info | warn | error (debug implies -verbose)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose tool-call logging")
}

// stringSliceFlag supports repeatable and comma-separated values. The first
// Set replaces the defaults.
type stringSliceFlag struct {
	target  *[]string
	changed bool
}

func newStringSliceFlag(target *[]string) *stringSliceFlag {
	return &stringSliceFlag{target: target}
}

func (f *stringSliceFlag) String() string {
	if f == nil || f.target == nil {
		return ""
	}
	return strings.Join(*f.target, ",")
}

func (f *stringSliceFlag) Set(value string) error {
	var values []string
	for _, v := range strings.Split(value, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return fmt.Errorf("empty value")
	}
	if !f.changed {
		*f.target = nil
		f.changed = true
	}
	*f.target = append(*f.target, values...)
	return nil
}
