// Package config loads careerpath settings from an optional YAML file,
// CAREERPATH_* environment variables and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/careerpath/internal/llm"
	"github.com/abhisek/careerpath/internal/store"
)

type Config struct {
	Store    StoreConfig `mapstructure:"store"`
	LLM      LLMConfig   `mapstructure:"llm"`
	Log      LogConfig   `mapstructure:"log"`
	Watch    WatchConfig `mapstructure:"watch"`
	Timezone string      `mapstructure:"timezone"`
}

type StoreConfig struct {
	Driver      string `mapstructure:"driver"`
	Path        string `mapstructure:"path"`
	RedisURL    string `mapstructure:"redis_url"`
	RedisPrefix string `mapstructure:"redis_prefix"`
}

type LLMConfig struct {
	Provider         string        `mapstructure:"provider"`
	AnthropicAPIKey  string        `mapstructure:"anthropic_api_key"`
	AnthropicModel   string        `mapstructure:"anthropic_model"`
	OpenAIAPIKey     string        `mapstructure:"openai_api_key"`
	OpenAIModel      string        `mapstructure:"openai_model"`
	OpenAIBaseURL    string        `mapstructure:"openai_base_url"`
	GeminiAPIKey     string        `mapstructure:"gemini_api_key"`
	GeminiModel      string        `mapstructure:"gemini_model"`
	OpenRouterAPIKey string        `mapstructure:"openrouter_api_key"`
	OpenRouterModel  string        `mapstructure:"openrouter_model"`
	MaxAttempts      int           `mapstructure:"max_attempts"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type WatchConfig struct {
	// Schedule is a cron spec for the portfolio refresh job.
	Schedule string `mapstructure:"schedule"`
}

// Load reads configuration. file may be empty, in which case careerpath.yaml
// is looked up in the working directory and $HOME/.config/careerpath; a
// missing default file is not an error. overrides are applied last, keyed
// by dotted path (e.g. "store.driver").
func Load(file string, overrides map[string]string) (*Config, error) {
	v := viper.New()

	v.SetDefault("store.driver", store.DriverSQLite)
	v.SetDefault("store.redis_prefix", "careerpath:")
	v.SetDefault("log.level", "warn")
	v.SetDefault("watch.schedule", "@every 1h")
	v.SetDefault("timezone", "Local")
	v.SetDefault("llm.max_attempts", 1)
	v.SetDefault("llm.timeout", 30*time.Second)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("careerpath")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/careerpath")
	}

	v.SetEnvPrefix("CAREERPATH")
	v.AutomaticEnv()

	// Store
	v.BindEnv("store.driver", "CAREERPATH_STORE")
	v.BindEnv("store.path", "CAREERPATH_DB")
	v.BindEnv("store.redis_url", "CAREERPATH_REDIS_URL")
	v.BindEnv("store.redis_prefix", "CAREERPATH_REDIS_PREFIX")

	// LLM
	v.BindEnv("llm.provider", "CAREERPATH_LLM_PROVIDER")
	v.BindEnv("llm.anthropic_api_key", "CAREERPATH_ANTHROPIC_API_KEY")
	v.BindEnv("llm.anthropic_model", "CAREERPATH_ANTHROPIC_MODEL")
	v.BindEnv("llm.openai_api_key", "CAREERPATH_OPENAI_API_KEY")
	v.BindEnv("llm.openai_model", "CAREERPATH_OPENAI_MODEL")
	v.BindEnv("llm.openai_base_url", "CAREERPATH_OPENAI_BASE_URL")
	v.BindEnv("llm.gemini_api_key", "CAREERPATH_GEMINI_API_KEY")
	v.BindEnv("llm.gemini_model", "CAREERPATH_GEMINI_MODEL")
	v.BindEnv("llm.openrouter_api_key", "CAREERPATH_OPENROUTER_API_KEY")
	v.BindEnv("llm.openrouter_model", "CAREERPATH_OPENROUTER_MODEL")

	// Log
	v.BindEnv("log.level", "CAREERPATH_LOG_LEVEL")
	v.BindEnv("log.file", "CAREERPATH_LOG_FILE")

	v.BindEnv("timezone", "CAREERPATH_TZ")
	v.BindEnv("watch.schedule", "CAREERPATH_WATCH_SCHEDULE")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for k, val := range overrides {
		if val != "" {
			v.Set(k, val)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// StoreConfig converts the store section for store.Open.
func (c *Config) StoreConfig() store.Config {
	return store.Config{
		Driver:      c.Store.Driver,
		Path:        c.Store.Path,
		RedisURL:    c.Store.RedisURL,
		RedisPrefix: c.Store.RedisPrefix,
	}
}

// Location resolves the configured time zone used for day boundaries.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// LLMProviderConfig returns the llm configuration, or false when no provider
// is configured and none can be discovered from the standard API key
// variables.
func (c *Config) LLMProviderConfig() (llm.Config, bool) {
	l := c.LLM
	if l.Provider == "" {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return llm.Config{}, false
		}
		return c.applyLLMTuning(discovered), true
	}

	cfg := llm.DefaultConfig()
	cfg.Provider = l.Provider
	setIf(&cfg.Anthropic.APIKey, l.AnthropicAPIKey)
	setIf(&cfg.Anthropic.Model, l.AnthropicModel)
	setIf(&cfg.OpenAI.APIKey, l.OpenAIAPIKey)
	setIf(&cfg.OpenAI.Model, l.OpenAIModel)
	setIf(&cfg.OpenAI.BaseURL, l.OpenAIBaseURL)
	setIf(&cfg.Gemini.APIKey, l.GeminiAPIKey)
	setIf(&cfg.Gemini.Model, l.GeminiModel)
	setIf(&cfg.OpenRouter.APIKey, l.OpenRouterAPIKey)
	setIf(&cfg.OpenRouter.Model, l.OpenRouterModel)
	return c.applyLLMTuning(cfg), true
}

func (c *Config) applyLLMTuning(cfg llm.Config) llm.Config {
	if c.LLM.MaxAttempts > 0 {
		cfg.Retry.MaxAttempts = c.LLM.MaxAttempts
	}
	if c.LLM.Timeout > 0 {
		cfg.Timeout = c.LLM.Timeout
	}
	return cfg
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
