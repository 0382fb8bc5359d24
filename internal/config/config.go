package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Trainer  TrainerConfig
	Tracking TrackingConfig
	Chat     ChatConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type StoreConfig struct {
	ArtifactDir string
}

type TrainerConfig struct {
	Trees     int
	MaxDepth  int
	Seed      int64
	TestRatio float64
}

type TrackingConfig struct {
	Enabled bool
	DSN     string
	Timeout time.Duration
}

type ChatConfig struct {
	URL        string
	APIKey     string
	Model      string
	MaxTokens  int
	MaxRetries int
	RetryBase  time.Duration
	Timeout    time.Duration
	Port       int
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("ARTIFACT_DIR", "./artifacts")
	v.SetDefault("TRAINER_TREES", 300)
	v.SetDefault("TRAINER_MAX_DEPTH", 8)
	v.SetDefault("TRAINER_SEED", 42)
	v.SetDefault("TRAINER_TEST_RATIO", 0.2)
	v.SetDefault("TRACKING_ENABLED", false)
	v.SetDefault("TRACKING_DSN", "")
	v.SetDefault("TRACKING_TIMEOUT", "5s")
	v.SetDefault("CHAT_URL", "https://api.anthropic.com/v1/messages")
	v.SetDefault("CHAT_API_KEY", "")
	v.SetDefault("CHAT_MODEL", "claude-3-sonnet")
	v.SetDefault("CHAT_MAX_TOKENS", 1000)
	v.SetDefault("CHAT_MAX_RETRIES", 5)
	v.SetDefault("CHAT_RETRY_BASE", "2s")
	v.SetDefault("CHAT_TIMEOUT", "60s")
	v.SetDefault("CHAT_PORT", 8081)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Store: StoreConfig{
			ArtifactDir: v.GetString("ARTIFACT_DIR"),
		},
		Trainer: TrainerConfig{
			Trees:     v.GetInt("TRAINER_TREES"),
			MaxDepth:  v.GetInt("TRAINER_MAX_DEPTH"),
			Seed:      v.GetInt64("TRAINER_SEED"),
			TestRatio: v.GetFloat64("TRAINER_TEST_RATIO"),
		},
		Tracking: TrackingConfig{
			Enabled: v.GetBool("TRACKING_ENABLED"),
			DSN:     v.GetString("TRACKING_DSN"),
			Timeout: durationOr(v, "TRACKING_TIMEOUT", 5*time.Second),
		},
		Chat: ChatConfig{
			URL:        v.GetString("CHAT_URL"),
			APIKey:     v.GetString("CHAT_API_KEY"),
			Model:      v.GetString("CHAT_MODEL"),
			MaxTokens:  v.GetInt("CHAT_MAX_TOKENS"),
			MaxRetries: v.GetInt("CHAT_MAX_RETRIES"),
			RetryBase:  durationOr(v, "CHAT_RETRY_BASE", 2*time.Second),
			Timeout:    durationOr(v, "CHAT_TIMEOUT", 60*time.Second),
			Port:       v.GetInt("CHAT_PORT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}
