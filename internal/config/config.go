// internal/config/config.go
//
// Environment-driven configuration for the Wordle server.
// main loads a .env file (godotenv) before calling Load, so every key here
// can come from either the process environment or that file.

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// DefaultTokenSecret is the development fallback for TOKEN_SECRET.
const DefaultTokenSecret = "dev_secret_change_me"

// ErrInsecureSecret is returned by Validate when production runs on the default secret.
var ErrInsecureSecret = errors.New("config: TOKEN_SECRET must be set in production")

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Token   TokenConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Port           string
	Env            string // "development" or "production"
	ClientOrigin   string
	RequestTimeout time.Duration
	SessionTTL     time.Duration
}

// GameConfig holds engine and word list settings.
type GameConfig struct {
	WordLength       int
	MaxAttempts      int
	Seed             int64 // 0 picks a random seed
	WordsAnswersFile string
	WordsAllowedFile string
}

// TokenConfig controls the signed per-game player token.
type TokenConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "5175"),
			Env:            getEnv("ENV", "development"),
			ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			SessionTTL:     getEnvDuration("SESSION_TTL", 24*time.Hour),
		},
		Game: GameConfig{
			WordLength:       getEnvInt("WORD_LENGTH", 5),
			MaxAttempts:      getEnvInt("MAX_ATTEMPTS", 6),
			Seed:             getEnvInt64("RANDOM_SEED", 0),
			WordsAnswersFile: getEnv("WORDS_ANSWERS_FILE", ""),
			WordsAllowedFile: getEnv("WORDS_ALLOWED_FILE", ""),
		},
		Token: TokenConfig{
			Secret:     getEnv("TOKEN_SECRET", DefaultTokenSecret),
			TTL:        getEnvDuration("TOKEN_TTL", 24*time.Hour),
			CookieName: getEnv("COOKIE_NAME", "wordle_game"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate rejects settings that must not reach production.
func (c *Config) Validate() error {
	if c.IsProduction() && c.Token.Secret == DefaultTokenSecret {
		return ErrInsecureSecret
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvInt64(k string, def int64) int64 {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("90s", "24h").
func getEnvDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
