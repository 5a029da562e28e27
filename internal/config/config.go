// Package config loads server and CLI settings.
//
// Precedence, lowest first: built-in defaults, the YAML file named by
// WORDLE_CONFIG (or passed to Load), then environment variables. A .env
// file in the working directory is loaded into the environment first.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full set of settings.
type Config struct {
	Port         string        `yaml:"port"`
	LogLevel     string        `yaml:"log_level"`
	LogPretty    bool          `yaml:"log_pretty"`
	ClientOrigin string        `yaml:"client_origin"`
	DBPath       string        `yaml:"db_path"`
	Auth         AuthConfig    `yaml:"auth"`
	Words        WordsConfig   `yaml:"words"`
	Game         GameConfig    `yaml:"game"`
	Daily        DailyConfig   `yaml:"daily"`
	Sessions     SessionConfig `yaml:"sessions"`
}

// AuthConfig controls JWT signing and the auth cookie.
type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	JWTExpiryDays int    `yaml:"jwt_expiry_days"`
	CookieName    string `yaml:"cookie_name"`
	SecureCookies bool   `yaml:"secure_cookies"`
}

// WordsConfig points at the word lists. Empty paths use the embedded lists.
type WordsConfig struct {
	AnswersFile string `yaml:"answers_file"`
	AllowedFile string `yaml:"allowed_file"`
	Watch       bool   `yaml:"watch"`
}

// GameConfig tunes rounds.
type GameConfig struct {
	MaxGuesses    int `yaml:"max_guesses"`
	FilterWorkers int `yaml:"filter_workers"`
}

// DailyConfig salts the daily word pick.
type DailyConfig struct {
	Salt string `yaml:"salt"`
}

// SessionConfig bounds how long live rounds are kept in memory.
type SessionConfig struct {
	MaxAge        time.Duration `yaml:"max_age"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Port:         "5175",
		LogLevel:     "info",
		ClientOrigin: "http://localhost:5173",
		DBPath:       "./data/app.db",
		Auth: AuthConfig{
			JWTSecret:     "dev_secret_change_me",
			JWTExpiryDays: 14,
			CookieName:    "wordle_token",
		},
		Game: GameConfig{
			MaxGuesses:    6,
			FilterWorkers: 1,
		},
		Daily: DailyConfig{Salt: "local_dev_salt"},
		Sessions: SessionConfig{
			MaxAge:        24 * time.Hour,
			SweepInterval: 10 * time.Minute,
		},
	}
}

// Load reads .env, then path (or $WORDLE_CONFIG when path is empty), then
// applies environment overrides.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = os.Getenv("WORDLE_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides copies set environment variables over file values.
func (c *Config) applyEnvOverrides() error {
	str := func(k string, dst *string) {
		if v := os.Getenv(k); v != "" {
			*dst = v
		}
	}
	str("PORT", &c.Port)
	str("LOG_LEVEL", &c.LogLevel)
	str("CLIENT_ORIGIN", &c.ClientOrigin)
	str("DB_PATH", &c.DBPath)
	str("JWT_SECRET", &c.Auth.JWTSecret)
	str("COOKIE_NAME", &c.Auth.CookieName)
	str("WORDS_ANSWERS_FILE", &c.Words.AnswersFile)
	str("WORDS_ALLOWED_FILE", &c.Words.AllowedFile)
	str("DAILY_SALT", &c.Daily.Salt)

	for k, dst := range map[string]*int{
		"JWT_EXPIRES_DAYS": &c.Auth.JWTExpiryDays,
		"MAX_GUESSES":      &c.Game.MaxGuesses,
		"FILTER_WORKERS":   &c.Game.FilterWorkers,
	} {
		if v := os.Getenv(k); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			*dst = n
		}
	}
	for k, dst := range map[string]*bool{
		"LOG_PRETTY":     &c.LogPretty,
		"WORDS_WATCH":    &c.Words.Watch,
		"SECURE_COOKIES": &c.Auth.SecureCookies,
	} {
		if v := os.Getenv(k); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			*dst = b
		}
	}
	// NODE_ENV=production is how existing deployments ask for secure cookies.
	if os.Getenv("NODE_ENV") == "production" {
		c.Auth.SecureCookies = true
	}
	return nil
}
