// Package config loads gamenight settings from an optional TOML file and the
// environment.
//
// Example ~/.gamenight/config.toml:
//
//	[storage]
//	path = "/home/me/.gamenight/ledger.db"
//
//	[log]
//	level = "debug"
//
//	[ledger]
//	suggestion_limit = 5
//	settlement_description = "Rozliczenie"
//	currency = "zł"
//
// Environment variables GAMENIGHT_DB_PATH and LOG_LEVEL override the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the full gamenight configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
	Ledger  LedgerConfig  `toml:"ledger"`
}

type StorageConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type LedgerConfig struct {
	SuggestionLimit       int    `toml:"suggestion_limit"`
	SettlementDescription string `toml:"settlement_description"`
	Currency              string `toml:"currency"`
}

// Home returns the gamenight directory, $GAMENIGHT_HOME or ~/.gamenight.
func Home() (string, error) {
	if env := os.Getenv("GAMENIGHT_HOME"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory (set GAMENIGHT_HOME): %w", err)
	}
	return filepath.Join(home, ".gamenight"), nil
}

// Default returns the built-in configuration rooted at home.
func Default(home string) Config {
	return Config{
		Storage: StorageConfig{Path: filepath.Join(home, "ledger.db")},
		Log:     LogConfig{Level: "info"},
		Ledger: LedgerConfig{
			SuggestionLimit:       3,
			SettlementDescription: "Settlement",
			Currency:              "zł",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error; an empty path means config.toml in Home.
func Load(path string) (Config, error) {
	home, err := Home()
	if err != nil {
		return Config{}, err
	}
	cfg := Default(home)
	if path == "" {
		path = filepath.Join(home, "config.toml")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.Storage.Path = getEnv("GAMENIGHT_DB_PATH", cfg.Storage.Path)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)

	if cfg.Ledger.SuggestionLimit < 0 {
		return Config{}, fmt.Errorf("ledger.suggestion_limit must not be negative, got %d", cfg.Ledger.SuggestionLimit)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
