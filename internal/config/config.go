// Package config loads fincoach settings from TOML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config holds all fincoach configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Chat       ChatConfig       `toml:"chat"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds storage and session preferences.
type GeneralConfig struct {
	DataDir   string `toml:"data_dir,omitempty" env:"FINCOACH_DATA_DIR"`
	SessionID string `toml:"session_id,omitempty" env:"FINCOACH_SESSION"`
}

// ChatConfig holds conversation settings.
type ChatConfig struct {
	ReplyDelayMinMs int    `toml:"reply_delay_min_ms" env:"FINCOACH_REPLY_DELAY_MIN_MS"`
	ReplyDelayMaxMs int    `toml:"reply_delay_max_ms" env:"FINCOACH_REPLY_DELAY_MAX_MS"`
	HistoryFile     string `toml:"history_file,omitempty" env:"FINCOACH_HISTORY_FILE"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" env:"FINCOACH_THEME"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level string `toml:"level" env:"FINCOACH_LOG_LEVEL"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Chat: ChatConfig{
			ReplyDelayMinMs: 1000,
			ReplyDelayMaxMs: 2000,
		},
		Appearance: AppearanceConfig{
			Theme: "ledger",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fincoach")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fincoach")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist, then
// applies FINCOACH_* environment overrides.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom is Load for an explicit file path.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config file
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to an explicit path with owner-only permissions.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path is the user's own config file
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// DataDir returns the directory holding the session database. An explicit
// general.data_dir wins over the XDG default.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "fincoach")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "fincoach")
}

// DBPath returns the session database path.
func DBPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "fincoach.db")
}

// HistoryPath returns the readline history file for the chat REPL.
func HistoryPath(cfg Config) string {
	if cfg.Chat.HistoryFile != "" {
		return cfg.Chat.HistoryFile
	}
	return filepath.Join(DataDir(cfg), "chat_history")
}

// ReplyDelay returns the artificial reply pacing bounds. Negative values
// clamp to zero and an inverted range collapses to the minimum.
func (c ChatConfig) ReplyDelay() (lo, hi time.Duration) {
	minMs, maxMs := max(c.ReplyDelayMinMs, 0), max(c.ReplyDelayMaxMs, 0)
	if maxMs < minMs {
		maxMs = minMs
	}
	return time.Duration(minMs) * time.Millisecond, time.Duration(maxMs) * time.Millisecond
}
