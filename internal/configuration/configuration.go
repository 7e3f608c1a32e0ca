package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/malonaz/pantry/internal/file"
)

// Storage drivers.
const (
	StorageDriverBolt   = "bolt"
	StorageDriverSQLite = "sqlite"
	StorageDriverMemory = "memory"
)

var defaultConfig = Config{
	BackendURL:     "http://localhost:8000",
	RequestTimeout: 30,
	DebugLogFile:   "/tmp/pantry-debug.log",

	Storage: StorageConfig{
		Driver: StorageDriverSQLite,
		Path:   "~/.config/pantry/pantry.db",
		Key:    "chatHistory",
	},

	Chat: ChatConfig{
		InputHistoryFile: "~/.config/pantry/input_history",
		MaxInputHistory:  1000,
	},
}

// Config holds configuration for the pantry tool.
type Config struct {
	// Base URL of the pantry backend exposing /items and /expiry.
	BackendURL string `json:"backend_url" env:"PANTRY_BACKEND_URL"`
	// Request timeout in seconds.
	RequestTimeout int    `json:"request_timeout" env:"PANTRY_REQUEST_TIMEOUT"`
	DebugLogFile   string `json:"debug_log_file" env:"PANTRY_DEBUG_LOG_FILE"`

	Storage StorageConfig `json:"storage"`
	Chat    ChatConfig    `json:"chat"`
}

// StorageConfig holds configuration for the local conversation storage.
type StorageConfig struct {
	// One of bolt, sqlite or memory.
	Driver string `json:"driver" env:"PANTRY_STORAGE_DRIVER"`
	// Path of the database file.
	Path string `json:"path" env:"PANTRY_STORAGE_PATH"`
	// The key under which the conversation is stored.
	Key string `json:"key"`
}

// ChatConfig holds configuration for pantry chat.
type ChatConfig struct {
	// File where submitted inputs are remembered for history navigation.
	InputHistoryFile string `json:"input_history_file"`
	// Maximum number of remembered inputs.
	MaxInputHistory int `json:"max_input_history"`
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// Parse a configuration file. Missing fields are filled with defaults and
// PANTRY_* environment variables (optionally from a .env file) take precedence.
func Parse(path string) (*Config, error) {
	path, err := file.ExpandPath(path)
	if err != nil {
		return nil, errors.Wrap(err, "expanding path")
	}

	if err := initializeIfNotPresent(path); err != nil {
		return nil, errors.Wrap(err, "initializing configuration")
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	config := &Config{}
	if err = json.Unmarshal(bytes, config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling into config")
	}
	return finalize(config)
}

// Default returns the default configuration with environment overrides applied.
func Default() (*Config, error) {
	return finalize(&Config{})
}

func finalize(config *Config) (*Config, error) {
	if err := mergo.Merge(config, defaultConfig); err != nil {
		return nil, errors.Wrap(err, "merging default config")
	}

	// A missing .env file is not an error.
	_ = godotenv.Load()
	if err := env.Parse(config); err != nil {
		return nil, errors.Wrap(err, "parsing environment")
	}

	switch config.Storage.Driver {
	case StorageDriverBolt, StorageDriverSQLite, StorageDriverMemory:
	default:
		return nil, errors.Errorf("unknown storage driver %q", config.Storage.Driver)
	}
	if config.RequestTimeout <= 0 {
		return nil, errors.Errorf("request timeout must be positive, got %d", config.RequestTimeout)
	}

	expandedStoragePath, err := file.ExpandPath(config.Storage.Path)
	if err != nil {
		return nil, errors.Wrap(err, "expanding storage path")
	}
	config.Storage.Path = expandedStoragePath

	expandedHistoryPath, err := file.ExpandPath(config.Chat.InputHistoryFile)
	if err != nil {
		return nil, errors.Wrap(err, "expanding input history path")
	}
	config.Chat.InputHistoryFile = expandedHistoryPath
	return config, nil
}

// save a configuration file.
func (c *Config) save(path string) error {
	bytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	err = os.WriteFile(path, bytes, 0644)
	if err != nil {
		return errors.Wrap(err, "writing file")
	}

	return nil
}

// initializeIfNotPresent initializes a config if it does not exist.
func initializeIfNotPresent(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	// Create the directories.
	dir, _ := filepath.Split(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating folders")
	}

	if err := defaultConfig.save(path); err != nil {
		return errors.Wrap(err, "saving default config")
	}
	return nil
}
