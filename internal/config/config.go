package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"

	LedgerStatic = "static"
	LedgerSQLite = "sqlite"
)

type Config struct {
	DBPath       string `json:"db_path"`
	BoltPath     string `json:"bolt_path"`
	Backend      string `json:"backend"`
	LedgerSource string `json:"ledger_source"`
	Currency     string `json:"currency"`
	WebEnabled   bool   `json:"web_enabled"`
	WebPort      int    `json:"web_port"`
	LogLevel     string `json:"log_level"`
	LogEncoding  string `json:"log_encoding"`
	LogPath      string `json:"log_path"`
}

func Default() Config {
	return Config{
		Backend:      BackendSQLite,
		LedgerSource: LedgerStatic,
		Currency:     "RM",
		WebPort:      8080,
		LogLevel:     "info",
		LogEncoding:  "json",
	}
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "lazypocket", "config.json"), nil
}

func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

// Load reads the config file at path. A missing file yields the defaults.
// Environment overrides are applied separately by WithEnv so they never end
// up in the saved file.
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}
	if err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	return config, nil
}

// WithEnv returns a copy of c with .env and LAZYPOCKET_* overrides applied.
func (c Config) WithEnv() Config {
	_ = godotenv.Load(".env")
	applyEnv(&c)
	return c
}

func Save(path string, cfg Config) error {
	if err := EnsureDir(path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// ResolvePaths fills empty file locations with siblings of the config file.
func (c *Config) ResolvePaths(configPath string) {
	dir := filepath.Dir(configPath)
	if c.DBPath == "" {
		c.DBPath = filepath.Join(dir, "lazypocket.db")
	}
	if c.BoltPath == "" {
		c.BoltPath = filepath.Join(dir, "lazypocket.bolt")
	}
	if c.LogPath == "" {
		c.LogPath = filepath.Join(dir, "lazypocket.log")
	}
}

func (c Config) Validate() error {
	var problems []string

	switch c.Backend {
	case BackendSQLite, BackendBolt:
	default:
		problems = append(problems, fmt.Sprintf("invalid backend %q: must be %s or %s", c.Backend, BackendSQLite, BackendBolt))
	}

	switch c.LedgerSource {
	case LedgerStatic, LedgerSQLite:
	default:
		problems = append(problems, fmt.Sprintf("invalid ledger source %q: must be %s or %s", c.LedgerSource, LedgerStatic, LedgerSQLite))
	}

	if c.WebPort < 1 || c.WebPort > 65535 {
		problems = append(problems, fmt.Sprintf("invalid web port %d: must be between 1 and 65535", c.WebPort))
	}

	if strings.TrimSpace(c.Currency) == "" {
		problems = append(problems, "currency prefix is required")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

func applyEnv(c *Config) {
	c.DBPath = getString("LAZYPOCKET_DB_PATH", c.DBPath)
	c.BoltPath = getString("LAZYPOCKET_BOLT_PATH", c.BoltPath)
	c.Backend = getString("LAZYPOCKET_BACKEND", c.Backend)
	c.LedgerSource = getString("LAZYPOCKET_LEDGER_SOURCE", c.LedgerSource)
	c.Currency = getString("LAZYPOCKET_CURRENCY", c.Currency)
	c.WebEnabled = getBool("LAZYPOCKET_WEB_ENABLED", c.WebEnabled)
	c.WebPort = getInt("LAZYPOCKET_WEB_PORT", c.WebPort)
	c.LogLevel = getString("LAZYPOCKET_LOG_LEVEL", c.LogLevel)
	c.LogEncoding = getString("LAZYPOCKET_LOG_ENCODING", c.LogEncoding)
	c.LogPath = getString("LAZYPOCKET_LOG_PATH", c.LogPath)
}

func getString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}
