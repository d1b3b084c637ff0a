package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const ConfigFileName = "martgen.config.json"

type Config struct {
	Version  string   `json:"version" mapstructure:"version"`
	DataDir  string   `json:"data_dir" mapstructure:"data_dir"`
	Database Database `json:"database" mapstructure:"database"`
	Generate Generate `json:"generate" mapstructure:"generate"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
	// Path is the sqlite database file, used when the URL env var is unset.
	Path string `json:"path,omitempty" mapstructure:"path"`
}

type Generate struct {
	Rows int   `json:"rows" mapstructure:"rows"`
	Seed int64 `json:"seed,omitempty" mapstructure:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		DataDir: "data",
		Database: Database{
			Provider: "sqlite",
			URLEnv:   "DATABASE_URL",
			Path:     "database/ecommerce.db",
		},
		Generate: Generate{
			Rows: 200,
		},
	}
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	defaults := DefaultConfig()
	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = defaults.Database.Provider
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = defaults.Database.URLEnv
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = defaults.Database.Path
	}
	if cfg.Generate.Rows == 0 {
		cfg.Generate.Rows = defaults.Generate.Rows
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"sqlite", "sqlite3", "postgresql", "postgres", "mysql"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	if c.Generate.Rows < 0 {
		return fmt.Errorf("generate.rows cannot be negative")
	}

	return nil
}

// GetDatabaseURL resolves the connection string: the configured environment
// variable first, then the sqlite file path for sqlite providers.
func (c *Config) GetDatabaseURL() (string, error) {
	if dbURL := os.Getenv(c.Database.URLEnv); dbURL != "" {
		return dbURL, nil
	}
	if IsSQLite(c.Database.Provider) && c.Database.Path != "" {
		return c.Database.Path, nil
	}
	return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
}

func IsSQLite(provider string) bool {
	return provider == "sqlite" || provider == "sqlite3"
}

func (c *Config) EnsureDirectories() error {
	if c.DataDir == "" || c.DataDir == "." {
		return nil
	}
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.DataDir, err)
	}
	return nil
}

// IsInitialized reports whether a config file exists in the working
// directory.
func IsInitialized() bool {
	_, err := os.Stat(ConfigFileName)
	return err == nil
}

// InitializeProject writes the default config file and creates the data
// directory. It refuses to overwrite an existing config.
func InitializeProject() error {
	if IsInitialized() {
		return fmt.Errorf("project already initialized: %s exists", ConfigFileName)
	}

	cfg := DefaultConfig()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(ConfigFileName, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ConfigFileName, err)
	}

	return cfg.EnsureDirectories()
}
