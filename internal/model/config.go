package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Storage driver names.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// DefaultStorageKey is the key the project list is persisted under.
const DefaultStorageKey = "clients-data"

// StorageConfig selects and configures the durable key-value backend.
type StorageConfig struct {
	// Driver is "sqlite" or "redis".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Path is the SQLite database file.
	Path string `mapstructure:"path" yaml:"path"`

	// Key is the single key holding the serialized project list.
	Key string `mapstructure:"key" yaml:"key"`

	RedisAddr string `mapstructure:"redis_addr" yaml:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db" yaml:"redis_db"`
}

// ExportConfig holds backup file settings.
type ExportConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Export  ExportConfig  `mapstructure:"export" yaml:"export"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/devdesign-studio/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configHome(), "devdesign-studio", "config.yaml")
}

// DefaultDBPath returns ~/.local/share/devdesign-studio/studio.db.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "studio.db")
	}
	return filepath.Join(home, ".local", "share", "devdesign-studio", "studio.db")
}

// DefaultLogPath returns ~/.local/state/devdesign-studio/studio.log.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "studio.log")
	}
	return filepath.Join(home, ".local", "state", "devdesign-studio", "studio.log")
}

func configHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultAppConfig returns a sensible default configuration.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Storage: StorageConfig{
			Driver:    DriverSQLite,
			Path:      DefaultDBPath(),
			Key:       DefaultStorageKey,
			RedisAddr: "localhost:6379",
		},
		Export: ExportConfig{Dir: "."},
		Log: LogConfig{
			Level: "info",
			File:  DefaultLogPath(),
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	def := DefaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("storage.driver", def.Storage.Driver)
	v.SetDefault("storage.path", def.Storage.Path)
	v.SetDefault("storage.key", def.Storage.Key)
	v.SetDefault("storage.redis_addr", def.Storage.RedisAddr)
	v.SetDefault("storage.redis_db", 0)
	v.SetDefault("export.dir", def.Export.Dir)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return def, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return def, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	switch cfg.Storage.Driver {
	case DriverSQLite, DriverRedis:
	default:
		return nil, fmt.Errorf("config %s: unknown storage driver %q", path, cfg.Storage.Driver)
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = DefaultStorageKey
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("storage", cfg.Storage)
	v.Set("export", cfg.Export)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
