package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Export ExportConfig
	Seed   SeedConfig
	Log    LogConfig
	Auth   AuthConfig
	UI     UIConfig
}

// ExportConfig controls where export artifacts are written.
type ExportConfig struct {
	Dir string
}

// SeedConfig points at an optional seed file; empty uses the built-in inventory.
type SeedConfig struct {
	Path  string
	Empty bool
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	File  string
}

// AuthConfig configures the login gate. An empty PasswordHash keeps the
// placeholder gate that accepts any submission.
type AuthConfig struct {
	Email        string
	PasswordHash string `mapstructure:"password_hash"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
}

// Load reads configuration from file and env. Env var overrides use prefix REVENDA_.
// path overrides the config file location; empty falls back to $REVENDA_CONFIG
// and then ~/.config/revenda/config.toml.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("export.dir", ".")
	v.SetDefault("seed.path", "")
	v.SetDefault("seed.empty", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", defaultLogFile())
	v.SetDefault("auth.email", "")
	v.SetDefault("auth.password_hash", "")
	v.SetDefault("ui.date_format", "02/01/2006")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("REVENDA_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "revenda"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("REVENDA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing config file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "revenda", "revenda.log")
}

// Path returns the config file Load reads when no explicit path is given.
func Path() string {
	if p := os.Getenv("REVENDA_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "revenda", "config.toml")
}

// SaveAuth stores the login credentials in the config file at path (or Path()
// when empty), creating the file and directory if needed. Only the keys already
// in the file are carried over; defaults and REVENDA_* overrides are never
// written. An empty a.Email keeps the stored e-mail.
func SaveAuth(path string, a AuthConfig) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read config: %w", err)
	}
	v.Set("auth.password_hash", a.PasswordHash)
	if a.Email != "" {
		v.Set("auth.email", a.Email)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
