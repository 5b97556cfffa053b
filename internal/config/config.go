// Package config loads the configuration for the paycheck planner.
//
// Values are layered: defaults, then the TOML config file, then a .env file
// in the working directory, then environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvConfigPath is the environment variable that points to the config file
// if no path is given explicitly.
const EnvConfigPath = "PAYCHECK_CONFIG"

var ErrAPIURLInvalid = errors.New("the API URL must be a valid absolute URL")

// Config holds all configuration.
type Config struct {
	APIURL           string         `toml:"api_url"`
	GinMode          string         `toml:"gin_mode,omitempty"`
	LogFormat        string         `toml:"log_format,omitempty"`
	CORSAllowOrigins []string       `toml:"cors_allow_origins,omitempty"`
	EnablePprof      bool           `toml:"enable_pprof"`
	Port             string         `toml:"port"`
	Locale           string         `toml:"locale"`
	Database         DatabaseConfig `toml:"database"`
}

// DatabaseConfig selects the database. If Host is set, PostgreSQL is used,
// otherwise the SQLite database at Path.
type DatabaseConfig struct {
	Path     string `toml:"path"`
	Host     string `toml:"host,omitempty"`
	User     string `toml:"user,omitempty"`
	Password string `toml:"password,omitempty"`
	Name     string `toml:"name,omitempty"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		APIURL: "http://localhost:8080",
		Port:   "8080",
		Locale: "en-US",
		Database: DatabaseConfig{
			Path: "data/paycheck.db",
		},
	}
}

// Load reads the configuration.
//
// If path is empty, the file named by PAYCHECK_CONFIG is used. A missing
// config file is only an error if a path was given.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
	}

	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	// Variables from .env do not override the environment
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("reading .env: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides values with the ones set in the environment.
func (c *Config) applyEnv() {
	lookup := func(key string, target *string) {
		if v, ok := os.LookupEnv(key); ok {
			*target = v
		}
	}

	lookup("API_URL", &c.APIURL)
	lookup("GIN_MODE", &c.GinMode)
	lookup("LOG_FORMAT", &c.LogFormat)
	lookup("PORT", &c.Port)
	lookup("LOCALE", &c.Locale)
	lookup("DB_PATH", &c.Database.Path)
	lookup("DB_HOST", &c.Database.Host)
	lookup("DB_USER", &c.Database.User)
	lookup("DB_PASSWORD", &c.Database.Password)
	lookup("DB_NAME", &c.Database.Name)

	if v, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		c.CORSAllowOrigins = strings.Fields(v)
	}

	if v, ok := os.LookupEnv("ENABLE_PPROF"); ok {
		c.EnablePprof = v == "true"
	}
}

// URL returns the parsed API URL.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(strings.TrimSuffix(c.APIURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrAPIURLInvalid, c.APIURL)
	}

	return u, nil
}

// Postgres reports if PostgreSQL is configured.
func (d DatabaseConfig) Postgres() bool {
	return d.Host != ""
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s", d.Host, d.User, d.Password, d.Name)
}
