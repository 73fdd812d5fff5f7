package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/docdyhr/mcp-wordpress-sub011/pkg/logging"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the multi-site config file looked up in the working
// directory when no explicit path is given. The YAML parser accepts the
// JSON form too, so an existing mcp-wordpress.config.json loads unchanged.
const DefaultConfigFile = "mcp-wordpress.config.json"

// Environment variable names for the single-site fallback.
const (
	EnvSiteURL     = "WORDPRESS_SITE_URL"
	EnvUsername    = "WORDPRESS_USERNAME"
	EnvAppPassword = "WORDPRESS_APP_PASSWORD"
	EnvPassword    = "WORDPRESS_PASSWORD"
	EnvAPIKey      = "WORDPRESS_API_KEY"
	EnvAuthMethod  = "WORDPRESS_AUTH_METHOD"
	EnvTimeoutMS   = "WORDPRESS_TIMEOUT_MS"
	EnvDebug       = "WORDPRESS_DEBUG"
)

// Load resolves the configuration. Resolution order:
//
//  1. An explicit config file path, which must exist and parse.
//  2. DefaultConfigFile in the working directory, if present.
//  3. A single implicit "default" site built from WORDPRESS_* environment
//     variables.
//
// Whatever the source, the result is a validated multi-site Config of
// size >= 1; the dispatcher never sees anything else.
func Load(path string) (Config, error) {
	if path != "" {
		return loadFile(path)
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return loadFile(DefaultConfigFile)
	}

	cfg, err := fromEnv()
	if err != nil {
		return Config{}, err
	}
	logging.Info("Config", "No config file found, using single-site configuration from environment")
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	logging.Info("Config", "Loaded %d site(s) from %s", len(cfg.Sites), path)
	return cfg, nil
}

// fromEnv builds the implicit single-site configuration. WORDPRESS_SITE_URL
// is the only hard requirement here; credential completeness is checked by
// the auth layer.
func fromEnv() (Config, error) {
	siteURL := os.Getenv(EnvSiteURL)
	if siteURL == "" {
		return Config{}, errors.New("no WordPress sites configured: provide a config file or set " + EnvSiteURL)
	}

	settings := Settings{
		URL:         siteURL,
		Username:    os.Getenv(EnvUsername),
		AppPassword: os.Getenv(EnvAppPassword),
		Password:    os.Getenv(EnvPassword),
		APIKey:      os.Getenv(EnvAPIKey),
		AuthMethod:  os.Getenv(EnvAuthMethod),
	}
	if raw := os.Getenv(EnvTimeoutMS); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s value %q: %w", EnvTimeoutMS, raw, err)
		}
		settings.TimeoutMS = ms
	}
	if raw := os.Getenv(EnvDebug); raw != "" {
		settings.Debug = raw == "true" || raw == "1"
	}

	cfg := Config{
		Sites: []Site{{
			ID:       DefaultSiteID,
			Name:     "Default Site",
			Settings: settings,
		}},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
