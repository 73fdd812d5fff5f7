package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the per-request timeout used when a site does not
	// configure one.
	DefaultTimeout = 30 * time.Second

	// DefaultAuthMethod is assumed when a site omits WORDPRESS_AUTH_METHOD.
	DefaultAuthMethod = "app-password"

	// DefaultSiteID is the id given to the implicit single site built from
	// environment variables.
	DefaultSiteID = "default"
)

// Config is the top-level configuration: one entry per WordPress site.
// It is built once at startup and treated as immutable afterwards.
type Config struct {
	Sites []Site `yaml:"sites"`
}

// Site is one independently-configured WordPress installation.
type Site struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Settings Settings `yaml:"config"`
}

// Settings carries the per-site connection values. The field keys mirror
// the environment variable names so the same vocabulary works for the
// multi-site config file and the single-site env fallback.
type Settings struct {
	URL         string `yaml:"WORDPRESS_SITE_URL"`
	Username    string `yaml:"WORDPRESS_USERNAME"`
	AppPassword string `yaml:"WORDPRESS_APP_PASSWORD"`
	Password    string `yaml:"WORDPRESS_PASSWORD"`
	APIKey      string `yaml:"WORDPRESS_API_KEY"`
	AuthMethod  string `yaml:"WORDPRESS_AUTH_METHOD"`
	TimeoutMS   int    `yaml:"WORDPRESS_TIMEOUT_MS"`
	Debug       bool   `yaml:"WORDPRESS_DEBUG"`
}

// Timeout returns the configured request timeout, defaulting to
// DefaultTimeout when unset.
func (s Settings) Timeout() time.Duration {
	if s.TimeoutMS <= 0 {
		return DefaultTimeout
	}
	return time.Duration(s.TimeoutMS) * time.Millisecond
}

// Method returns the configured auth method, defaulting to
// DefaultAuthMethod when unset.
func (s Settings) Method() string {
	if s.AuthMethod == "" {
		return DefaultAuthMethod
	}
	return s.AuthMethod
}

// BaseURL returns the site URL with any trailing slash removed.
func (s Settings) BaseURL() string {
	return strings.TrimRight(s.URL, "/")
}

// Validate checks the structural invariants of a site entry. Credential
// completeness is deliberately not checked here: the auth layer validates
// the fields its method needs at authentication time.
func (site Site) Validate() error {
	if site.ID == "" {
		return fmt.Errorf("site entry is missing an id")
	}
	if site.Name == "" {
		return fmt.Errorf("site %q is missing a name", site.ID)
	}
	if site.Settings.URL == "" {
		return fmt.Errorf("site %q is missing WORDPRESS_SITE_URL", site.ID)
	}
	parsed, err := url.Parse(site.Settings.URL)
	if err != nil {
		return fmt.Errorf("site %q has an invalid WORDPRESS_SITE_URL: %w", site.ID, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("site %q WORDPRESS_SITE_URL must use http or https, got %q", site.ID, parsed.Scheme)
	}
	return nil
}

// Validate checks the whole configuration: at least one site, every site
// structurally valid, and site ids unique.
func (c Config) Validate() error {
	if len(c.Sites) == 0 {
		return fmt.Errorf("no WordPress sites configured")
	}
	seen := make(map[string]bool, len(c.Sites))
	for _, site := range c.Sites {
		if err := site.Validate(); err != nil {
			return err
		}
		if seen[site.ID] {
			return fmt.Errorf("duplicate site id %q", site.ID)
		}
		seen[site.ID] = true
	}
	return nil
}
