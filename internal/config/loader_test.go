package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMultiSiteYAML(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
sites:
  - id: prod
    name: Production
    config:
      WORDPRESS_SITE_URL: https://example.com
      WORDPRESS_USERNAME: admin
      WORDPRESS_APP_PASSWORD: "xxxx yyyy zzzz"
  - id: staging
    name: Staging
    config:
      WORDPRESS_SITE_URL: https://staging.example.com
      WORDPRESS_USERNAME: editor
      WORDPRESS_APP_PASSWORD: "aaaa bbbb cccc"
      WORDPRESS_AUTH_METHOD: jwt
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Sites, 2)

	assert.Equal(t, "prod", cfg.Sites[0].ID)
	assert.Equal(t, "https://example.com", cfg.Sites[0].Settings.BaseURL())
	assert.Equal(t, "app-password", cfg.Sites[0].Settings.Method())
	assert.Equal(t, "jwt", cfg.Sites[1].Settings.Method())
}

func TestLoadJSONForm(t *testing.T) {
	// The original deployments ship a JSON config file; yaml.v3 parses it.
	path := writeConfigFile(t, "mcp-wordpress.config.json", `{
  "sites": [
    {
      "id": "main",
      "name": "Main Site",
      "config": {
        "WORDPRESS_SITE_URL": "https://blog.example.com",
        "WORDPRESS_USERNAME": "admin",
        "WORDPRESS_APP_PASSWORD": "secret"
      }
    }
  ]
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Sites, 1)
	assert.Equal(t, "main", cfg.Sites[0].ID)
	assert.Equal(t, "https://blog.example.com", cfg.Sites[0].Settings.URL)
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "no sites",
			content: `sites: []`,
			errMsg:  "no WordPress sites configured",
		},
		{
			name: "missing id",
			content: `
sites:
  - name: Production
    config:
      WORDPRESS_SITE_URL: https://example.com
`,
			errMsg: "missing an id",
		},
		{
			name: "missing name",
			content: `
sites:
  - id: prod
    config:
      WORDPRESS_SITE_URL: https://example.com
`,
			errMsg: "missing a name",
		},
		{
			name: "missing url",
			content: `
sites:
  - id: prod
    name: Production
    config:
      WORDPRESS_USERNAME: admin
`,
			errMsg: "WORDPRESS_SITE_URL",
		},
		{
			name: "duplicate ids",
			content: `
sites:
  - id: prod
    name: One
    config:
      WORDPRESS_SITE_URL: https://one.example.com
  - id: prod
    name: Two
    config:
      WORDPRESS_SITE_URL: https://two.example.com
`,
			errMsg: "duplicate site id",
		},
		{
			name: "bad scheme",
			content: `
sites:
  - id: prod
    name: Production
    config:
      WORDPRESS_SITE_URL: ftp://example.com
`,
			errMsg: "http or https",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, "config.yaml", tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadEnvFallback(t *testing.T) {
	t.Setenv(EnvSiteURL, "https://env.example.com/")
	t.Setenv(EnvUsername, "envuser")
	t.Setenv(EnvAppPassword, "env secret")
	t.Setenv(EnvTimeoutMS, "5000")

	// Run from an empty directory so no default config file is picked up.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Len(t, cfg.Sites, 1)

	site := cfg.Sites[0]
	assert.Equal(t, DefaultSiteID, site.ID)
	assert.Equal(t, "https://env.example.com", site.Settings.BaseURL())
	assert.Equal(t, "envuser", site.Settings.Username)
	assert.Equal(t, 5000, site.Settings.TimeoutMS)
}

func TestLoadEnvFallbackRequiresURL(t *testing.T) {
	t.Setenv(EnvSiteURL, "")
	t.Chdir(t.TempDir())

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvSiteURL)
}

func TestSettingsDefaults(t *testing.T) {
	var s Settings
	assert.Equal(t, DefaultTimeout, s.Timeout())
	assert.Equal(t, DefaultAuthMethod, s.Method())
}
