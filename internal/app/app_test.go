package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicationLoadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sites:
  - id: prod
    name: Production
    config:
      WORDPRESS_SITE_URL: https://example.com
      WORDPRESS_USERNAME: admin
      WORDPRESS_APP_PASSWORD: "xxxx yyyy"
`), 0o600))

	a, err := NewApplication(&Config{ConfigPath: path, Version: "test"})
	require.NoError(t, err)
	assert.Equal(t, 1, a.sites.Len())
}

func TestNewApplicationFailsWithoutSites(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WORDPRESS_SITE_URL", "")

	_, err := NewApplication(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestNewApplicationRejectsUnknownTransport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sites:
  - id: prod
    name: Production
    config:
      WORDPRESS_SITE_URL: https://example.com
`), 0o600))

	_, err := NewApplication(&Config{ConfigPath: path, Transport: "websocket"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "websocket")
}
