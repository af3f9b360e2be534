package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  http-port: :9100
`)

	cfg, realpath, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, realpath)

	// 显式配置生效
	assert.Equal(t, ":9100", cfg.Server.HttpPort)

	// 未出现的字段回落到默认值
	assert.Equal(t, "release", cfg.Server.RunMode)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "verify", cfg.Security.AuthMode)
	assert.Equal(t, "dev-user", cfg.Security.StaticIdentity)
	assert.False(t, cfg.Security.TokenMintEnable)
	assert.Equal(t, "gpt-3.5-turbo", cfg.Summarizer.Model)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigAuthMode(t *testing.T) {
	path := writeConfig(t, `
security:
  auth-mode: static
  static-identity: ci-user
  token-mint-enable: true
`)

	cfg, _, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "static", cfg.Security.AuthMode)
	assert.Equal(t, "ci-user", cfg.Security.StaticIdentity)
	assert.True(t, cfg.Security.TokenMintEnable)
}

func TestGetTokenExpiry(t *testing.T) {
	path := writeConfig(t, `
security:
  token-expiry: 7d
`)

	cfg, _, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, cfg.GetTokenExpiry())
}

func TestGetSummarizerTimeout(t *testing.T) {
	path := writeConfig(t, `
summarizer:
  timeout: 30s
`)

	cfg, _, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.GetSummarizerTimeout())
}
