package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "identity.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, ModeHeaders, cfg.Auth.Mode)
	assert.Equal(t, "auth0", cfg.Auth.DefaultProvider)
	assert.Equal(t, ":4000", cfg.Server.Listen)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	p := writeTOML(t, `
[auth]
enabled = true
mode = " Assertion "
assertion_header = "X-Identity-Token"

[server]
listen = ":8080"
`)
	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, ModeAssertion, cfg.Auth.Mode)
	assert.Equal(t, "X-Identity-Token", cfg.Auth.AssertionHeader)
	assert.Equal(t, "X-Auth0-User-Id", cfg.Auth.UserIDHeader)
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30000, cfg.Server.WriteTimeoutMS)
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "config.example.toml"))
	require.NoError(t, err)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, ModeHeaders, cfg.Auth.Mode)
	assert.Equal(t, "log", cfg.Log.Dir)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = LoadConfig(writeTOML(t, "[auth\nenabled = true"))
	require.Error(t, err)

	_, err = LoadConfig(writeTOML(t, "[auth]\nmode = \"saml\"\n"))
	require.ErrorContains(t, err, "auth.mode")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"headers without user id header", func(c *Config) { c.Auth.UserIDHeader = " " }, "user_id_header"},
		{"assertion without header", func(c *Config) {
			c.Auth.Mode = ModeAssertion
			c.Auth.AssertionHeader = ""
		}, "assertion_header"},
		{"chain without assertion header", func(c *Config) {
			c.Auth.Mode = ModeChain
			c.Auth.AssertionHeader = ""
		}, "chain mode"},
		{"empty default provider", func(c *Config) { c.Auth.DefaultProvider = "" }, "default_provider"},
		{"empty listen", func(c *Config) { c.Server.Listen = "" }, "server.listen"},
		{"cert without key", func(c *Config) { c.Server.TLSCert = "cert.pem" }, "tls_key"},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeoutMS = -1 }, "timeouts"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			require.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestResolveAppliesEnv(t *testing.T) {
	p := writeTOML(t, "[auth]\nenabled = false\n")
	t.Setenv(EnvEnabled, "true")
	t.Setenv(EnvDevBypass, "1")
	t.Setenv(EnvListen, "127.0.0.1:9000")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg, err := Resolve(p)
	require.NoError(t, err)
	assert.True(t, cfg.Auth.Enabled)
	assert.True(t, cfg.Auth.DevBypass)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Listen)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestResolveUsesConfigPathEnv(t *testing.T) {
	p := writeTOML(t, "[server]\nlisten = \":7000\"\n")
	t.Setenv(EnvConfigPath, p)

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Listen)
}

func TestResolveRejectsBadBool(t *testing.T) {
	t.Setenv(EnvEnabled, "maybe")
	_, err := Resolve("")
	require.ErrorContains(t, err, EnvEnabled)
}
