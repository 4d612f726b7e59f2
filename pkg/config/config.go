// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Extraction modes for the identity collaborator.
const (
	ModeHeaders   = "headers"
	ModeAssertion = "assertion"
	ModeChain     = "chain"
)

type Config struct {
	Auth   AuthConfig   `toml:"auth"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

type AuthConfig struct {
	Enabled         bool   `toml:"enabled"`
	DevBypass       bool   `toml:"dev_bypass"` // NEVER enable in prod
	Mode            string `toml:"mode"`       // "headers" | "assertion" | "chain"
	DefaultProvider string `toml:"default_provider"`

	UserIDHeader    string `toml:"user_id_header"`
	UserNameHeader  string `toml:"user_name_header"`
	ProviderHeader  string `toml:"provider_header"`
	AssertionHeader string `toml:"assertion_header"`
}

type ServerConfig struct {
	Listen         string `toml:"listen"`
	TLSCert        string `toml:"tls_cert"`
	TLSKey         string `toml:"tls_key"`
	ReadTimeoutMS  int    `toml:"read_timeout_ms"`
	WriteTimeoutMS int    `toml:"write_timeout_ms"`
	IdleTimeoutMS  int    `toml:"idle_timeout_ms"`
}

type LogConfig struct {
	Dir   string `toml:"dir"`
	Level string `toml:"level"` // zap level name
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Auth: AuthConfig{
			Enabled:         false,
			Mode:            ModeHeaders,
			DefaultProvider: "auth0",
			UserIDHeader:    "X-Auth0-User-Id",
			UserNameHeader:  "X-Auth0-User-Name",
			ProviderHeader:  "X-Auth0-Provider",
			AssertionHeader: "X-Auth0-Assertion",
		},
		Server: ServerConfig{
			Listen:         ":4000",
			ReadTimeoutMS:  15000,
			WriteTimeoutMS: 30000,
			IdleTimeoutMS:  60000,
		},
		Log: LogConfig{
			Dir:   "log",
			Level: "info",
		},
	}
}

func (c *Config) normalize() {
	c.Auth.Mode = strings.ToLower(strings.TrimSpace(c.Auth.Mode))
	if c.Auth.Mode == "" {
		c.Auth.Mode = ModeHeaders
	}
	c.Auth.DefaultProvider = strings.TrimSpace(c.Auth.DefaultProvider)
	c.Auth.UserIDHeader = strings.TrimSpace(c.Auth.UserIDHeader)
	c.Auth.UserNameHeader = strings.TrimSpace(c.Auth.UserNameHeader)
	c.Auth.ProviderHeader = strings.TrimSpace(c.Auth.ProviderHeader)
	c.Auth.AssertionHeader = strings.TrimSpace(c.Auth.AssertionHeader)
	c.Server.Listen = strings.TrimSpace(c.Server.Listen)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

// Validate normalizes c in place and reports the first invalid setting.
func (c *Config) Validate() error {
	c.normalize()

	switch c.Auth.Mode {
	case ModeHeaders:
		if c.Auth.UserIDHeader == "" {
			return errors.New("auth.user_id_header is required for headers mode")
		}
	case ModeAssertion:
		if c.Auth.AssertionHeader == "" {
			return errors.New("auth.assertion_header is required for assertion mode")
		}
	case ModeChain:
		if c.Auth.UserIDHeader == "" || c.Auth.AssertionHeader == "" {
			return errors.New("auth.user_id_header and auth.assertion_header are required for chain mode")
		}
	default:
		return fmt.Errorf("auth.mode %q invalid", c.Auth.Mode)
	}
	if c.Auth.DefaultProvider == "" {
		return errors.New("auth.default_provider must not be empty")
	}

	if c.Server.Listen == "" {
		return errors.New("server.listen is required")
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		return errors.New("server.tls_cert and server.tls_key must be set together")
	}
	if c.Server.ReadTimeoutMS < 0 || c.Server.WriteTimeoutMS < 0 || c.Server.IdleTimeoutMS < 0 {
		return errors.New("server timeouts must be >= 0")
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q invalid", c.Log.Level)
	}
	return nil
}
