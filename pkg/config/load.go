package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Environment keys that override file settings.
const (
	EnvConfigPath = "STEEZE_IDENTITY_CONFIG"
	EnvEnabled    = "AUTH0_AUTH_ENABLED"
	EnvDevBypass  = "AUTH_DEV_BYPASS"
	EnvMode       = "AUTH_HEADER_MODE"
	EnvListen     = "SERVER_LISTEN_ADDRESS"
	EnvTLSCert    = "SSL_SERVER_CERTIFICATE"
	EnvTLSKey     = "SSL_SERVER_KEY"
	EnvLogDir     = "LOG_DIR"
	EnvLogLevel   = "LOG_LEVEL"
)

// LoadConfig reads a TOML file on top of Default. It does not consult the environment.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads .env files (if any), then the TOML file at path (empty path
// means defaults only), then applies environment overrides.
func Resolve(path string) (Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return Config{}, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overlays the supported environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	if v, ok, err := envBool(EnvEnabled); err != nil {
		return err
	} else if ok {
		cfg.Auth.Enabled = v
	}
	if v, ok, err := envBool(EnvDevBypass); err != nil {
		return err
	} else if ok {
		cfg.Auth.DevBypass = v
	}
	cfg.Auth.Mode = envOr(EnvMode, cfg.Auth.Mode)
	cfg.Server.Listen = envOr(EnvListen, cfg.Server.Listen)
	cfg.Server.TLSCert = envOr(EnvTLSCert, cfg.Server.TLSCert)
	cfg.Server.TLSKey = envOr(EnvTLSKey, cfg.Server.TLSKey)
	cfg.Log.Dir = envOr(EnvLogDir, cfg.Log.Dir)
	cfg.Log.Level = envOr(EnvLogLevel, cfg.Log.Level)
	return nil
}

func envOr(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envBool(k string) (bool, bool, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return false, false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false, fmt.Errorf("%s: %w", k, err)
	}
	return b, true, nil
}
