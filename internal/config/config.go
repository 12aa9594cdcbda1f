package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config carries the process configuration for the web front-end.
// All values come from AXISELECT_WEB_* environment variables; the listen
// address and asset/template directories may additionally be overridden by
// flags in main.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`
	Env  string `env:"ENV" envDefault:"dev"`

	// BackendURL is the base URL of the hosted data platform. REST reads go to
	// {BackendURL}/rest/v1/... and RPCs to {BackendURL}/functions/v1/...
	// Empty means the built-in sample data is served (local development).
	BackendURL string `env:"BACKEND_URL"`
	// BackendKey is the static API key sent as both the apikey header and the
	// bearer token. Required whenever BackendURL is set.
	BackendKey string `env:"BACKEND_KEY"`

	// DefaultChannel seeds channel resolution when neither the URL nor the
	// visitor's session carries a channel. Invalid values are ignored.
	DefaultChannel string `env:"CHANNEL"`

	SessionSigningKey string `env:"SESSION_SIGNING_KEY"`

	TemplatesDir string `env:"TEMPLATES_DIR" envDefault:"templates"`
	PublicDir    string `env:"PUBLIC_DIR" envDefault:"public"`
	LocalesDir   string `env:"LOCALES_DIR" envDefault:"locales"`
	PromoFile    string `env:"PROMO_FILE"`
}

// ErrBackendKeyMissing indicates a backend URL without its API key, which
// would make every data call fail with an auth error. Treated as fatal at
// startup so the misconfiguration is caught before the first visitor.
var ErrBackendKeyMissing = errors.New("config: AXISELECT_WEB_BACKEND_KEY is required when AXISELECT_WEB_BACKEND_URL is set")

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "AXISELECT_WEB_"}); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	cfg.BackendURL = strings.TrimRight(strings.TrimSpace(cfg.BackendURL), "/")
	cfg.BackendKey = strings.TrimSpace(cfg.BackendKey)
	if cfg.BackendURL != "" && cfg.BackendKey == "" {
		return Config{}, ErrBackendKeyMissing
	}
	return cfg, nil
}

// Prod reports whether the process runs with production hardening (secure
// cookies, cached templates).
func (c Config) Prod() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "prod")
}
