package config

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultEmail is the public profile shown when a visitor names nobody.
const DefaultEmail = "paarthgala1@gmail.com"

// TrackingOff disables visitor tracking when used as FOLIO_DB_PATH.
const TrackingOff = "off"

// Config holds all application configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string `validate:"required,numeric"`

	// APIBaseURL is the scheme + host (and optional base path) of the
	// portfolio API, e.g. https://api.example.com.
	APIBaseURL string `validate:"required,url"`

	// DefaultEmail is substituted when the page URL carries neither email
	// nor mobile.
	DefaultEmail string `validate:"required,email"`

	// FetchTimeout bounds each API request.
	FetchTimeout time.Duration `validate:"gt=0"`

	// DBPath is the SQLite file for visitor tracking, or "off".
	DBPath string `validate:"required"`

	// Title of the rendered page.
	Title string
}

// TrackingEnabled reports whether visitor tracking should run.
func (c Config) TrackingEnabled() bool {
	return c.DBPath != TrackingOff
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

var validate = validator.New()

// FromEnv loads configuration from environment variables. A .env file is
// loaded by the caller through godotenv/autoload.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:         getenv("PORT", "8080"),
		APIBaseURL:   os.Getenv("FOLIO_API_BASE_URL"),
		DefaultEmail: getenv("FOLIO_DEFAULT_EMAIL", DefaultEmail),
		FetchTimeout: 30 * time.Second,
		DBPath:       getenv("FOLIO_DB_PATH", "folio.db"),
		Title:        getenv("FOLIO_TITLE", "Portfolio"),
	}

	if s := os.Getenv("FOLIO_FETCH_TIMEOUT_SEC"); s != "" {
		sec, err := strconv.Atoi(s)
		if err != nil {
			return Config{}, fmt.Errorf("FOLIO_FETCH_TIMEOUT_SEC: %w", err)
		}
		cfg.FetchTimeout = time.Duration(sec) * time.Second
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewHTTPClient returns the client used for API requests.
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
