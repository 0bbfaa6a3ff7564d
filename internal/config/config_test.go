package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "FOLIO_API_BASE_URL", "FOLIO_DEFAULT_EMAIL", "FOLIO_FETCH_TIMEOUT_SEC", "FOLIO_DB_PATH", "FOLIO_TITLE"} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOLIO_API_BASE_URL", "https://api.example.com")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DefaultEmail, cfg.DefaultEmail)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "folio.db", cfg.DBPath)
	assert.True(t, cfg.TrackingEnabled())
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("FOLIO_API_BASE_URL", "http://localhost:8000")
	t.Setenv("FOLIO_DEFAULT_EMAIL", "me@example.com")
	t.Setenv("FOLIO_FETCH_TIMEOUT_SEC", "5")
	t.Setenv("FOLIO_DB_PATH", TrackingOff)
	t.Setenv("FOLIO_TITLE", "Jane Doe")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "me@example.com", cfg.DefaultEmail)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.False(t, cfg.TrackingEnabled())
	assert.Equal(t, "Jane Doe", cfg.Title)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing base url", env: map[string]string{}},
		{name: "bad base url", env: map[string]string{"FOLIO_API_BASE_URL": "not a url"}},
		{name: "bad port", env: map[string]string{"FOLIO_API_BASE_URL": "http://x.io", "PORT": "http"}},
		{name: "bad email", env: map[string]string{"FOLIO_API_BASE_URL": "http://x.io", "FOLIO_DEFAULT_EMAIL": "nope"}},
		{name: "bad timeout", env: map[string]string{"FOLIO_API_BASE_URL": "http://x.io", "FOLIO_FETCH_TIMEOUT_SEC": "soon"}},
		{name: "zero timeout", env: map[string]string{"FOLIO_API_BASE_URL": "http://x.io", "FOLIO_FETCH_TIMEOUT_SEC": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient(3 * time.Second)
	assert.Equal(t, 3*time.Second, c.Timeout)
	assert.NotNil(t, c.Transport)
}
