package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMAIL", " Admin@Example.com ")
	t.Setenv("ADMIN_PASSWORD", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, BackendPostgres, cfg.StoreBackend)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, 5, cfg.LoginMaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.LoginWindow)
	assert.Empty(t, cfg.TrustedProxies)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("STORE_BACKEND", "SQLite")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "0")
	t.Setenv("LOGIN_WINDOW", "0s")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, BackendSQLite, cfg.StoreBackend)
	assert.Equal(t, "booking.db", cfg.DBUrl)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 0, cfg.LoginMaxAttempts)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.TrustedProxies)
}

func TestLoadRejectsIncompleteConfig(t *testing.T) {
	cases := map[string]func(t *testing.T){
		"missing secret": func(t *testing.T) {
			setRequired(t)
			t.Setenv("JWT_SECRET", "")
		},
		"missing admin": func(t *testing.T) {
			setRequired(t)
			t.Setenv("ADMIN_EMAIL", "")
		},
		"missing password": func(t *testing.T) {
			setRequired(t)
			t.Setenv("ADMIN_PASSWORD", "")
		},
		"zero login window": func(t *testing.T) {
			setRequired(t)
			t.Setenv("LOGIN_WINDOW", "0s")
		},
		"negative login window": func(t *testing.T) {
			setRequired(t)
			t.Setenv("LOGIN_WINDOW", "-1m")
		},
		"unknown backend": func(t *testing.T) {
			setRequired(t)
			t.Setenv("STORE_BACKEND", "mongo")
		},
	}

	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			setup(t)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
