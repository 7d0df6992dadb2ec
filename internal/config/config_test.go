package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("SERVER_PORT", "")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, ":5555", cfg.Addr())
	assert.Contains(t, cfg.CORSAllowedOrigins, "http://localhost:5173")
	assert.Equal(t, "174379", cfg.Mpesa.ShortCode)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , https://b.example,")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("MPESA_BASE_URL", "https://api.safaricom.co.ke/")
	t.Setenv("DATABASE_URL", "memory://")

	cfg := Load()

	assert.Equal(t, time.Duration(0), cfg.JWTTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, "https://api.safaricom.co.ke", cfg.Mpesa.BaseURL)
	assert.True(t, cfg.UsesMemoryStore())
	assert.False(t, cfg.S3.Enabled())
}
