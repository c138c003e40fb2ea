package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Blank out any ambient deployment variables so defaults are observable
	for _, key := range []string{"PORT", "MONGODB_URI", "MONGODB_DATABASE", "JWT_SECRET",
		"RAZORPAY_KEY_ID", "RAZORPAY_KEY_SECRET", "GEMINI_API_KEY", "GEMINI_MODEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "hackbridge", cfg.MongoDB.Database)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.False(t, cfg.Razorpay.Configured())
	assert.False(t, cfg.Gemini.Configured())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "5001")
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGODB_DATABASE", "hackbridge_staging")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_secret")
	t.Setenv("GEMINI_API_KEY", "gm_key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Server.Port)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.MongoDB.URI)
	assert.Equal(t, "hackbridge_staging", cfg.MongoDB.Database)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.True(t, cfg.Razorpay.Configured())
	assert.True(t, cfg.Gemini.Configured())
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
}
