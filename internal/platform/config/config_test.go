package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, []string{"en", "da", "auto"}, cfg.Languages)
	assert.Equal(t, 20, cfg.SearchLimit)
	assert.Equal(t, 12, cfg.CandidateCap)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PERSONLINK_ADDR", ":9999")
	t.Setenv("PERSONLINK_LANGUAGES", "de, fr ,auto")
	t.Setenv("PERSONLINK_UPSTREAM_TIMEOUT", "2s")
	t.Setenv("PERSONLINK_CANDIDATE_CAP", "6")

	cfg := FromEnv()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, []string{"de", "fr", "auto"}, cfg.Languages)
	assert.Equal(t, 2*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 6, cfg.CandidateCap)
}

func TestFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("PERSONLINK_UPSTREAM_TIMEOUT", "not-a-duration")
	t.Setenv("PERSONLINK_SEARCH_LIMIT", "-3")

	cfg := FromEnv()

	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 20, cfg.SearchLimit)
}
