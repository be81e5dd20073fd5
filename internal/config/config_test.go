package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CAPSCAN_ADDR", "")
	t.Setenv("CAPSCAN_MAX_UPLOAD_BYTES", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, int64(defaultMaxUploadBytes), cfg.MaxUploadBytes)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CAPSCAN_ADDR", "127.0.0.1:9999")
	t.Setenv("CAPSCAN_MAX_UPLOAD_BYTES", "1024")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Addr)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
}

func TestLoadRejectsBadUploadLimit(t *testing.T) {
	t.Setenv("CAPSCAN_MAX_UPLOAD_BYTES", "lots")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("CAPSCAN_MAX_UPLOAD_BYTES", "-1")
	_, err = Load()
	require.Error(t, err)
}
