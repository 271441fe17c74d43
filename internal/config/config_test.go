package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TOKEN_TTL", "not-a-duration")
	t.Setenv("NOTIFY_EMAILS", " a@example.com, ,b@example.com ")
	t.Setenv("MINIO_ENABLED", "true")
	t.Setenv("IMPORT_WORKERS", "x")

	LoadConfig()

	assert.Equal(t, "9090", ServerPort)
	assert.Equal(t, 24*time.Hour, TokenTTL)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, NotifyEmails)
	assert.True(t, MinioEnabled)
	assert.Equal(t, 4, ImportWorkers)
}
