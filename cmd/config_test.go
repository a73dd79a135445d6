package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "quickbite.payments", cfg.AMQPPaymentQueue)
	assert.Equal(t, 10*time.Minute, cfg.BacklogThreshold)
	assert.Empty(t, cfg.AMQPURL)
	assert.Equal(t, "postgres://postgres:@localhost:5432/quickbite?sslmode=disable", cfg.DSN())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
}

func TestLoadConfig_DotenvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("AMQP_PAYMENT_QUEUE=payments.test\nHTTP_PORT=7070\n"), 0o600))
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AMQP_PAYMENT_QUEUE", "")
	require.NoError(t, os.Unsetenv("AMQP_PAYMENT_QUEUE"))

	cfg, err := LoadConfig(file)

	require.NoError(t, err)
	assert.Equal(t, "payments.test", cfg.AMQPPaymentQueue)
	assert.Equal(t, "9090", cfg.HTTPPort, "the process environment wins over .env")
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
}
