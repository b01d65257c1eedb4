package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config is parsed", func(t *testing.T) {
		path := writeConfigFile(t, `
[server]
http_port = 9090
read_timeout = 20
shutdown_timeout = 5

[database]
host = "db.internal"
port = 5433
user = "booking"
password = "secret"
dbname = "consult_booking"
sslmode = "require"
max_open_conns = 50

[logs]
file = "logs/service.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "consult-booking"

[telegram]
enabled = true
token = "123:abc"
admin_chat_id = 4242

[smtp]
enabled = true
host = "smtp.yandex.ru"
port = 465
username = "notify@example.com"
password = "mailpass"
from = "notify@example.com"
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.HTTPPort)
		assert.Equal(t, 20, cfg.Server.ReadTimeout)
		assert.Equal(t, 5, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "host=db.internal port=5433 user=booking password=secret dbname=consult_booking sslmode=require",
			cfg.Database.DSN())
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, "debug", cfg.Logs.Level)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, int64(4242), cfg.Telegram.AdminChatID)
		assert.Equal(t, 465, cfg.SMTP.Port)
	})

	t.Run("defaults fill missing sections", func(t *testing.T) {
		path := writeConfigFile(t, `
[database]
user = "booking"
dbname = "consult_booking"
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.HTTPPort)
		assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "logs/app.log", cfg.Logs.File)
		assert.False(t, cfg.Metrics.Enabled)
		assert.False(t, cfg.Telegram.Enabled)
	})

	t.Run("missing database user is rejected", func(t *testing.T) {
		path := writeConfigFile(t, `
[database]
dbname = "consult_booking"
`)

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("enabled telegram requires token", func(t *testing.T) {
		path := writeConfigFile(t, `
[database]
user = "booking"
dbname = "consult_booking"

[telegram]
enabled = true
`)

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("enabled smtp requires host", func(t *testing.T) {
		path := writeConfigFile(t, `
[database]
user = "booking"
dbname = "consult_booking"

[smtp]
enabled = true
from = "notify@example.com"
`)

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing file returns error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})
}
