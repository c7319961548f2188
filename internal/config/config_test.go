package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEnvKeys = []string{
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"DB_SQLITE_PATH", "DB_MAX_OPEN_CONNS", "UPLOAD_SERVER", "FILESTORE_TIMEOUT",
	"AUTH_SERVICE_PORT", "MEDIA_SERVICE_PORT", "JWT_SECRET", "NOTIF_WORKERS",
	"NOTIF_ENABLED", "LOG_LEVEL",
}

func clearTestEnvVars() {
	for _, key := range testEnvKeys {
		os.Unsetenv(key)
	}
}

func TestLoadConfig_DefaultBehavior(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, "mediasocial", cfg.Database.DatabaseName)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)

	assert.Equal(t, "3001", cfg.Server.AuthServicePort)
	assert.Equal(t, "3002", cfg.Server.MediaServicePort)

	assert.Equal(t, 10, cfg.FileStore.Timeout)
	assert.Equal(t, 5, cfg.Notification.Workers)
	assert.True(t, cfg.Notification.Enabled)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfig_WithEnvironmentOverrides(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	testEnvVars := map[string]string{
		"DB_DRIVER":          "postgres",
		"DB_HOST":            "test-db-host",
		"DB_PORT":            "5433",
		"DB_USER":            "test-user",
		"DB_MAX_OPEN_CONNS":  "50",
		"UPLOAD_SERVER":      "http://files.test/api/v1",
		"FILESTORE_TIMEOUT":  "3",
		"MEDIA_SERVICE_PORT": "4002",
		"NOTIF_ENABLED":      "false",
	}
	for key, value := range testEnvVars {
		os.Setenv(key, value)
	}

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "test-db-host", cfg.Database.Host)
	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	assert.Equal(t, "http://files.test/api/v1", cfg.FileStore.UploadServer)
	assert.Equal(t, 3*time.Second, cfg.FileStore.RequestTimeout())
	assert.Equal(t, "4002", cfg.Server.MediaServicePort)
	assert.False(t, cfg.Notification.Enabled)
}

func TestLoadConfig_InvalidIntFallsBack(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	os.Setenv("NOTIF_WORKERS", "lots")
	cfg := LoadConfig()
	assert.Equal(t, 5, cfg.Notification.Workers)
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		database DatabaseConfig
		want     string
	}{
		{
			name: "mysql",
			database: DatabaseConfig{
				Driver: "mysql", Host: "db", Port: "3306",
				Username: "u", Password: "p", DatabaseName: "social",
			},
			want: "u:p@tcp(db:3306)/social?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			name:     "mysql defaults host and port",
			database: DatabaseConfig{Username: "u", Password: "p", DatabaseName: "social"},
			want:     "u:p@tcp(localhost:3306)/social?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			name: "postgres swaps mysql port",
			database: DatabaseConfig{
				Driver: "postgres", Host: "pg", Port: "3306",
				Username: "u", Password: "p", DatabaseName: "social", SSLMode: "disable",
			},
			want: "host=pg port=5432 user=u password=p dbname=social sslmode=disable",
		},
		{
			name:     "sqlite",
			database: DatabaseConfig{Driver: "sqlite", SQLitePath: "test.db"},
			want:     "test.db?_foreign_keys=on",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Database: tc.database}
			assert.Equal(t, tc.want, cfg.DSN())
		})
	}
}

func TestFileStoreConfig_RequestTimeoutDefault(t *testing.T) {
	assert.Equal(t, 10*time.Second, FileStoreConfig{}.RequestTimeout())
	assert.Equal(t, 10*time.Second, FileStoreConfig{Timeout: -1}.RequestTimeout())
}
