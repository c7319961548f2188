package di

import (
	"net/http"
	"path/filepath"
	"testing"

	"mediasocial/internal/common/webtest"
	"mediasocial/internal/config"
	"mediasocial/internal/database"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			SQLitePath:   filepath.Join(t.TempDir(), "social.db"),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
		FileStore:    config.FileStoreConfig{UploadServer: "http://files.test/api/v1", Timeout: 1},
		Notification: config.NotificationConfig{Workers: 1, ChannelBufferSize: 8, Enabled: true},
		Logging:      config.LoggingConfig{Level: "silent"},
	}
}

func TestInitializeMediaApp_ServesRoutes(t *testing.T) {
	cfg := sqliteConfig(t)
	app, cleanup, err := InitializeMediaApp(cfg)
	require.NoError(t, err)
	defer cleanup()
	require.NoError(t, database.Migrate(app.DB))

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	app.Posts.RegisterRoutes(api)
	app.Comments.RegisterRoutes(api)
	app.Likes.RegisterRoutes(api)
	app.Friends.RegisterRoutes(api)
	app.Chats.RegisterRoutes(api)
	app.Notifications.RegisterRoutes(api)
	app.Themes.RegisterRoutes(api)
	app.Tags.RegisterRoutes(api)

	assert.Equal(t, http.StatusOK, webtest.Do(r, http.MethodGet, "/api/v1/themes", "", "").Code)
	assert.Equal(t, http.StatusOK, webtest.Do(r, http.MethodGet, "/api/v1/media", "", "").Code)
	assert.Equal(t, http.StatusOK, webtest.Do(r, http.MethodGet, "/api/v1/tags", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, webtest.Do(r, http.MethodGet, "/api/v1/chats", "", "").Code)
}

func TestInitializeAuthApp(t *testing.T) {
	app, cleanup, err := InitializeAuthApp(sqliteConfig(t))
	require.NoError(t, err)
	defer cleanup()

	assert.NotNil(t, app.Users)
	assert.NotNil(t, app.DB)
}

func TestInitializeOps(t *testing.T) {
	ops, cleanup, err := InitializeOps(sqliteConfig(t))
	require.NoError(t, err)
	defer cleanup()

	assert.NotNil(t, ops.Users)
	assert.NotNil(t, ops.Posts)
	assert.NotNil(t, ops.Chats)
}

func TestInitialize_UnknownDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Database.Driver = "oracle"

	_, _, err := InitializeMediaApp(cfg)
	assert.ErrorContains(t, err, `unsupported database driver "oracle"`)
}
