package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// Remote file storage (upload server)
	FileStore FileStoreConfig `json:"file_store"`

	Auth AuthConfig `json:"auth"`

	// Notification Configuration
	Notification NotificationConfig `json:"notification"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host             string `json:"host"`
	AuthServicePort  string `json:"auth_service_port"`
	MediaServicePort string `json:"media_service_port"`
	ReadTimeout      int    `json:"read_timeout"`  // Seconds
	WriteTimeout     int    `json:"write_timeout"` // Seconds
	Environment      string `json:"environment"`   // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver       string `json:"driver"` // mysql, postgres, sqlite
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	SSLMode      string `json:"ssl_mode"`
	SQLitePath   string `json:"sqlite_path"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// FileStoreConfig points at the upload server that owns the stored media files.
type FileStoreConfig struct {
	UploadServer string `json:"upload_server"` // base url, DELETE {UploadServer}/delete/{filename}
	UploadURL    string `json:"upload_url"`    // public prefix prepended to filenames
	Timeout      int    `json:"timeout"`       // Seconds
}

type AuthConfig struct {
	JWTSecret string `json:"-"`
}

// NotificationConfig contains notification system configuration
type NotificationConfig struct {
	Workers           int  `json:"workers"`             // Number of worker goroutines
	ChannelBufferSize int  `json:"channel_buffer_size"` // Channel buffer size
	Enabled           bool `json:"enabled"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `json:"level"` // silent, error, warn, info
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	return &Config{
		Server: ServerConfig{
			Host:             getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			AuthServicePort:  getEnvOrDefault("AUTH_SERVICE_PORT", "3001"),
			MediaServicePort: getEnvOrDefault("MEDIA_SERVICE_PORT", "3002"),
			ReadTimeout:      getIntOrDefault("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:     getIntOrDefault("SERVER_WRITE_TIMEOUT", 30),
			Environment:      getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Driver:       getEnvOrDefault("DB_DRIVER", "mysql"),
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "mediasocial"),
			Password:     getEnvOrDefault("DB_PASSWORD", "mediasocial123"),
			DatabaseName: getEnvOrDefault("DB_NAME", "mediasocial"),
			SSLMode:      getEnvOrDefault("DB_SSLMODE", "disable"),
			SQLitePath:   getEnvOrDefault("DB_SQLITE_PATH", "mediasocial.db"),
			MaxOpenConns: getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		},
		FileStore: FileStoreConfig{
			UploadServer: getEnvOrDefault("UPLOAD_SERVER", "http://localhost:3003/api/v1"),
			UploadURL:    getEnvOrDefault("UPLOAD_URL", "http://localhost:3003/uploads/"),
			Timeout:      getIntOrDefault("FILESTORE_TIMEOUT", 10),
		},
		Auth: AuthConfig{
			JWTSecret: getEnvOrDefault("JWT_SECRET", ""),
		},
		Notification: NotificationConfig{
			Workers:           getIntOrDefault("NOTIF_WORKERS", 5),
			ChannelBufferSize: getIntOrDefault("NOTIF_BUFFER_SIZE", 1000),
			Enabled:           getEnvOrDefault("NOTIF_ENABLED", "true") == "true",
		},
		Logging: LoggingConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "warn"),
		},
	}
}

// DSN builds the driver specific connection string.
func (cfg *Config) DSN() string {
	db := cfg.Database
	switch db.Driver {
	case "postgres":
		if db.Port == "" || db.Port == "3306" {
			db.Port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			db.Host, db.Port, db.Username, db.Password, db.DatabaseName, db.SSLMode)
	case "sqlite":
		return db.SQLitePath + "?_foreign_keys=on"
	default:
		if db.Host == "" {
			db.Host = "localhost"
		}
		if db.Port == "" {
			db.Port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			db.Username,
			db.Password,
			db.Host,
			db.Port,
			db.DatabaseName,
		)
	}
}

func (c FileStoreConfig) RequestTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
