package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Hook    HookConfig
	Rules   RulesConfig
	Jira    JiraConfig
	Archive ArchiveConfig
	Email   EmailConfig
	CORS    CORSConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings for the audit store.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings for the admin API.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// AdminConfig declares the single admin account for the admin API.
// PasswordHash is a bcrypt hash, never the plain password.
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

// HookConfig holds settings for the commit hook endpoint.
type HookConfig struct {
	// Token is the shared secret git servers present in X-Hook-Token.
	Token string `mapstructure:"token"`
}

// RulesConfig locates the validation rules file.
type RulesConfig struct {
	File string `mapstructure:"file"`
}

// JiraConfig holds issue tracker client settings.
type JiraConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// ArchiveConfig holds S3 settings for the rejection report archive.
type ArchiveConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// EmailConfig holds rejection notification settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the
// COMMITGATE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("COMMITGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "commitgate")
	v.SetDefault("db.password", "commitgate_secret")
	v.SetDefault("db.name", "commitgate_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "commitgate")

	// Admin defaults
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password_hash", "")

	// Hook defaults
	v.SetDefault("hook.token", "")

	// Rules defaults
	v.SetDefault("rules.file", "etc/commitgate-rules.yaml")

	// Jira defaults
	v.SetDefault("jira.timeout", "10s")

	// Archive defaults
	v.SetDefault("archive.enabled", false)
	v.SetDefault("archive.region", "us-east-1")
	v.SetDefault("archive.bucket", "commitgate-rejections")
	v.SetDefault("archive.endpoint", "")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@commitgate.local")
	v.SetDefault("email.from_name", "commitgate")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "COMMITGATE_SERVER_PORT",
		"server.read_timeout":  "COMMITGATE_SERVER_READ_TIMEOUT",
		"server.write_timeout": "COMMITGATE_SERVER_WRITE_TIMEOUT",
		"server.environment":   "COMMITGATE_SERVER_ENVIRONMENT",
		"db.host":              "COMMITGATE_DB_HOST",
		"db.port":              "COMMITGATE_DB_PORT",
		"db.user":              "COMMITGATE_DB_USER",
		"db.password":          "COMMITGATE_DB_PASSWORD",
		"db.name":              "COMMITGATE_DB_NAME",
		"db.sslmode":           "COMMITGATE_DB_SSLMODE",
		"db.max_open":          "COMMITGATE_DB_MAX_OPEN",
		"db.max_idle":          "COMMITGATE_DB_MAX_IDLE",
		"jwt.secret":           "COMMITGATE_JWT_SECRET",
		"jwt.access_expiry":    "COMMITGATE_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "COMMITGATE_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "COMMITGATE_JWT_ISSUER",
		"admin.username":       "COMMITGATE_ADMIN_USERNAME",
		"admin.password_hash":  "COMMITGATE_ADMIN_PASSWORD_HASH",
		"hook.token":           "COMMITGATE_HOOK_TOKEN",
		"rules.file":           "COMMITGATE_RULES_FILE",
		"jira.timeout":         "COMMITGATE_JIRA_TIMEOUT",
		"archive.enabled":      "COMMITGATE_ARCHIVE_ENABLED",
		"archive.region":       "COMMITGATE_ARCHIVE_REGION",
		"archive.bucket":       "COMMITGATE_ARCHIVE_BUCKET",
		"archive.endpoint":     "COMMITGATE_ARCHIVE_ENDPOINT",
		"archive.access_key":   "COMMITGATE_ARCHIVE_ACCESS_KEY",
		"archive.secret_key":   "COMMITGATE_ARCHIVE_SECRET_KEY",
		"email.provider":       "COMMITGATE_EMAIL_PROVIDER",
		"email.region":         "COMMITGATE_EMAIL_REGION",
		"email.from_address":   "COMMITGATE_EMAIL_FROM_ADDRESS",
		"email.from_name":      "COMMITGATE_EMAIL_FROM_NAME",
		"cors.allowed_origins": "COMMITGATE_CORS_ALLOWED_ORIGINS",
		"log.level":            "COMMITGATE_LOG_LEVEL",
		"log.format":           "COMMITGATE_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if
	// COMMITGATE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("COMMITGATE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Admin = AdminConfig{
		Username:     v.GetString("admin.username"),
		PasswordHash: v.GetString("admin.password_hash"),
	}
	cfg.Hook = HookConfig{
		Token: v.GetString("hook.token"),
	}
	cfg.Rules = RulesConfig{
		File: v.GetString("rules.file"),
	}
	cfg.Jira = JiraConfig{
		Timeout: v.GetDuration("jira.timeout"),
	}
	cfg.Archive = ArchiveConfig{
		Enabled:   v.GetBool("archive.enabled"),
		Region:    v.GetString("archive.region"),
		Bucket:    v.GetString("archive.bucket"),
		Endpoint:  v.GetString("archive.endpoint"),
		AccessKey: v.GetString("archive.access_key"),
		SecretKey: v.GetString("archive.secret_key"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
