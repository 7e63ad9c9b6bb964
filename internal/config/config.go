package config

import (
	"fmt"
	"strings"
	"time"

	"catalog-service/internal/db"
	"catalog-service/internal/pkg/jwt"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Enabled reports whether every credential is present.
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type AppConfig struct {
	// Server
	Env             string
	HTTPAddr        string
	LogLevel        string
	FrontendURL     string
	TrustedProxies  []string
	ShutdownTimeout time.Duration

	// Storage
	Database    db.PostgresConfig
	SupabaseURL string
	RedisAddr   string
	RedisPass   string

	// JWT
	JWT jwt.Config

	// Images
	Cloudinary CloudinaryConfig
}

func (c AppConfig) IsDevelopment() bool { return c.Env == EnvDevelopment }
func (c AppConfig) IsProduction() bool  { return c.Env == EnvProduction }

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3001")
	v.SetDefault("JWT_EXPIRES_IN", "7d")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_CONN_IDLE_TIME", "5m")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	return v
}

// Load reads configuration from the environment. DATABASE_URL and
// JWT_SECRET are required.
func Load() (AppConfig, error) {
	v := newViper()

	env := strings.ToLower(firstNonEmpty(v.GetString("APP_ENV"), v.GetString("NODE_ENV"), EnvDevelopment))

	cfg := AppConfig{
		Env:             env,
		HTTPAddr:        ":" + v.GetString("PORT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		FrontendURL:     v.GetString("FRONTEND_URL"),
		TrustedProxies:  splitList(v.GetString("TRUSTED_PROXIES")),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),

		Database: db.PostgresConfig{
			URL:             v.GetString("DATABASE_URL"),
			MaxConns:        v.GetInt32("DB_MAX_CONNS"),
			MaxConnIdleTime: v.GetDuration("DB_MAX_CONN_IDLE_TIME"),
		},
		SupabaseURL: v.GetString("SUPABASE_URL"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		RedisPass:   v.GetString("REDIS_PASS"),

		Cloudinary: CloudinaryConfig{
			CloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:    v.GetString("CLOUDINARY_API_KEY"),
			APISecret: v.GetString("CLOUDINARY_API_SECRET"),
		},
	}

	if cfg.Database.URL == "" {
		return AppConfig{}, fmt.Errorf("DATABASE_URL is required")
	}

	secret := v.GetString("JWT_SECRET")
	if secret == "" {
		return AppConfig{}, fmt.Errorf("JWT_SECRET is required")
	}
	ttl, err := jwt.ParseExpiry(v.GetString("JWT_EXPIRES_IN"))
	if err != nil {
		return AppConfig{}, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}
	cfg.JWT = jwt.Config{Secret: secret, TTL: ttl}

	return cfg, nil
}

// LoadDatabase reads only what the admin CLI needs.
func LoadDatabase() (db.PostgresConfig, error) {
	v := newViper()
	url := v.GetString("DATABASE_URL")
	if url == "" {
		return db.PostgresConfig{}, fmt.Errorf("DATABASE_URL is required")
	}
	return db.PostgresConfig{URL: url, MaxConns: 2}, nil
}

// --- Helper functions ---

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
