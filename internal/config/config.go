package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	JWT      JWTConfig      `toml:"jwt"`
	App      AppConfig      `toml:"app"`
}

type DatabaseConfig struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	User        string `toml:"user"`
	Password    string `toml:"password"`
	Name        string `toml:"name"`
	SSLMode     string `toml:"ssl_mode"`
	MaxConns    int32  `toml:"max_conns"`
	MinConns    int32  `toml:"min_conns"`
	AutoMigrate bool   `toml:"auto_migrate"`
}

// RedisConfig holds the access-token deny-list connection
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string `toml:"secret"`
	RefreshExpiration string `toml:"refresh_expiration"`
	AccessExpiration  string `toml:"access_expiration"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int      `toml:"port"`
	Env            string   `toml:"env"`
	Version        string   `toml:"version"`
	LogLevel       string   `toml:"log_level"`
	LogFile        string   `toml:"log_file"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

func defaults() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Name:     "hr_records",
			SSLMode:  "disable",
			MaxConns: 25,
			MinConns: 5,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		JWT: JWTConfig{
			RefreshExpiration: "168h",
			AccessExpiration:  "1h",
		},
		App: AppConfig{
			Port:           8080,
			Env:            "development",
			Version:        "v1.0.0",
			LogLevel:       "info",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
}

// Load reads configuration from defaults, an optional TOML file named by
// CONFIG_FILE, an optional .env file and the environment, in that order of
// increasing precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		slog.Info("Config file loaded", "path", path)
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) applyEnv() error {
	var err error

	// Database configuration
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	if c.Database.Port, err = getEnvInt("DB_PORT", c.Database.Port); err != nil {
		return err
	}
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Name = getEnv("DB_NAME", c.Database.Name)
	c.Database.SSLMode = getEnv("DB_SSL_MODE", c.Database.SSLMode)
	maxConns, err := getEnvInt("DB_MAX_CONNS", int(c.Database.MaxConns))
	if err != nil {
		return err
	}
	minConns, err := getEnvInt("DB_MIN_CONNS", int(c.Database.MinConns))
	if err != nil {
		return err
	}
	c.Database.MaxConns, c.Database.MinConns = int32(maxConns), int32(minConns)
	if c.Database.AutoMigrate, err = getEnvBool("DB_AUTO_MIGRATE", c.Database.AutoMigrate); err != nil {
		return err
	}

	// Redis configuration
	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	if c.Redis.DB, err = getEnvInt("REDIS_DB", c.Redis.DB); err != nil {
		return err
	}

	// Application configuration
	if c.App.Port, err = getEnvInt("APP_PORT", c.App.Port); err != nil {
		return err
	}
	c.App.Env = getEnv("APP_ENV", c.App.Env)
	c.App.Version = getEnv("APP_VERSION", c.App.Version)
	c.App.LogLevel = getEnv("LOG_LEVEL", c.App.LogLevel)
	c.App.LogFile = getEnv("LOG_FILE", c.App.LogFile)
	if origins := getEnvSlice("ALLOWED_ORIGINS"); len(origins) > 0 {
		c.App.AllowedOrigins = origins
	}

	// JWT configuration
	c.JWT.Secret = getEnv("JWT_SECRET_KEY", c.JWT.Secret)
	c.JWT.RefreshExpiration = getEnv("JWT_REFRESH_EXPIRATION_TIME", c.JWT.RefreshExpiration)
	c.JWT.AccessExpiration = getEnv("JWT_ACCESS_EXPIRATION_TIME", c.JWT.AccessExpiration)

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.ParseDuration(c.JWT.RefreshExpiration); err != nil {
		return fmt.Errorf("invalid JWT_REFRESH_EXPIRATION_TIME: %w", err)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}
	return nil
}

// IsDevelopment reports whether the app runs in the development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
