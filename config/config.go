package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App  AppConfig
	DB   DBConfig
	Auth AuthConfig
	Seed SeedConfig
}

type AppConfig struct {
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins []string
}

// DBConfig describes how to reach the patient records database.
// AuthMode is either "password" (user + password) or "trust"
// (no password sent, the server authenticates the OS/peer user).
type DBConfig struct {
	Server       string
	Port         string
	Name         string
	AuthMode     string
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type AuthConfig struct {
	CredentialMode string
	BcryptCost     int
}

type SeedConfig struct {
	AdminEnabled  bool
	AdminUsername string
	AdminPassword string
}

const (
	DBAuthPassword = "password"
	DBAuthTrust    = "trust"

	CredentialPlaintext = "plaintext"
	CredentialBcrypt    = "bcrypt"
)

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DB_SERVER", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "HMS_DB")
	v.SetDefault("DB_AUTH_MODE", DBAuthPassword)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("AUTH_CREDENTIAL_MODE", CredentialPlaintext)
	v.SetDefault("AUTH_BCRYPT_COST", 10)
	v.SetDefault("SEED_ADMIN_ENABLED", true)
	v.SetDefault("SEED_ADMIN_USERNAME", "admin")
	v.SetDefault("SEED_ADMIN_PASSWORD", "admin123")

	// The .env file is optional; environment variables alone are enough.
	_ = v.ReadInConfig()

	cfg := &Config{
		App: AppConfig{
			Port:        v.GetString("APP_PORT"),
			Env:         v.GetString("APP_ENV"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		DB: DBConfig{
			Server:       v.GetString("DB_SERVER"),
			Port:         v.GetString("DB_PORT"),
			Name:         v.GetString("DB_NAME"),
			AuthMode:     strings.ToLower(v.GetString("DB_AUTH_MODE")),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		Auth: AuthConfig{
			CredentialMode: strings.ToLower(v.GetString("AUTH_CREDENTIAL_MODE")),
			BcryptCost:     v.GetInt("AUTH_BCRYPT_COST"),
		},
		Seed: SeedConfig{
			AdminEnabled:  v.GetBool("SEED_ADMIN_ENABLED"),
			AdminUsername: v.GetString("SEED_ADMIN_USERNAME"),
			AdminPassword: v.GetString("SEED_ADMIN_PASSWORD"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects option values the rest of the application cannot act on.
func (c *Config) Validate() error {
	switch c.DB.AuthMode {
	case DBAuthPassword, DBAuthTrust:
	default:
		return fmt.Errorf("unsupported DB_AUTH_MODE %q", c.DB.AuthMode)
	}

	switch c.Auth.CredentialMode {
	case CredentialPlaintext, CredentialBcrypt:
	default:
		return fmt.Errorf("unsupported AUTH_CREDENTIAL_MODE %q", c.Auth.CredentialMode)
	}

	if c.DB.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	return nil
}

func (c *Config) IsDev() bool {
	return c.App.Env == "development"
}

// DSN builds the PostgreSQL keyword/value connection string.
func (c DBConfig) DSN() string {
	parts := []string{
		"host=" + c.Server,
		"port=" + c.Port,
		"dbname=" + c.Name,
	}
	if c.User != "" {
		parts = append(parts, "user="+c.User)
	}
	if c.AuthMode == DBAuthPassword && c.Password != "" {
		parts = append(parts, "password="+c.Password)
	}
	if c.SSLMode != "" {
		parts = append(parts, "sslmode="+c.SSLMode)
	}
	return strings.Join(parts, " ")
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
