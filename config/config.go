package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultEnv                = "development"
	DefaultPort               = "8080"
	DefaultLoginMaxAttempts   = 5
	DefaultLoginWindowSeconds = 60
	DefaultCORSOrigins        = "http://localhost:5173"
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	LoginMaxAttempts   int
	LoginWindowSeconds int
	CORSOrigins        string
}

// LoginWindow is the rate-limit window as a duration.
func (c *Config) LoginWindow() time.Duration {
	return time.Duration(c.LoginWindowSeconds) * time.Second
}

// Load reads configuration from environment variables, falling back to an
// optional config.yaml in the working directory. DB_URL is required.
func Load() *Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("ENV", DefaultEnv)
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("LOGIN_MAX_ATTEMPTS", DefaultLoginMaxAttempts)
	v.SetDefault("LOGIN_WINDOW_SECONDS", DefaultLoginWindowSeconds)
	v.SetDefault("CORS_ORIGINS", DefaultCORSOrigins)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	cfg := &Config{
		Env:                v.GetString("ENV"),
		Port:               v.GetString("PORT"),
		DBURL:              v.GetString("DB_URL"),
		LoginMaxAttempts:   v.GetInt("LOGIN_MAX_ATTEMPTS"),
		LoginWindowSeconds: v.GetInt("LOGIN_WINDOW_SECONDS"),
		CORSOrigins:        v.GetString("CORS_ORIGINS"),
	}

	if cfg.DBURL == "" {
		log.Fatalf("Missing required config: DB_URL")
	}

	return cfg
}
