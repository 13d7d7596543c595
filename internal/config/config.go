package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName          string
	AppEnv           string
	AppPort          string
	DatabaseURL      string
	RedisURL         string
	TeacherAccessKey string
	SnapshotTTL      time.Duration
	FetchLimit       int
	DisplayZone      *time.Location
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SEODAP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Seodap Teacher API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("snapshot.cache_ttl", "30s")
	v.SetDefault("snapshot.fetch_limit", 2000)
	v.SetDefault("display.timezone", "Asia/Seoul")

	ttlString := v.GetString("snapshot.cache_ttl")
	if ttlString == "" {
		ttlString = "30s"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid snapshot cache ttl: %w", err)
	}

	zoneName := v.GetString("display.timezone")
	zone, err := time.LoadLocation(zoneName)
	if err != nil {
		return Config{}, fmt.Errorf("invalid display timezone %q: %w", zoneName, err)
	}

	cfg := Config{
		AppName:          v.GetString("app.name"),
		AppEnv:           v.GetString("app.env"),
		AppPort:          v.GetString("app.port"),
		DatabaseURL:      v.GetString("database.url"),
		RedisURL:         v.GetString("redis.url"),
		TeacherAccessKey: v.GetString("teacher.access_key"),
		SnapshotTTL:      ttl,
		FetchLimit:       v.GetInt("snapshot.fetch_limit"),
		DisplayZone:      zone,
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url must be provided")
	}

	if cfg.FetchLimit <= 0 {
		cfg.FetchLimit = 2000
	}

	return cfg, nil
}
