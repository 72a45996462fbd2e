package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment   string `mapstructure:"ENVIRONMENT"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	DBSource      string `mapstructure:"DB_SOURCE"`

	GoogleAPIKey      string        `mapstructure:"GOOGLE_API_KEY"`
	MapboxToken       string        `mapstructure:"MAPBOX_TOKEN"`
	PlacesBaseURL     string        `mapstructure:"PLACES_BASE_URL"`
	DirectionsBaseURL string        `mapstructure:"DIRECTIONS_BASE_URL"`
	RouteProfile      string        `mapstructure:"ROUTE_PROFILE"`
	HTTPTimeout       time.Duration `mapstructure:"HTTP_TIMEOUT"`

	PlaybackInterval time.Duration `mapstructure:"PLAYBACK_INTERVAL"`
	SeedOnStart      bool          `mapstructure:"SEED_ON_START"`
}

// LoadConfig reads configuration from app.env in path, with environment variables taking precedence.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("DB_SOURCE", "")
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("MAPBOX_TOKEN", "")
	viper.SetDefault("PLACES_BASE_URL", "https://maps.googleapis.com")
	viper.SetDefault("DIRECTIONS_BASE_URL", "https://api.mapbox.com")
	viper.SetDefault("ROUTE_PROFILE", "driving")
	viper.SetDefault("HTTP_TIMEOUT", 10*time.Second)
	viper.SetDefault("PLAYBACK_INTERVAL", 500*time.Millisecond)
	viper.SetDefault("SEED_ON_START", false)

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = viper.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks values that have no usable default.
func (c Config) Validate() error {
	switch c.RouteProfile {
	case "driving", "walking":
	default:
		return fmt.Errorf("config: unsupported ROUTE_PROFILE %q (want driving or walking)", c.RouteProfile)
	}
	if c.PlaybackInterval <= 0 {
		return fmt.Errorf("config: PLAYBACK_INTERVAL must be positive")
	}
	return nil
}
