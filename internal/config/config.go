/**
 * @description
 * This package handles configuration management for the website backend.
 * It uses the Viper library to read configuration from environment
 * variables, providing a centralized and straightforward way to manage
 * application settings.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */

package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the service.
// These values are loaded from environment variables.
type Config struct {
	ServerPort             string `mapstructure:"SERVER_PORT"`
	DatabaseURL            string `mapstructure:"DATABASE_URL"`
	RedisURL               string `mapstructure:"REDIS_URL"`
	RabbitMQURL            string `mapstructure:"RABBITMQ_URL"`
	AdminJWTSecret         string `mapstructure:"ADMIN_JWT_SECRET"`
	AdminSessionTTLMinutes int    `mapstructure:"ADMIN_SESSION_TTL_MINUTES"`
	FormRateLimitPerMinute int    `mapstructure:"FORM_RATE_LIMIT_PER_MINUTE"`
	FormRateLimitPrefix    string `mapstructure:"FORM_RATE_LIMIT_PREFIX"`
	LeadEventExchange      string `mapstructure:"LEAD_EVENT_EXCHANGE"`
	AllowedOrigins         string `mapstructure:"ALLOWED_ORIGINS"`
}

// LoadConfig reads configuration from environment variables and an
// optional .env file in the given path.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ADMIN_SESSION_TTL_MINUTES", 60)
	viper.SetDefault("FORM_RATE_LIMIT_PER_MINUTE", 10)
	viper.SetDefault("FORM_RATE_LIMIT_PREFIX", "leadcitymfb:rate_limit")
	viper.SetDefault("LEAD_EVENT_EXCHANGE", "site_events")
	viper.SetDefault("ALLOWED_ORIGINS", "https://*,http://*")

	// Bind environment variables explicitly so they appear in Unmarshal.
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("DATABASE_URL")
	_ = viper.BindEnv("REDIS_URL")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("ADMIN_JWT_SECRET")
	_ = viper.BindEnv("ADMIN_SESSION_TTL_MINUTES")
	_ = viper.BindEnv("FORM_RATE_LIMIT_PER_MINUTE")
	_ = viper.BindEnv("FORM_RATE_LIMIT_PREFIX")
	_ = viper.BindEnv("LEAD_EVENT_EXCHANGE")
	_ = viper.BindEnv("ALLOWED_ORIGINS")

	// The .env file is optional; only surface unexpected read errors.
	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
		err = nil
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	// Platform-provided PORT (Railway/Render) wins over SERVER_PORT.
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		config.ServerPort = port
	}
	if config.ServerPort == "" {
		config.ServerPort = "8080"
	}
	if config.AdminSessionTTLMinutes <= 0 {
		config.AdminSessionTTLMinutes = 60
	}
	if config.FormRateLimitPerMinute < 0 {
		log.Printf("level=warn component=config msg=\"negative form rate limit configured; disabling limiter\" limit=%d", config.FormRateLimitPerMinute)
		config.FormRateLimitPerMinute = 0
	}
	config.DatabaseURL = strings.TrimSpace(config.DatabaseURL)
	config.RedisURL = strings.TrimSpace(config.RedisURL)
	config.RabbitMQURL = strings.TrimSpace(config.RabbitMQURL)

	return
}

// Origins splits the configured comma-separated origin list.
func (c Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
