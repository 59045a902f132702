package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Import   ImportConfig   `mapstructure:"import"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string `mapstructure:"port"`
	Host         string `mapstructure:"host"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	IdleTimeout  int    `mapstructure:"idle_timeout"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret   string `mapstructure:"jwt_secret"`
	TokenTTL    int    `mapstructure:"token_ttl"`
	BcryptCost  int    `mapstructure:"bcrypt_cost"`
	TokenIssuer string `mapstructure:"token_issuer"`
}

// ImportConfig holds spreadsheet import configuration
type ImportConfig struct {
	MaxRows       int `mapstructure:"max_rows"`
	MaxUploadSize int `mapstructure:"max_upload_size"`
}

// CacheConfig holds caching configuration
type CacheConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	BadgeCountTTL int  `mapstructure:"badge_count_ttl"`
	UserTTL       int  `mapstructure:"user_ttl"`
}

// LoadConfig loads configuration from environment and config files
func LoadConfig() (*Config, error) {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.read_timeout", 30)
	viper.SetDefault("server.write_timeout", 30)
	viper.SetDefault("server.idle_timeout", 120)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("auth.token_ttl", 24)
	viper.SetDefault("auth.bcrypt_cost", 10)
	viper.SetDefault("auth.token_issuer", "callbridge-sewa")
	viper.SetDefault("import.max_rows", 5000)
	viper.SetDefault("import.max_upload_size", 10)
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.badge_count_ttl", 300)
	viper.SetDefault("cache.user_ttl", 1800)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that required datastore configuration is present. A missing
// database target is a configuration error, reported before any connection
// attempt so it cannot be mistaken for a runtime/network failure.
func (c *Config) Validate() error {
	if c.Database.DBName == "" {
		return fmt.Errorf("configuration error: database.dbname is not set")
	}
	if c.Database.User == "" {
		return fmt.Errorf("configuration error: database.user is not set")
	}
	return nil
}
