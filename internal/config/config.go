package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	WhatsApp WhatsAppConfig `mapstructure:"whatsapp"`
	Static   StaticConfig   `mapstructure:"static"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Name          string `mapstructure:"name"`
	SSLMode       string `mapstructure:"sslmode"`
	MaxOpenConns  int    `mapstructure:"max_open_conns"`
	MaxIdleConns  int    `mapstructure:"max_idle_conns"`
	MigrationsDir string `mapstructure:"migrations_dir"`
}

type WhatsAppConfig struct {
	// Number is the recipient of order-confirmation messages, in
	// international format without the leading plus.
	Number string `mapstructure:"number"`
}

type StaticConfig struct {
	ImagesDir string `mapstructure:"images_dir"`
}

// Load reads configuration from the environment, falling back to defaults
// suitable for local development. Keys map to env vars with dots replaced
// by underscores, e.g. database.host -> DATABASE_HOST.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "5000")
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "peaqbodycare")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.migrations_dir", "migrations")

	v.SetDefault("whatsapp.number", "27796989762")
	v.SetDefault("static.images_dir", "images")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}
