package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Bootstrap BootstrapConfig
	Metrics   MetricsConfig
}

type AppConfig struct {
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins []string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	// PoolSize of 0 keeps the go-redis default.
	PoolSize int
}

type JWTConfig struct {
	Secret        string
	SessionExpiry time.Duration
}

// BootstrapConfig tunes the profile bootstrap performed after every login,
// registration and session refresh.
type BootstrapConfig struct {
	SettleDelay        time.Duration
	SessionSettleDelay time.Duration
	RetryAttempts      int
	RetryDelay         time.Duration
}

type MetricsConfig struct {
	Prefix string
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads the given env file when it exists and overlays the
// process environment on top of it.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	sessionExpiry, err := time.ParseDuration(v.GetString("SESSION_EXPIRY"))
	if err != nil {
		sessionExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:        v.GetString("APP_PORT"),
			Env:         v.GetString("APP_ENV"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			PoolSize: v.GetInt("REDIS_POOL_SIZE"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			SessionExpiry: sessionExpiry,
		},
		Bootstrap: BootstrapConfig{
			SettleDelay:        v.GetDuration("BOOTSTRAP_SETTLE_DELAY"),
			SessionSettleDelay: v.GetDuration("BOOTSTRAP_SESSION_SETTLE_DELAY"),
			RetryAttempts:      v.GetInt("BOOTSTRAP_RETRY_ATTEMPTS"),
			RetryDelay:         v.GetDuration("BOOTSTRAP_RETRY_DELAY"),
		},
		Metrics: MetricsConfig{
			Prefix: v.GetString("METRICS_PREFIX"),
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("SESSION_EXPIRY", "168h")
	v.SetDefault("BOOTSTRAP_SETTLE_DELAY", "1s")
	v.SetDefault("BOOTSTRAP_SESSION_SETTLE_DELAY", "500ms")
	v.SetDefault("BOOTSTRAP_RETRY_ATTEMPTS", 3)
	v.SetDefault("BOOTSTRAP_RETRY_DELAY", "1s")
	v.SetDefault("METRICS_PREFIX", "clinic")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// splitList parses a comma separated list, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// IsDev reports whether the app runs in the development environment.
func (c *Config) IsDev() bool {
	return c.App.Env == "development"
}
