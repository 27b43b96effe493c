// internal/config/config.go
package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres | sqlite
	URL             string        `mapstructure:"url"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// AppConfig は一覧と出題の挙動
type AppConfig struct {
	DefaultItemsPerPage int `mapstructure:"default_items_per_page"`
	MaxItemsPerPage     int `mapstructure:"max_items_per_page"`
	MaxRedraws          int `mapstructure:"max_redraws"`
}

type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// CacheConfig は RedisAddr が空ならキャッシュを使わない
type CacheConfig struct {
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	KeyPrefix     string        `mapstructure:"key_prefix"`
	TTL           time.Duration `mapstructure:"ttl"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	App      AppConfig      `mapstructure:"app"`
	Auth     AuthConfig     `mapstructure:"auth"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

// IsDevEnv は APP_ENV=dev のとき true
func IsDevEnv() bool {
	return strings.EqualFold(os.Getenv("APP_ENV"), "dev")
}

func setDefaults(v *viper.Viper) {
	// 環境変数だけで上書きできるよう、既定値の無いキーも登録する
	v.SetDefault("database.url", "")
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("app.default_items_per_page", DefaultItemsPerPage)
	v.SetDefault("app.max_items_per_page", DefaultMaxItemsPerPage)
	v.SetDefault("app.max_redraws", DefaultMaxRedraws)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Authorization", "Content-Type", "X-User-ID", "X-Admin"})
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.key_prefix", "flashcards:")
	v.SetDefault("cache.ttl", 5*time.Minute)
}

// Load は path 配下の config.yaml と APP_ 接頭辞の環境変数を読み込む。
// 設定ファイルが無い場合は既定値と環境変数だけで続行する
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// 例: APP_DATABASE_URL -> database.url
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		slog.Warn("Config file not found. Using defaults and environment variables.", slog.String("path", path))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.App.DefaultItemsPerPage <= 0 {
		cfg.App.DefaultItemsPerPage = DefaultItemsPerPage
	}
	if cfg.App.MaxItemsPerPage < cfg.App.DefaultItemsPerPage {
		cfg.App.MaxItemsPerPage = cfg.App.DefaultItemsPerPage
	}
	if cfg.App.MaxRedraws < 0 {
		cfg.App.MaxRedraws = DefaultMaxRedraws
	}
	if cfg.Database.URL == "" {
		slog.Warn("Database URL is not set in config.")
	}

	slog.Info("Config loaded successfully",
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
		slog.Bool("auth_enabled", cfg.Auth.Enabled),
		slog.Bool("cache_enabled", cfg.Cache.RedisAddr != ""),
	)
	return &cfg, nil
}
