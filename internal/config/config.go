package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Log        LogConfig
	Auth       AuthConfig
	Media      MediaConfig
	Directions DirectionsConfig
	Worker     WorkerConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	CatalogCacheTTL time.Duration
	RouteCacheTTL   time.Duration
	DraftSessionTTL time.Duration
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	SecretKey            string
	AccessTokenTTL       time.Duration
	DefaultAdminEmail    string
	DefaultAdminPassword string
}

type MediaConfig struct {
	Dir       string
	PublicURL string
}

type DirectionsConfig struct {
	BaseURL        string
	Profile        string
	RequestTimeout int
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        viper.GetString("API_HOST"),
			Port:        viper.GetInt("API_PORT"),
			Env:         viper.GetString("API_ENV"),
			CORSOrigins: parseCSV(viper.GetString("API_CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			CatalogCacheTTL: time.Duration(viper.GetInt("CATALOG_CACHE_TTL")) * time.Second,
			RouteCacheTTL:   time.Duration(viper.GetInt("ROUTE_CACHE_TTL")) * time.Second,
			DraftSessionTTL: time.Duration(viper.GetInt("DRAFT_SESSION_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			SecretKey:            viper.GetString("AUTH_SECRET_KEY"),
			AccessTokenTTL:       time.Duration(viper.GetInt("AUTH_TOKEN_TTL_MINUTES")) * time.Minute,
			DefaultAdminEmail:    viper.GetString("AUTH_DEFAULT_ADMIN_EMAIL"),
			DefaultAdminPassword: viper.GetString("AUTH_DEFAULT_ADMIN_PASSWORD"),
		},
		Media: MediaConfig{
			Dir:       viper.GetString("MEDIA_DIR"),
			PublicURL: viper.GetString("MEDIA_PUBLIC_URL"),
		},
		Directions: DirectionsConfig{
			BaseURL:        viper.GetString("DIRECTIONS_BASE_URL"),
			Profile:        viper.GetString("DIRECTIONS_PROFILE"),
			RequestTimeout: viper.GetInt("DIRECTIONS_REQUEST_TIMEOUT"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	// Set default values if not provided
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"http://localhost:5173"}
	}
	if cfg.Cache.CatalogCacheTTL == 0 {
		cfg.Cache.CatalogCacheTTL = 60 * time.Second
	}
	if cfg.Cache.RouteCacheTTL == 0 {
		cfg.Cache.RouteCacheTTL = 300 * time.Second
	}
	if cfg.Cache.DraftSessionTTL == 0 {
		cfg.Cache.DraftSessionTTL = 12 * time.Hour
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = 24 * time.Hour
	}
	if cfg.Media.Dir == "" {
		cfg.Media.Dir = "media"
	}
	if cfg.Media.PublicURL == "" {
		cfg.Media.PublicURL = "/media"
	}
	if cfg.Directions.Profile == "" {
		cfg.Directions.Profile = "driving"
	}
	if cfg.Directions.RequestTimeout == 0 {
		cfg.Directions.RequestTimeout = 10
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "audit-log-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}

	return cfg, nil
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
