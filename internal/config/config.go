package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Strava   StravaConfig
	Mapbox   MapboxConfig
	Segments SegmentsConfig
	Session  SessionConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
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
	SegmentsCacheTTL time.Duration
}

// StravaConfig - настройки клиента segment explorer
type StravaConfig struct {
	BaseURL        string
	AccessToken    string
	ActivityType   string
	RequestTimeout int // seconds
}

// MapboxConfig - настройки Directions API для соединительных линий
type MapboxConfig struct {
	BaseURL        string
	AccessToken    string
	WalkingProfile string
	RequestTimeout int // seconds
	MaxConcurrency int
}

type SegmentsConfig struct {
	BBoxMargin float64
}

type SessionConfig struct {
	Expiration   time.Duration
	CookieSecure bool
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env is optional, plain environment variables are enough
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return fromViper(viper.GetViper()), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SegmentsCacheTTL: time.Duration(v.GetInt("SEGMENTS_CACHE_TTL")) * time.Second,
		},
		Strava: StravaConfig{
			BaseURL:        v.GetString("STRAVA_BASE_URL"),
			AccessToken:    v.GetString("STRAVA_ACCESS_TOKEN"),
			ActivityType:   v.GetString("STRAVA_ACTIVITY_TYPE"),
			RequestTimeout: v.GetInt("STRAVA_REQUEST_TIMEOUT"),
		},
		Mapbox: MapboxConfig{
			BaseURL:        v.GetString("MAPBOX_BASE_URL"),
			AccessToken:    v.GetString("MAPBOX_ACCESS_TOKEN"),
			WalkingProfile: v.GetString("MAPBOX_WALKING_PROFILE"),
			RequestTimeout: v.GetInt("MAPBOX_REQUEST_TIMEOUT"),
			MaxConcurrency: v.GetInt("MAPBOX_MAX_CONCURRENCY"),
		},
		Segments: SegmentsConfig{
			BBoxMargin: v.GetFloat64("SEGMENTS_BBOX_MARGIN"),
		},
		Session: SessionConfig{
			Expiration:   time.Duration(v.GetInt("SESSION_EXPIRATION")) * time.Second,
			CookieSecure: v.GetBool("SESSION_COOKIE_SECURE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	cfg.applyDefaults()

	// в production cookie сессии всегда secure
	if cfg.IsProduction() {
		cfg.Session.CookieSecure = true
	}

	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Cache.SegmentsCacheTTL == 0 {
		c.Cache.SegmentsCacheTTL = 300 * time.Second
	}
	if c.Strava.BaseURL == "" {
		c.Strava.BaseURL = "https://www.strava.com/api/v3"
	}
	if c.Strava.ActivityType == "" {
		c.Strava.ActivityType = "running"
	}
	if c.Strava.RequestTimeout == 0 {
		c.Strava.RequestTimeout = 10
	}
	if c.Mapbox.BaseURL == "" {
		c.Mapbox.BaseURL = "https://api.mapbox.com"
	}
	if c.Mapbox.WalkingProfile == "" {
		c.Mapbox.WalkingProfile = "mapbox/walking"
	}
	if c.Mapbox.RequestTimeout == 0 {
		c.Mapbox.RequestTimeout = 10
	}
	if c.Mapbox.MaxConcurrency == 0 {
		c.Mapbox.MaxConcurrency = 4
	}
	if c.Segments.BBoxMargin == 0 {
		c.Segments.BBoxMargin = 0.01
	}
	if c.Session.Expiration == 0 {
		c.Session.Expiration = 24 * time.Hour
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN - строка подключения для sqlx/pgx
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// IsProduction - включает secure cookies сессии
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
