package app

import (
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/stainsolver/stainsolver-backend/internal/data/db"
	"github.com/stainsolver/stainsolver-backend/internal/isr"
	"github.com/stainsolver/stainsolver-backend/internal/platform/envutil"
	"github.com/stainsolver/stainsolver-backend/internal/services"
)

const (
	EnvLocal      = "local"
	EnvProduction = "production"
)

type Config struct {
	Env         string
	Version     string
	LogMode     string
	Port        string
	MetricsAddr string

	DB db.Config

	StoreTimeout         time.Duration
	ISRWindow            time.Duration
	ISRMaxEntries        int
	ISRRevalidateTimeout time.Duration
	RedisAddr            string
	RedisTTL             time.Duration
	PreloadOnStart       bool

	RateLimitRPS          float64
	RateLimitBurst        int
	SitemapRateLimitRPS   float64
	SitemapRateLimitBurst int
	CORSOrigins           []string
	SitemapBaseURL        string
	ShutdownTimeout       time.Duration
}

// LoadEnvFile loads .env.local when APP_ENV=local. Variables already set win.
func LoadEnvFile() error {
	if !strings.EqualFold(envutil.String("APP_ENV", ""), EnvLocal) {
		return nil
	}
	return godotenv.Load(".env.local")
}

func LoadConfig() Config {
	return Config{
		Env:         strings.ToLower(envutil.String("APP_ENV", "development")),
		Version:     envutil.String("APP_VERSION", "dev"),
		LogMode:     envutil.String("LOG_MODE", "development"),
		Port:        envutil.String("PORT", "8080"),
		MetricsAddr: envutil.String("METRICS_ADDR", ""),

		DB: db.Config{
			Driver:     envutil.String("DB_DRIVER", db.DriverPostgres),
			Host:       envutil.String("POSTGRES_HOST", "localhost"),
			Port:       envutil.String("POSTGRES_PORT", "5432"),
			User:       envutil.String("POSTGRES_USER", "postgres"),
			Password:   envutil.String("POSTGRES_PASSWORD", ""),
			Name:       envutil.String("POSTGRES_NAME", "stainsolver"),
			SSLMode:    envutil.String("POSTGRES_SSLMODE", "disable"),
			SQLitePath: envutil.String("SQLITE_PATH", "stainsolver.db"),
		},

		StoreTimeout:         envutil.Duration("STORE_TIMEOUT", services.DefaultStoreTimeout),
		ISRWindow:            envutil.Duration("ISR_WINDOW", isr.DefaultWindow),
		ISRMaxEntries:        envutil.Int("ISR_MAX_ENTRIES", isr.DefaultMaxEntries),
		ISRRevalidateTimeout: envutil.Duration("ISR_REVALIDATE_TIMEOUT", isr.DefaultRevalidateTimeout),
		RedisAddr:            envutil.String("REDIS_ADDR", ""),
		RedisTTL:             envutil.Duration("REDIS_TTL", isr.DefaultRedisTTL),
		PreloadOnStart:       envutil.Bool("ISR_PRELOAD", true),

		RateLimitRPS:          envutil.Float("RATE_LIMIT_RPS", 10),
		RateLimitBurst:        envutil.Int("RATE_LIMIT_BURST", 30),
		SitemapRateLimitRPS:   envutil.Float("SITEMAP_RATE_LIMIT_RPS", 0.2),
		SitemapRateLimitBurst: envutil.Int("SITEMAP_RATE_LIMIT_BURST", 3),
		CORSOrigins:           envutil.List("CORS_ORIGINS", nil),
		SitemapBaseURL:        envutil.String("SITEMAP_BASE_URL", "http://localhost:5000"),
		ShutdownTimeout:       envutil.Duration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func (c Config) IsProduction() bool { return c.Env == EnvProduction }
