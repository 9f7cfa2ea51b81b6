package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache   Cache
	Session Session
	Breaker Breaker
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID      string   `validate:"required"`
	Brokers      []string `validate:"required,min=1,dive,hostname_port"`
	CatalogTopic string   `validate:"required"`
	EventsTopic  string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	AutoMigrate bool
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

// Cache кэш результатов поиска пунктов по адресу
type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

// Session открытые модалки выбора пункта
type Session struct {
	Capacity    int           `validate:"gte=1"`
	TTL         time.Duration `validate:"gt=0"`
	ScrollDelay time.Duration `validate:"gte=0"`
	SearchLimit int           `validate:"gte=1,lte=100"`
}

// Breaker circuit breaker публикации аналитики
type Breaker struct {
	MaxRequests         uint32        `validate:"gte=1"`
	Interval            time.Duration `validate:"gte=0"`
	Timeout             time.Duration `validate:"gt=0"`
	ConsecutiveFailures uint32        `validate:"gte=1"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:      env("KAFKA_GROUP_ID", "pickup-point-service"),
			CatalogTopic: env("KAFKA_CATALOG_TOPIC", "pickup-points"),
			EventsTopic:  env("KAFKA_EVENTS_TOPIC", "pickup-events"),
			Brokers:      strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "pickup"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			AutoMigrate: envBool("POSTGRES_AUTO_MIGRATE", true),
		},

		Cache: Cache{
			Capacity: envInt("SEARCH_CACHE_CAPACITY", 1000),
			TTL:      envDuration("SEARCH_CACHE_TTL", 10*time.Minute),
		},

		Session: Session{
			Capacity:    envInt("SESSION_CAPACITY", 10000),
			TTL:         envDuration("SESSION_TTL", 30*time.Minute),
			ScrollDelay: envDuration("SESSION_SCROLL_DELAY", 100*time.Millisecond),
			SearchLimit: envInt("SESSION_SEARCH_LIMIT", 20),
		},

		Breaker: Breaker{
			MaxRequests:         uint32(envInt("BREAKER_MAX_REQUESTS", 1)),
			Interval:            envDuration("BREAKER_INTERVAL", time.Minute),
			Timeout:             envDuration("BREAKER_TIMEOUT", 30*time.Second),
			ConsecutiveFailures: uint32(envInt("BREAKER_CONSECUTIVE_FAILURES", 5)),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
