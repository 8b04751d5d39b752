package config

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	Addr string `envconfig:"ADDR" default:":8080"`

	// DataSource selects where catalog/order/user data comes from:
	// "fixture" for in-memory canned data, "remote" for the deployed
	// microservices.
	DataSource string `envconfig:"DATA_SOURCE" default:"fixture"`

	// StateStore selects the key-value backend for cart and session state:
	// "memory", "redis" or "postgres".
	StateStore string `envconfig:"STATE_STORE" default:"memory"`

	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
	UsersURL   string        `envconfig:"API_USERS_URL" default:"http://localhost:3001/api/users"`
	StoresURL  string        `envconfig:"API_STORES_URL" default:"http://localhost:3002/api/stores"`
	OrdersURL  string        `envconfig:"API_ORDERS_URL" default:"http://localhost:3003/api/orders"`

	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`

	RedisHost string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort string `envconfig:"REDIS_PORT" default:"6379"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBName     string `envconfig:"DB_NAME" default:"storefront"`
	DBUser     string `envconfig:"DB_USER" default:"storefront"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`

	// KafkaBroker is optional; empty disables order event publishing.
	KafkaBroker string `envconfig:"KAFKA_BROKER" default:""`
	KafkaTopic  string `envconfig:"KAFKA_TOPIC" default:"orders"`
}

func MustLoad() Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("Failed to process config:", err)
	}
	return cfg
}

func MustInitRedis(cfg Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func MustInitPostgres(cfg Config) *sql.DB {
	connStr := "host=" + cfg.DBHost + " port=" + cfg.DBPort + " user=" + cfg.DBUser +
		" password=" + cfg.DBPassword + " dbname=" + cfg.DBName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func NewKafkaWriter(cfg Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
}
