// Package config loads service configuration from environment
// variables, with a .env file honored for local development.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StoreBackendMemory     = "memory"
	StoreBackendClickHouse = "clickhouse"
)

type Config struct {
	ServerPort   string
	StoreBackend string

	// ClickHouse settings, used when StoreBackend is "clickhouse".
	ClickHouseDSN string

	// Seeding. A zero SeedRandomSeed means seed from the wall clock.
	SeedCount      int
	SeedRandomSeed int64

	// Kafka trade feed.
	FeedEnabled  bool
	KafkaBroker  string
	KafkaTopic   string
	KafkaGroupID string

	// Per-client rate limiting.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := fmt.Sprintf("clickhouse://%s:%s@%s:%s/%s?dial_timeout=10s&read_timeout=20s",
		getEnv("CLICKHOUSE_USER", "default"),
		getEnv("CLICKHOUSE_PASSWORD", ""),
		getEnv("CLICKHOUSE_HOST", "localhost"),
		getEnv("CLICKHOUSE_TCP_PORT", "9000"),
		getEnv("CLICKHOUSE_DB", "default"),
	)

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		StoreBackend:  getEnv("STORE_BACKEND", StoreBackendMemory),
		ClickHouseDSN: dsn,

		SeedCount:      getEnvInt("SEED_COUNT", 50),
		SeedRandomSeed: int64(getEnvInt("SEED_RANDOM_SEED", 0)),

		FeedEnabled:  getEnvBool("FEED_ENABLED", false),
		KafkaBroker:  getEnv("KAFKA_BROKER", "localhost:9092"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "trades"),
		KafkaGroupID: getEnv("KAFKA_GROUP_ID", "tradedesk"),

		RateLimitPerSecond: getEnvFloat("RATE_LIMIT_PER_SECOND", 50),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 100),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
