package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database (options store)
	DatabaseURL string

	// Kafka
	KafkaBrokers string
	KafkaTopic   string
	KafkaGroupID string

	// API Configuration
	APIPort string
	APIHost string

	// Admin bearer tokens and action tokens
	JWTSecret      string
	AdminJWTSecret string
	TokenTTL       time.Duration

	// Browser origins allowed to call the admin API
	AllowedOrigins []string

	// WooCommerce
	WooCommerceURL            string
	WooCommerceConsumerKey    string
	WooCommerceConsumerSecret string
	WooCommerceWebhookSecret  string
	WooCommerceRPS            int

	// Indexing
	AlgoliaBatchSize int
	AsyncIndexing    bool

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	jwtSecret := getEnv("JWT_SECRET", "your-jwt-secret-key-here")

	return &Config{
		DatabaseURL:               getEnv("DATABASE_URL", "sqlite://algowoo.db"),
		KafkaBrokers:              getEnv("KAFKA_BROKERS", "localhost:9092"),
		KafkaTopic:                getEnv("KAFKA_TOPIC", "product-events"),
		KafkaGroupID:              getEnv("KAFKA_GROUP_ID", "algowoo-worker"),
		APIPort:                   getEnv("API_PORT", "8080"),
		APIHost:                   getEnv("API_HOST", "0.0.0.0"),
		JWTSecret:                 jwtSecret,
		AdminJWTSecret:            getEnv("ADMIN_JWT_SECRET", jwtSecret),
		AllowedOrigins:            splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
		TokenTTL:                  time.Duration(getEnvAsInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		WooCommerceURL:            getEnv("WOOCOMMERCE_URL", "http://localhost"),
		WooCommerceConsumerKey:    getEnv("WOOCOMMERCE_CONSUMER_KEY", ""),
		WooCommerceConsumerSecret: getEnv("WOOCOMMERCE_CONSUMER_SECRET", ""),
		WooCommerceWebhookSecret:  getEnv("WOOCOMMERCE_WEBHOOK_SECRET", ""),
		WooCommerceRPS:            getEnvAsInt("WOOCOMMERCE_RPS", 5),
		AlgoliaBatchSize:          getEnvAsInt("ALGOLIA_BATCH_SIZE", 1000),
		AsyncIndexing:             getEnvAsBool("ASYNC_INDEXING", false),
		Env:                       getEnv("ENV", "development"),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
	}, nil
}

// Brokers splits the comma separated KAFKA_BROKERS value.
func (c *Config) Brokers() []string {
	return splitList(c.KafkaBrokers)
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
