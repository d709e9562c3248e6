package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string
	Port   string

	JWTSecret             string
	MembersTokenExpiry    time.Duration
	MembersAccessCode     string
	MembersAccessCodeHash string

	RedisURL      string
	RedisAddr     string
	RedisPassword string
	CartTTL       time.Duration
	MenuCacheTTL  time.Duration

	MenuSource    string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	MigrationsDir string

	CloudinaryURL       string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	OriginURL          string
	OrderRelayURL      string
	WebhookTimeout     time.Duration
	ConfirmationWindow time.Duration
	RestaurantName     string
}

const (
	MenuSourceStatic   = "static"
	MenuSourcePostgres = "postgres"
)

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	port := getEnv("APP_PORT", getEnv("PORT", "8082"))

	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   port,

		JWTSecret:             getEnv("JWT_SECRET", "secret"),
		MembersTokenExpiry:    getEnvDuration("MEMBERS_TOKEN_EXPIRY", 24*time.Hour),
		MembersAccessCode:     getEnv("MEMBERS_ACCESS_CODE", "2301"),
		MembersAccessCodeHash: os.Getenv("MEMBERS_ACCESS_CODE_HASH"),

		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CartTTL:       getEnvDuration("CART_TTL", 24*time.Hour),
		MenuCacheTTL:  getEnvDuration("MENU_CACHE_TTL", 10*time.Minute),

		MenuSource:    getEnv("MENU_SOURCE", MenuSourceStatic),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "treehouse"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "database/migration"),

		CloudinaryURL:       os.Getenv("CLOUDINARY_URL"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		OriginURL:          os.Getenv("ORIGIN_URL"),
		OrderRelayURL:      getEnv("ORDER_RELAY_URL", fmt.Sprintf("http://localhost:%s/api/order", port)),
		WebhookTimeout:     getEnvDuration("WEBHOOK_TIMEOUT", 10*time.Second),
		ConfirmationWindow: getEnvDuration("CONFIRMATION_WINDOW", 3*time.Second),
		RestaurantName:     getEnv("RESTAURANT_NAME", "The Treehouse"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Server will run on port: %s", cfg.Port)

	return cfg
}

// WebhookURL is read on every call: a missing webhook is a per-request
// configuration error, never a startup failure.
func WebhookURL() string {
	return os.Getenv("ZAPIER_WEBHOOK_URL")
}

func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid duration %q for %s, using %s", value, key, defaultValue)
		return defaultValue
	}
	return d
}
