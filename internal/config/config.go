package config

import (
	"os"
	"strings"
)

// Config holds all externally supplied settings. Populated once at
// startup; handlers receive what they need through constructors.
type Config struct {
	MongoURI       string
	DBName         string
	Port           string
	AccessSecret   string
	StripeSecret   string
	StripeBaseURL  string
	AllowedOrigins []string
}

func NewConfig() *Config {
	allowedOrigins := []string{"*"}
	if s := os.Getenv("ALLOWED_ORIGINS"); s != "" {
		allowedOrigins = strings.Split(s, ",")
	}

	return &Config{
		MongoURI:       os.Getenv("MONGOURI"),
		DBName:         getEnvOrDefault("DB_NAME", "doctorsPortal"),
		Port:           getEnvOrDefault("PORT", "5000"),
		AccessSecret:   os.Getenv("ACCESS_TOKEN"),
		StripeSecret:   os.Getenv("STRIPE_SECRET"),
		StripeBaseURL:  getEnvOrDefault("STRIPE_BASE_URL", "https://api.stripe.com"),
		AllowedOrigins: allowedOrigins,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
