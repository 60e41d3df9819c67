package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string
	JWTSecret      string

	// RateLimit uses the ulule/limiter format, e.g. "300-M".
	RateLimit string
	// RedisURL backs the rate limiter store when set; the in-memory store is used otherwise.
	RedisURL string

	// KafkaBrokers enables the posting event publisher when non-empty.
	KafkaBrokers      []string
	KafkaPostingTopic string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_POSTING_TOPIC", "ledger.postings")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:       v.GetString("PGSQL_URL"),
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:     v.GetBool("RUN_MIGRATIONS"),
		MigrationsPath:    v.GetString("MIGRATIONS_PATH"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		RateLimit:         v.GetString("RATE_LIMIT"),
		RedisURL:          v.GetString("REDIS_URL"),
		KafkaBrokers:      splitList(v.GetString("KAFKA_BROKERS")),
		KafkaPostingTopic: v.GetString("KAFKA_POSTING_TOPIC"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.RateLimit == "" {
		cfg.RateLimit = "300-M"
	}

	return cfg
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
