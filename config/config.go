package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string
	Environment string

	DatabaseURL string

	JWTKey             string
	JWTAlgorithm       string
	AccessTokenMinutes int

	CORSOrigins string

	SupabaseURL        string
	SupabaseKey        string
	SupabaseServiceKey string

	EmailSender   string
	EmailPassword string // SMTP App Password
	SMTPHost      string
	SMTPPort      string

	AdminEmail    string
	AdminPassword string
}

// Load initializes configuration from environment variables or defaults.
// The returned value is built once at startup and passed to every component
// that needs it.
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL: getEnv("DATABASE_URL", "app.db"),

		JWTKey:             getEnv("JWT_SECRET_KEY", "defaultSecret"),
		JWTAlgorithm:       getEnv("JWT_ALGORITHM", "HS256"),
		AccessTokenMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"),

		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseKey:        getEnv("SUPABASE_KEY", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),

		EmailSender:   getEnv("EMAIL_SENDER", ""),
		EmailPassword: getEnv("EMAIL_PASSWORD", ""),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	// Validate critical configuration
	if cfg.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if cfg.JWTAlgorithm != "HS256" {
		log.Printf("Warning: Unsupported JWT_ALGORITHM %q. Falling back to HS256.", cfg.JWTAlgorithm)
		cfg.JWTAlgorithm = "HS256"
	}
	if cfg.AccessTokenMinutes < 1 {
		log.Println("Warning: ACCESS_TOKEN_EXPIRE_MINUTES must be positive. Using 30.")
		cfg.AccessTokenMinutes = 30
	}

	return cfg
}

// CORSOriginList splits the comma-separated CORS_ORIGINS value.
func (c *Config) CORSOriginList() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
