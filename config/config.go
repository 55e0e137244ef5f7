package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBDriver   string // "postgres" or "sqlite"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string // sqlite only

	JWTSecret        string
	JWTExpiry        time.Duration
	JWTRefreshExpiry time.Duration

	RedisURL       string
	AllowedOrigins []string

	// BaseDomain is the apex under which portfolio subdomains live,
	// e.g. "cuthours.com" for alice.cuthours.com.
	BaseDomain string

	ResendAPIKey string
	MailFrom     string

	AIBaseURL string
	AITimeout time.Duration

	ContactRateLimit  int
	ContactRateWindow time.Duration
}

func Load() *Config {
	godotenv.Load()
	godotenv.Load("../.env")

	return &Config{
		Port: getEnv("PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "cuthours"),
		DBPassword: getEnv("DB_PASSWORD", "cuthours"),
		DBName:     getEnv("DB_NAME", "cuthours"),
		DBPath:     getEnv("DB_PATH", "cuthours.db"),

		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:        parseDuration(getEnv("JWT_EXPIRY", "15m"), 15*time.Minute),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h"), 168*time.Hour),

		RedisURL:       getEnv("REDIS_URL", "localhost:6379"),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "https://cuthours.com,http://localhost:3000")),

		BaseDomain: getEnv("BASE_DOMAIN", "cuthours.com"),

		ResendAPIKey: getEnv("EMAIL_RESEND_API_KEY", ""),
		MailFrom:     getEnv("MAIL_FROM", "CutHours <noreply@cuthours.com>"),

		AIBaseURL: getEnv("AI_BASE_URL", "https://bot-alistermartin.pythonanywhere.com"),
		AITimeout: parseDuration(getEnv("AI_TIMEOUT", "30s"), 30*time.Second),

		ContactRateLimit:  getEnvInt("CONTACT_RATE_LIMIT", 5),
		ContactRateWindow: parseDuration(getEnv("CONTACT_RATE_WINDOW", "1m"), time.Minute),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=disable TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
