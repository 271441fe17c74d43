package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret    string
	Issuer       string
	TokenTTL     time.Duration
	IsProduction bool
	LogMode      string
	ServerPort   string
	CorsOrigins  []string

	DbDriver   string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	SqlitePath string

	AdminEmail    string
	AdminPassword string

	MinioEnabled   bool
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	RedisAddr    string
	RedisChannel string

	SmtpHost     string
	SmtpPort     int
	SmtpUser     string
	SmtpPass     string
	SmtpFrom     string
	NotifyEmails []string

	RequestTimeout     time.Duration
	AuditRetentionDays int
	ImportWorkers      int
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "datadesk")
	TokenTTL = getDuration("TOKEN_TTL", 24*time.Hour)
	IsProduction = getBool("IS_PRODUCTION", false)
	LogMode = getEnv("LOG_MODE", "development")
	ServerPort = getEnv("SERVER_PORT", "8080")
	CorsOrigins = getList("CORS_ORIGINS")
	if len(CorsOrigins) == 0 {
		CorsOrigins = []string{"http://localhost:", "http://127.0.0.1:"}
	}

	DbDriver = getEnv("DB_DRIVER", "postgres")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "datadesk")
	SqlitePath = getEnv("SQLITE_PATH", "datadesk.db")

	AdminEmail = getEnv("ADMIN_EMAIL", "")
	AdminPassword = getEnv("ADMIN_PASSWORD", "")

	MinioEnabled = getBool("MINIO_ENABLED", false)
	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "datadesk")
	MinioUseSSL = getBool("MINIO_USE_SSL", false)

	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisChannel = getEnv("REDIS_CHANNEL", "datadesk.responses")

	SmtpHost = getEnv("SMTP_HOST", "")
	SmtpPort = getInt("SMTP_PORT", 587)
	SmtpUser = getEnv("SMTP_USER", "")
	SmtpPass = getEnv("SMTP_PASS", "")
	SmtpFrom = getEnv("SMTP_FROM", "")
	NotifyEmails = getList("NOTIFY_EMAILS")

	RequestTimeout = getDuration("REQUEST_TIMEOUT", 10*time.Second)
	AuditRetentionDays = getInt("AUDIT_RETENTION_DAYS", 90)
	ImportWorkers = getInt("IMPORT_WORKERS", 4)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
