package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	DBDriver          string
	DatabaseDSN       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	ResetDB           bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret      string
	AccessTokenTTL time.Duration

	SwaggerHost string
}

const (
	defaultMySQLDSN    = "user:password@tcp(localhost:3306)/blog?charset=utf8mb4&parseTime=True&loc=Local"
	defaultPostgresDSN = "host=localhost user=postgres password=postgres dbname=blog port=5432 sslmode=disable"
)

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using process environment")
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", "mysql"))
	dsnDefault := defaultMySQLDSN
	if driver == "postgres" {
		dsnDefault = defaultPostgresDSN
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		DBDriver:          driver,
		DatabaseDSN:       getEnv("DATABASE_DSN", dsnDefault),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetime: time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute,
		ResetDB:           os.Getenv("RESET_DB") == "true",
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		JWTSecret:         getEnv("JWT_SECRET", "change-me"),
		AccessTokenTTL:    time.Duration(getEnvInt("JWT_ACCESS_TTL_MINUTES", 24*60)) * time.Minute,
		SwaggerHost:       os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			return parsed
		}
		log.Printf("config: invalid %s=%q, using default %d", key, v, def)
	}
	return def
}
