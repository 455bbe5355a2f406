package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/aruiz-dev/tasklist/internal/tokens"
)

type Config struct {
	ServerPort  int
	DatabaseURL string
	JWTSecret   []byte
	TokenTTL    time.Duration
	DBEcho      bool
	LogLevel    string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env file not found: %v, using system environment", err)
	}

	cfg := &Config{
		ServerPort:  envIntDefault("SERVER_PORT", 8080),
		DatabaseURL: envDefault("DATABASE_URL", "tasklist.db"),
		JWTSecret:   []byte(must(os.Getenv("JWT_SECRET"), "JWT_SECRET")),
		TokenTTL:    time.Duration(envIntDefault("TOKEN_TTL_MINUTES", int(tokens.DefaultTTL/time.Minute))) * time.Minute,
		DBEcho:      envBool("DB_ECHO"),
		LogLevel:    envDefault("LOG_LEVEL", "info"),
	}
	return cfg
}

func must(v string, name string) string {
	if v == "" {
		log.Fatalf("missing required env %s", name)
	}
	return v
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "t":
		return true
	}
	return false
}
