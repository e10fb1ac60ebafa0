package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID    string
	Region       string
	LogLevel     string
	DevMode      bool
	FinnhubKey   string
	AlpacaKey    string
	AlpacaSecret string
	VertexModel  string
	AITTL        time.Duration
	Port         string
}

func New() *Config {
	// Optional; real deployments set env vars directly.
	_ = godotenv.Load()

	return &Config{
		ProjectID:    os.Getenv("PROJECTID"),
		Region:       getEnvOrDefault("REGION", "us-central1"),
		LogLevel:     os.Getenv("LOGLEVEL"),
		DevMode:      getEnvBool("DEVMODE"),
		FinnhubKey:   os.Getenv("FINNHUBKEY"),
		AlpacaKey:    os.Getenv("ALPACAKEY"),
		AlpacaSecret: os.Getenv("ALPACASECRET"),
		VertexModel:  getEnvOrDefault("VERTEXMODEL", "gemini-1.5-flash"),
		AITTL:        getEnvDuration("AITTL", 15*time.Minute),
		Port:         getEnvOrDefault("PORT", "8080"),
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
