package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Config holds everything read from the environment at startup. It is
// built once in main and passed by reference; nothing mutates it after
// that.
type Config struct {
	Port        string
	FrontendURL string

	LiveKitURL       string
	LiveKitAPIKey    string
	LiveKitAPISecret string

	RedisURL string
}

// Load reads the process environment into a Config. Missing LiveKit
// credentials are not fatal here: room creation and token issuance fail
// per-call instead, so the directory and health endpoints keep working.
func Load() *Config {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:3000"),
		LiveKitURL:       getEnv("LIVEKIT_URL", "ws://localhost:7880"),
		LiveKitAPIKey:    os.Getenv("LIVEKIT_API_KEY"),
		LiveKitAPISecret: os.Getenv("LIVEKIT_API_SECRET"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379"),
	}

	if cfg.LiveKitAPIKey == "" || cfg.LiveKitAPISecret == "" {
		logrus.Warn("LIVEKIT_API_KEY or LIVEKIT_API_SECRET not set; room creation and token issuance will fail")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
