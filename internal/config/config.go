package config

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerAddr   string
	APIBaseURL   string // remote auction platform REST API
	BroadcastURL string // platform websocket endpoint for live bid events
	MediaBaseURL string // prefix for path-absolute media references
	TemplateDir  string
	SessionKey   []byte
	CSRFKey      []byte
	CookieSecure bool
}

// Load reads configuration from the environment, consulting a .env file
// when present
func Load() *Config {
	// .env is optional; absence is not an error
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddr:   GetEnv("SERVER_ADDR", ":8090"),
		APIBaseURL:   GetEnv("API_BASE_URL", "http://localhost:8000"),
		BroadcastURL: GetEnv("BROADCAST_URL", "ws://localhost:8081/ws/items"),
		MediaBaseURL: GetEnv("MEDIA_BASE_URL", "http://localhost:8000"),
		TemplateDir:  GetEnv("TEMPLATE_DIR", "templates"),
		SessionKey:   secretKey("SESSION_KEY"),
		CSRFKey:      secretKey("CSRF_KEY"),
		CookieSecure: GetEnvBool("COOKIE_SECURE", false),
	}

	return cfg
}

// GetEnv returns the value of the environment variable or a default
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable or a default
func GetEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// GetEnvBool returns the boolean value of the environment variable or a default
func GetEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// secretKey decodes a base64 key from the environment; when unset or
// invalid a random key is generated, which invalidates cookies on restart
func secretKey(envVar string) []byte {
	raw := os.Getenv(envVar)
	if raw == "" {
		slog.Warn("secret key not set, generating a random one; set it in production", "var", envVar)
		return randomBytes(32)
	}
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil || len(key) < 32 {
		slog.Warn("secret key invalid or too short, generating a random one", "var", envVar)
		return randomBytes(32)
	}
	return key
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}
