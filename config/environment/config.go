package environment

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultGroqBaseURL  = "https://api.groq.com/openai/v1"
	DefaultTextModel    = "llama-3.3-70b-versatile"
	DefaultVisionModel  = "llama-3.2-11b-vision-preview"
	DefaultWhisperModel = "whisper-large-v3"
)

// Config holds everything the service reads from the process environment.
type Config struct {
	Port string

	GroqAPIKey   string
	GroqBaseURL  string
	TextModel    string
	VisionModel  string
	WhisperModel string

	FirebaseCredentials string // base64 service account JSON
	FirebaseProjectID   string

	AdminUsername     string
	AdminPasswordHash string
	AdminJWTSecret    string
	AdminEmails       []string

	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int

	Debug bool
}

// Load reads a .env file when present and builds the Config.
func Load() (*Config, error) {
	// a missing .env is fine, real deployments inject variables directly
	_ = godotenv.Load()

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a Config from the current environment without validating it.
func FromEnv() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		GroqAPIKey:          os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:         getEnv("GROQ_BASE_URL", DefaultGroqBaseURL),
		TextModel:           getEnv("GROQ_TEXT_MODEL", DefaultTextModel),
		VisionModel:         getEnv("GROQ_VISION_MODEL", DefaultVisionModel),
		WhisperModel:        getEnv("GROQ_WHISPER_MODEL", DefaultWhisperModel),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS_BASE64"),
		FirebaseProjectID:   os.Getenv("FIREBASE_PROJECT_ID"),
		AdminUsername:       os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash:   os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminJWTSecret:      os.Getenv("ADMIN_JWT_SECRET"),
		AdminEmails:         splitList(os.Getenv("ADMIN_EMAILS")),
		AllowedOrigins:      splitList(getEnv("ALLOWED_ORIGINS", "*")),
		RateLimitRPS:        getFloat("RATE_LIMIT_RPS", 2),
		RateLimitBurst:      getInt("RATE_LIMIT_BURST", 5),
		Debug:               getBool("ALKHABIR_DEBUG", false),
	}
}

func (c *Config) Validate() error {
	if c.GroqAPIKey == "" {
		return errors.New("GROQ_API_KEY environment variable is missing")
	}
	if c.FirebaseCredentials != "" && c.FirebaseProjectID == "" {
		return errors.New("FIREBASE_PROJECT_ID is required when FIREBASE_CREDENTIALS_BASE64 is set")
	}
	if c.AdminUsername != "" && (c.AdminPasswordHash == "" || c.AdminJWTSecret == "") {
		return errors.New("ADMIN_PASSWORD_HASH and ADMIN_JWT_SECRET are required when ADMIN_USERNAME is set")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// FirebaseEnabled reports whether case history and user routes can be served.
func (c *Config) FirebaseEnabled() bool {
	return c.FirebaseCredentials != ""
}

// AdminEnabled reports whether the admin console login is configured.
func (c *Config) AdminEnabled() bool {
	return c.AdminUsername != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
