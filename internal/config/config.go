package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Env       string
	JwtSecret string
	DbURL     string
	RateLimit RateLimit
	AuthLimit RateLimit
}

// RateLimit holds the request cap and window length for one limiter.
type RateLimit struct {
	Max    int
	Window time.Duration
}

// Dev reports whether the service runs outside production, which gates
// error detail disclosure in responses.
func (c *Config) Dev() bool {
	return c.Env != "production"
}

// Load reads the configuration from a .env file or environment variables and
// returns a Config struct. JWT_SECRET and DATABASE_URL are required; a
// missing signing secret is a startup-time fatal misconfiguration.
func Load() (*Config, error) {
	// Try to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	rateMax, err := intEnv("RATE_LIMIT_MAX", 100)
	if err != nil {
		return nil, err
	}
	windowSecs, err := intEnv("RATE_LIMIT_WINDOW_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	authMax, err := intEnv("AUTH_RATE_LIMIT_MAX", 10)
	if err != nil {
		return nil, err
	}

	window := time.Duration(windowSecs) * time.Second

	cfg := &Config{
		Port:      port,
		Env:       env,
		JwtSecret: jwtSecret,
		DbURL:     dbURL,
		RateLimit: RateLimit{Max: rateMax, Window: window},
		AuthLimit: RateLimit{Max: authMax, Window: window},
	}
	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}
