package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Bipul-Dubey/loyalty-predictor/constants"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port             string        `yaml:"port"`
	PredictorURL     string        `yaml:"predictor_url"`
	PredictorTimeout time.Duration `yaml:"predictor_timeout"`
	ResetDelay       time.Duration `yaml:"reset_delay"`
	GinMode          string        `yaml:"gin_mode"`
	AllowedOrigins   []string      `yaml:"cors_allowed_origins"`
	LogLevel         string        `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Port:             "8081",
		PredictorURL:     constants.DefaultPredictorURL,
		PredictorTimeout: 10 * time.Second,
		ResetDelay:       3 * time.Second,
		GinMode:          gin.ReleaseMode,
		AllowedOrigins:   []string{"*"},
		LogLevel:         "info",
	}
}

// Load resolves the configuration. Later sources win:
// defaults < YAML file at path < .env files < process environment.
// An empty path skips the YAML step; missing .env files are ignored.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables already set in the environment.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.PredictorURL = getEnv("PREDICTOR_URL", cfg.PredictorURL)
	cfg.GinMode = getEnv("GIN_MODE", cfg.GinMode)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if origins := getEnv("CORS_ALLOWED_ORIGINS", ""); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}

	var err error
	if cfg.PredictorTimeout, err = getEnvDuration("PREDICTOR_TIMEOUT", cfg.PredictorTimeout); err != nil {
		return nil, err
	}
	if cfg.ResetDelay, err = getEnvDuration("RESET_DELAY", cfg.ResetDelay); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the services cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.PredictorURL)
	if err != nil {
		return fmt.Errorf("invalid predictor url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid predictor url %q: want http(s)://host/path", c.PredictorURL)
	}
	if c.PredictorTimeout < 0 {
		return fmt.Errorf("predictor timeout must not be negative, got %s", c.PredictorTimeout)
	}
	if c.ResetDelay < 0 {
		return fmt.Errorf("reset delay must not be negative, got %s", c.ResetDelay)
	}
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port must not be empty")
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("invalid gin mode %q", c.GinMode)
	}
	return nil
}

// Addr is the listen address for the web server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
