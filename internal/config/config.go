package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration for the admin front end.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Backend BackendConfig `yaml:"backend"`
	Redis   RedisConfig   `yaml:"redis"`
	Session SessionConfig `yaml:"session"`
	Logger  LoggerConfig  `yaml:"logger"`
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name     string `yaml:"name"`
	Env      string `yaml:"env"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Version  string `yaml:"version"`
	Hostname string `yaml:"hostname"`
}

// Addr returns the listen address.
func (a AppConfig) Addr() string {
	return a.Host + ":" + a.Port
}

// BackendConfig selects the REST backend the screens talk to.
type BackendConfig struct {
	// BaseURL, when set, wins over host sniffing.
	BaseURL        string `yaml:"base_url"`
	ProductionHost string `yaml:"production_host"`
	ProductionURL  string `yaml:"production_url"`
	LocalURL       string `yaml:"local_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ResolveBaseURL applies the host sniffing rule: the production hostname maps
// to the fixed HTTPS URL, anything else to the local development backend.
func (b BackendConfig) ResolveBaseURL(hostname string) string {
	if b.BaseURL != "" {
		return b.BaseURL
	}
	if hostname != "" && strings.EqualFold(hostname, b.ProductionHost) {
		return b.ProductionURL
	}
	return b.LocalURL
}

// RedisConfig holds session store connection values.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SessionConfig controls browser session behavior.
type SessionConfig struct {
	CookieName string `yaml:"cookie_name"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables, with env values taking precedence over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:    "helpdesk-admin",
			Env:     "development",
			Host:    "0.0.0.0",
			Port:    "3000",
			Version: "dev",
		},
		Backend: BackendConfig{
			ProductionHost: "helpdesk.example.com",
			ProductionURL:  "https://api.helpdesk.example.com",
			LocalURL:       "http://localhost:5192",
			TimeoutSeconds: 30,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Session: SessionConfig{
			CookieName: "helpdesk_session",
			TTLMinutes: 480,
		},
		Logger: LoggerConfig{
			Level: "info",
		},
	}

	path := getEnv("CONFIG_PATH", "config.yaml")
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.App.Hostname == "" {
		if hn, err := os.Hostname(); err == nil {
			cfg.App.Hostname = hn
		}
	}
	if cfg.Backend.TimeoutSeconds <= 0 {
		cfg.Backend.TimeoutSeconds = 30
	}
	if cfg.Session.TTLMinutes <= 0 {
		cfg.Session.TTLMinutes = 480
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnv("APP_PORT", cfg.App.Port)
	cfg.App.Version = getEnv("APP_VERSION", cfg.App.Version)
	cfg.App.Hostname = getEnv("APP_HOSTNAME", cfg.App.Hostname)

	cfg.Backend.BaseURL = getEnv("BACKEND_BASE_URL", cfg.Backend.BaseURL)
	cfg.Backend.ProductionHost = getEnv("BACKEND_PRODUCTION_HOST", cfg.Backend.ProductionHost)
	cfg.Backend.ProductionURL = getEnv("BACKEND_PRODUCTION_URL", cfg.Backend.ProductionURL)
	cfg.Backend.LocalURL = getEnv("BACKEND_LOCAL_URL", cfg.Backend.LocalURL)
	cfg.Backend.TimeoutSeconds = getEnvAsInt("BACKEND_TIMEOUT_SECONDS", cfg.Backend.TimeoutSeconds)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Redis.DB)

	cfg.Session.CookieName = getEnv("SESSION_COOKIE_NAME", cfg.Session.CookieName)
	cfg.Session.TTLMinutes = getEnvAsInt("SESSION_TTL_MINUTES", cfg.Session.TTLMinutes)

	cfg.Logger.Level = getEnv("LOG_LEVEL", cfg.Logger.Level)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
