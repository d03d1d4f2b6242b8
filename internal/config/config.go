package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	Env     string
	LLM     LLMConfig
	Session SessionConfig
}

type LLMConfig struct {
	// UseFake selects the deterministic offline client. Defaults to true
	// only when no API key is available in a local environment.
	UseFake bool
	Model   string
	APIKey  string
}

type SessionConfig struct {
	MaxEntries int
	TTL        time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:    *port,
		Env:     env,
		LLM:     loadLLMConfig(env),
		Session: loadSessionConfig(),
	}, nil
}

func loadLLMConfig(env string) LLMConfig {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	useFake := false
	if raw := strings.TrimSpace(os.Getenv("LLM_FAKE")); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			useFake = v
		}
	} else if apiKey == "" && strings.EqualFold(env, "local") {
		useFake = true
	}
	return LLMConfig{
		UseFake: useFake,
		Model:   firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "gemini-2.5-flash"),
		APIKey:  apiKey,
	}
}

func loadSessionConfig() SessionConfig {
	cfg := SessionConfig{MaxEntries: 128, TTL: 15 * time.Minute}
	if raw := strings.TrimSpace(os.Getenv("SESSION_MAX")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.MaxEntries = n
		}
	}
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.TTL = d
		}
	}
	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
