package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvk-babyorgano/baby-name-generator/internal/domain"
)

const defaultMaxTokens = 350

type Config struct {
	HTTPAddr          string
	LogLevel          slog.Level
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	Candidates        []domain.ModelCandidate
	LLMTimeout        time.Duration
	AttemptPause      time.Duration
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr:          envOr("HTTP_ADDR", ":8080"),
		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL: envOr("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		LLMTimeout:        25 * time.Second,
		AttemptPause:      time.Second,
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		c.LLMTimeout = d
	}

	if v := os.Getenv("LLM_ATTEMPT_PAUSE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_ATTEMPT_PAUSE %q: %w", v, err)
		}
		c.AttemptPause = d
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	candidates, err := loadCandidates(os.Getenv("MODELS_FILE"))
	if err != nil {
		return Config{}, err
	}
	c.Candidates = candidates

	return c, nil
}

// modelsFile is the YAML shape of the candidate list. Order in the file is
// the try order; free models should come first.
type modelsFile struct {
	Models []domain.ModelCandidate `yaml:"models"`
}

// loadCandidates reads the ordered model list from path, or from
// ./models.yaml when path is empty, falling back to the built-in defaults
// when no file exists. A file named explicitly must load.
func loadCandidates(path string) ([]domain.ModelCandidate, error) {
	explicit := path != ""
	if path == "" {
		path = "models.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return nil, fmt.Errorf("read models file %s: %w", path, err)
		}
		return DefaultCandidates(), nil
	}

	var mf modelsFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse models file %s: %w", path, err)
	}
	if len(mf.Models) == 0 {
		return nil, fmt.Errorf("models file %s lists no models", path)
	}

	for i := range mf.Models {
		if mf.Models[i].ID == "" {
			return nil, fmt.Errorf("models file %s: entry %d has no id", path, i+1)
		}
		if mf.Models[i].MaxTokens <= 0 {
			mf.Models[i].MaxTokens = defaultMaxTokens
		}
	}

	return mf.Models, nil
}

// DefaultCandidates is the built-in fallback order: free models first, one
// paid model last.
func DefaultCandidates() []domain.ModelCandidate {
	return []domain.ModelCandidate{
		{ID: "qwen/qwen3-4b:free", Label: "Qwen3 4B (free)", MaxTokens: defaultMaxTokens},
		{ID: "meta-llama/llama-3.3-8b-instruct:free", Label: "Llama 3.3 8B (free)", MaxTokens: defaultMaxTokens},
		{ID: "openai/gpt-4.1-mini", Label: "GPT-4.1 mini (paid fallback)", MaxTokens: defaultMaxTokens},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
