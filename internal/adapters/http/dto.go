package http

import "github.com/vvk-babyorgano/baby-name-generator/internal/domain"

// GenerateResponse is the JSON shape returned by POST /generate. A degraded
// outcome keeps status 200 with empty names and a populated Error.
type GenerateResponse struct {
	Names     []domain.NameEntry `json:"names"`
	ModelUsed string             `json:"model_used,omitempty"`
	Error     string             `json:"error,omitempty"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	APIKeyLoaded bool   `json:"apiKeyLoaded"`
	Timestamp    string `json:"timestamp"`
}

type ModelsResponse struct {
	Models []string `json:"models"`
}

// RateLimitResponse is returned with status 429 when every candidate model
// failed on rate limits; it carries actionable remediation.
type RateLimitResponse struct {
	Error         string   `json:"error"`
	Details       string   `json:"details"`
	Solutions     []string `json:"solutions"`
	AddCreditsURL string   `json:"addCreditsUrl"`
}

type ErrorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}
