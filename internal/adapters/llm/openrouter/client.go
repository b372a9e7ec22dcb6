package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vvk-babyorgano/baby-name-generator/internal/domain"
)

const temperature = 0.9

// Client implements ports.Completer and ports.ModelLister against the
// OpenRouter chat-completions API. Any provider exposing the same
// OpenAI-compatible shape works unchanged.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// chatRequest / chatResponse mirror the OpenAI-compatible API shapes.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete issues one completion call for the given model and classifies
// the outcome with the domain sentinels so the fallback loop can decide
// whether and how to advance.
func (c *Client) Complete(ctx context.Context, model domain.ModelCandidate, prompt string) (string, error) {
	reqBody := chatRequest{
		Model:       model.ID,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   model.MaxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", domain.ErrTransport, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("%w: model %s: %s", domain.ErrRateLimited, model.ID, strings.TrimSpace(string(respBody)))
	}
	if resp.StatusCode != http.StatusOK {
		return "", classifyUpstream(model.ID, fmt.Sprintf("status %d: %s", resp.StatusCode, respBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("%w: malformed response body: %w", domain.ErrUpstream, err)
	}

	// A 200 can still carry an explicit error object instead of choices.
	if chatResp.Error != nil {
		return "", classifyUpstream(model.ID, chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: model %s returned no choices", domain.ErrEmptyCompletion, model.ID)
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: model %s", domain.ErrEmptyCompletion, model.ID)
	}

	c.logger.DebugContext(ctx, "completion received", "model", model.ID, "bytes", len(content))
	return content, nil
}

// classifyUpstream separates rate-limit/quota failures from generic upstream
// errors; the two are actioned differently by the caller.
func classifyUpstream(modelID, message string) error {
	if isRateLimitMessage(message) {
		return fmt.Errorf("%w: model %s: %s", domain.ErrRateLimited, modelID, message)
	}
	return fmt.Errorf("%w: model %s: %s", domain.ErrUpstream, modelID, message)
}

func isRateLimitMessage(message string) bool {
	lower := strings.ToLower(message)
	for _, marker := range []string{"rate limit", "rate-limit", "quota", "daily limit", "free-models-per-day"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

type modelsResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ListModels fetches the upstream model catalogue. Diagnostic passthrough
// for GET /test-api and the models subcommand.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", domain.ErrTransport, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrUpstream, resp.StatusCode, respBody)
	}

	var parsed modelsResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrUpstream, err)
	}

	ids := make([]string, len(parsed.Data))
	for i, m := range parsed.Data {
		ids[i] = m.ID
	}
	return ids, nil
}
