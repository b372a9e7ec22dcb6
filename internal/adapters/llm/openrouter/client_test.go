package openrouter_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vvk-babyorgano/baby-name-generator/internal/adapters/llm/openrouter"
	"github.com/vvk-babyorgano/baby-name-generator/internal/domain"
)

func testModel() domain.ModelCandidate {
	return domain.ModelCandidate{ID: "test-model", Label: "Test Model", MaxTokens: 350}
}

func TestClient_Complete_Success(t *testing.T) {
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("bad auth header: %s", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("bad content-type: %s", r.Header.Get("Content-Type"))
		}

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotReq)

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "1. Aarav - Peaceful\n2. Diya - Lamp of light"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), "test-key", srv.URL, slog.Default())

	text, err := client.Complete(context.Background(), testModel(), "a prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "1. Aarav - Peaceful\n2. Diya - Lamp of light" {
		t.Errorf("unexpected text: %s", text)
	}

	if gotReq["model"] != "test-model" {
		t.Errorf("request model: %v", gotReq["model"])
	}
	if gotReq["max_tokens"] != float64(350) {
		t.Errorf("request max_tokens: %v", gotReq["max_tokens"])
	}
	if _, ok := gotReq["temperature"]; !ok {
		t.Error("request missing temperature")
	}
}

func TestClient_Complete_UpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), "key", srv.URL, slog.Default())

	_, err := client.Complete(context.Background(), testModel(), "prompt")
	if !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestClient_Complete_RateLimitedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit exceeded"}}`))
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), "key", srv.URL, slog.Default())

	_, err := client.Complete(context.Background(), testModel(), "prompt")
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

func TestClient_Complete_QuotaMessageInErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"message":"Daily quota for free models exceeded"}}`))
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), "key", srv.URL, slog.Default())

	_, err := client.Complete(context.Background(), testModel(), "prompt")
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Errorf("expected ErrRateLimited for quota message, got %v", err)
	}
}

func TestClient_Complete_ErrorPayloadOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"message":"model is overloaded"}}`))
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), "key", srv.URL, slog.Default())

	_, err := client.Complete(context.Background(), testModel(), "prompt")
	if !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
	if errors.Is(err, domain.ErrRateLimited) {
		t.Errorf("generic error payload must not classify as rate-limited: %v", err)
	}
}

func TestClient_Complete_EmptyCompletion(t *testing.T) {
	cases := map[string]string{
		"no choices":    `{"choices":[]}`,
		"blank content": `{"choices":[{"message":{"content":"   "}}]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			client := openrouter.NewClient(srv.Client(), "key", srv.URL, slog.Default())

			_, err := client.Complete(context.Background(), testModel(), "prompt")
			if !errors.Is(err, domain.ErrEmptyCompletion) {
				t.Errorf("expected ErrEmptyCompletion, got %v", err)
			}
		})
	}
}

func TestClient_Complete_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), "key", srv.URL, slog.Default())

	_, err := client.Complete(context.Background(), testModel(), "prompt")
	if !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestClient_Complete_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // connection refused

	client := openrouter.NewClient(http.DefaultClient, "key", srv.URL, slog.Default())

	_, err := client.Complete(context.Background(), testModel(), "prompt")
	if !errors.Is(err, domain.ErrTransport) {
		t.Errorf("expected ErrTransport, got %v", err)
	}
}

func TestClient_ListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("expected /models, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"qwen/qwen3-4b:free"},{"id":"openai/gpt-4.1-mini"}]}`))
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), "key", srv.URL, slog.Default())

	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) != 2 || models[0] != "qwen/qwen3-4b:free" {
		t.Errorf("unexpected models: %v", models)
	}
}
