package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vvk-babyorgano/baby-name-generator/internal/app"
	"github.com/vvk-babyorgano/baby-name-generator/internal/domain"
	"github.com/vvk-babyorgano/baby-name-generator/internal/ports"
)

const addCreditsURL = "https://openrouter.ai/settings/credits"

type Handler struct {
	svc          *app.GeneratorService
	models       ports.ModelLister
	apiKeyLoaded bool
}

func NewHandler(svc *app.GeneratorService, models ports.ModelLister, apiKeyLoaded bool) *Handler {
	return &Handler{svc: svc, models: models, apiKeyLoaded: apiKeyLoaded}
}

func (h *Handler) Register(e *echo.Echo) {
	e.POST("/generate", h.Generate)
	e.GET("/health", h.Health)
	e.GET("/test-api", h.TestAPI)
	e.GET("/healthz", h.Healthz)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:       "ok",
		APIKeyLoaded: h.apiKeyLoaded,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}

// TestAPI lists the upstream model catalogue, to verify connectivity and
// credentials without spending a completion.
func (h *Handler) TestAPI(c echo.Context) error {
	models, err := h.models.ListModels(c.Request().Context())
	if err != nil {
		requestID, _ := c.Get("request_id").(string)
		slog.Error("model listing failed", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "Failed to reach the model API.",
			Details: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, ModelsResponse{Models: models})
}

func (h *Handler) Generate(c echo.Context) error {
	var prefs domain.PreferenceRecord
	if err := c.Bind(&prefs); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	resp, err := h.svc.Generate(c.Request().Context(), prefs)
	if err != nil {
		return h.mapGenerateError(c, err)
	}

	return c.JSON(http.StatusOK, GenerateResponse{
		Names:     resp.Names,
		ModelUsed: resp.ModelUsed,
	})
}

// mapGenerateError translates the aggregate orchestration failure into the
// three outward shapes: 429 for rate limiting, a soft 200 when models
// answered but nothing parsed, and 500 for everything else.
func (h *Handler) mapGenerateError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrRateLimited):
		slog.Warn("generation rate limited", "request_id", requestID, "error", err)
		return c.JSON(http.StatusTooManyRequests, RateLimitResponse{
			Error:   "Daily limit for free models reached.",
			Details: err.Error(),
			Solutions: []string{
				"Wait for the daily free-model quota to reset.",
				"Add credits to unlock paid models.",
				"Configure a different model list via MODELS_FILE.",
			},
			AddCreditsURL: addCreditsURL,
		})
	case errors.Is(err, domain.ErrUnparseable):
		// Models responded, nothing parsed. Soft failure so the front end
		// can suggest different filters instead of showing a hard error.
		slog.Warn("no parseable names from any model", "request_id", requestID, "error", err)
		return c.JSON(http.StatusOK, GenerateResponse{
			Names: []domain.NameEntry{},
			Error: "No names generated. Try adjusting filters.",
		})
	default:
		slog.Error("generation failed", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:      "Failed to generate names. Please try again later.",
			Details:    err.Error(),
			Suggestion: "Check connectivity and the OPENROUTER_API_KEY configuration.",
		})
	}
}
