package cli

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	httpadapter "github.com/vvk-babyorgano/baby-name-generator/internal/adapters/http"
	"github.com/vvk-babyorgano/baby-name-generator/internal/adapters/llm/openrouter"
	"github.com/vvk-babyorgano/baby-name-generator/internal/adapters/webui"
	"github.com/vvk-babyorgano/baby-name-generator/internal/app"
	"github.com/vvk-babyorgano/baby-name-generator/internal/config"
)

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

var addrOverride string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if addrOverride != "" {
			cfg.HTTPAddr = addrOverride
		}

		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
		slog.SetDefault(logger)

		if cfg.OpenRouterAPIKey == "" {
			// The server still boots so /health can report the missing key.
			logger.Warn("OPENROUTER_API_KEY is not set; generation requests will fail")
		}

		llmClient := openrouter.NewClient(
			&http.Client{Timeout: cfg.LLMTimeout},
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBaseURL,
			logger,
		)

		svc := app.NewGeneratorService(llmClient, cfg.Candidates, stdRNG{}, cfg.LLMTimeout, cfg.AttemptPause, logger)

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true

		e.Use(httpadapter.RequestIDMiddleware())
		e.Use(httpadapter.LoggingMiddleware(logger))

		handler := httpadapter.NewHandler(svc, llmClient, cfg.OpenRouterAPIKey != "")
		handler.Register(e)
		webui.Register(e)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		go func() {
			logger.Info("starting server", "addr", cfg.HTTPAddr, "models", len(cfg.Candidates))
			if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
				logger.Error("server error", "error", err)
				os.Exit(1)
			}
		}()

		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&addrOverride, "addr", "", "listen address (overrides HTTP_ADDR)")
}
