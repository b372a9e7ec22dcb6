package cli

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/vvk-babyorgano/baby-name-generator/internal/adapters/llm/openrouter"
	"github.com/vvk-babyorgano/baby-name-generator/internal/config"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available upstream and the configured fallback order",
	Long:  `Queries the configured completion API for its model catalogue. Useful to validate connectivity and credentials before serving.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		fmt.Println("Configured fallback order:")
		for i, m := range cfg.Candidates {
			fmt.Printf("  %d. %s (%s, max_tokens=%d)\n", i+1, m.ID, m.Label, m.MaxTokens)
		}

		client := openrouter.NewClient(
			&http.Client{Timeout: cfg.LLMTimeout},
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBaseURL,
			slog.Default(),
		)

		models, err := client.ListModels(cmd.Context())
		if err != nil {
			return fmt.Errorf("list upstream models: %w", err)
		}

		fmt.Printf("\nUpstream catalogue (%d models):\n", len(models))
		for _, id := range models {
			fmt.Printf("  - %s\n", id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
