package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "namegend",
	Short: "Baby name generator service backed by OpenRouter models",
	Long: `namegend serves a small web front end that turns naming preferences into
a prompt, runs it through an ordered list of OpenRouter models with fallback,
and parses the completion into (name, meaning) pairs.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
