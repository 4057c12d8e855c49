package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ailand-ai/ailand-go/internal/cli"
	"github.com/ailand-ai/ailand-go/internal/config"
	"github.com/ailand-ai/ailand-go/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logging.Configure(cfg.Logging)

	rootCmd := &cobra.Command{
		Use:   "ailand",
		Short: "ailand - Azure OpenAI auth and chat convenience CLI",
		Long:  "Command-line tool to resolve Azure OpenAI credentials and issue chat requests.",
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("env-file", "e", "", "Explicit settings env file (bypasses discovery)")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "Static API key (or OPENAI_API_KEY)")
	rootCmd.PersistentFlags().StringP("token", "t", "", "Pre-acquired bearer token (or AZURE_AD_TOKEN)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(cli.AuthCmd())
	rootCmd.AddCommand(cli.ChatCmd())
	rootCmd.AddCommand(cli.ModelsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
