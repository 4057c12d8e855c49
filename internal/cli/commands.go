// Package cli implements the ailand command-line interface.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ailand-ai/ailand-go/aoai"
	"github.com/ailand-ai/ailand-go/auth"
	"github.com/ailand-ai/ailand-go/internal/config"
	"github.com/ailand-ai/ailand-go/internal/retry"
	"github.com/ailand-ai/ailand-go/settings"
)

// AuthCmd resolves credentials and reports the selected strategy.
func AuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Resolve credentials and report the selected strategy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, _, err := credentialsFromFlags(cmd)
			if err != nil {
				return err
			}

			payload, err := auth.Resolve(cmd.Context(), creds)
			if err != nil {
				fmt.Printf("%s %v\n", red("✗"), err)
				return err
			}

			fmt.Printf("%s authenticated via %s\n", green("✓"), bold(string(payload.Strategy)))
			return nil
		},
	}
}

// ChatCmd sends one prompt and prints the reply.
func ChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [prompt]",
		Short: "Send a prompt to the configured chat model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			creds, conn, err := credentialsFromFlags(cmd)
			if err != nil {
				return err
			}
			if conn == nil {
				return errors.New("no connection settings available; provide an env file or set endpoint variables")
			}

			payload, err := auth.Resolve(cmd.Context(), creds)
			if err != nil {
				return err
			}

			client, err := aoai.NewClientFromSettings(*conn, aoai.Region(cfg.Client.Region), payload,
				aoai.WithModel(aoai.ChatModel(cfg.Client.Model)),
				aoai.WithAPIVersion(aoai.APIVersion(cfg.Client.APIVersion)),
				aoai.WithRetryConfig(retry.Profile(cfg.Client.RetryProfile)),
				aoai.WithDebugCapture(cfg.Client.Debug),
			)
			if err != nil {
				return err
			}

			system, _ := cmd.Flags().GetString("system")
			messages := []aoai.Message{}
			if system != "" {
				messages = append(messages, aoai.Message{Role: "system", Content: system})
			}
			messages = append(messages, aoai.Message{Role: "user", Content: args[0]})

			result, err := client.ChatWithParams(cmd.Context(), aoai.ChatParams{Messages: messages})
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			fmt.Println(result.Text)
			fmt.Printf("\n%s model=%s tokens=%s/%s\n",
				cyan("•"),
				result.Model,
				FormatTokens(result.Usage.InputTokens),
				FormatTokens(result.Usage.OutputTokens),
			)
			return nil
		},
	}

	cmd.Flags().StringP("system", "s", "", "System prompt")
	return cmd
}

// ModelsCmd lists the known models.
func ModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List known chat and embedding models",
		RunE: func(cmd *cobra.Command, _ []string) error {
			chat := make([]string, 0)
			for _, m := range aoai.ChatModels() {
				chat = append(chat, string(m))
			}
			embedding := make([]string, 0)
			for _, m := range aoai.EmbeddingModels() {
				embedding = append(embedding, string(m))
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string][]string{"chat": chat, "embedding": embedding})
			}

			PrintModelTable(chat, embedding, map[string]string{
				"chat":      string(aoai.DefaultChatModel),
				"embedding": string(aoai.DefaultEmbeddingModel),
			})
			return nil
		},
	}
}

// credentialsFromFlags assembles resolver input from flags and the layered
// settings sources. Missing certificate settings are not fatal; the resolver
// falls through to the remaining strategies.
func credentialsFromFlags(cmd *cobra.Command) (auth.Credentials, *settings.ConnectionSettings, error) {
	apiKey, _ := cmd.Flags().GetString("api-key")
	token, _ := cmd.Flags().GetString("token")
	envFile, _ := cmd.Flags().GetString("env-file")

	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if token == "" {
		token = os.Getenv("AZURE_AD_TOKEN")
	}

	creds := auth.Credentials{APIKey: apiKey, BearerToken: token}

	var (
		cert *settings.CertificateCredentialSettings
		err  error
	)
	if envFile != "" {
		// Explicit path: a missing or incomplete file is fatal.
		cert, err = settings.LoadFile(envFile)
		if err != nil {
			return auth.Credentials{}, nil, err
		}
	} else {
		cert, err = settings.Load()
		if err != nil {
			var cfgErr *settings.ConfigurationError
			if !errors.As(err, &cfgErr) {
				return auth.Credentials{}, nil, err
			}
			slog.Debug("certificate settings unavailable", "error", err)
		}
	}

	var conn *settings.ConnectionSettings
	if cert != nil {
		creds.Certificate = cert
		conn = &cert.ConnectionSettings
	} else if c, connErr := settings.LoadConnection(); connErr == nil {
		conn = c
	}

	return creds, conn, nil
}
