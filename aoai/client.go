// Package aoai provides a thin Azure OpenAI chat and embedding client. The
// client receives its credential payload from the auth package and delegates
// every HTTP concern to the openai-go SDK.
package aoai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"

	"github.com/ailand-ai/ailand-go/auth"
	"github.com/ailand-ai/ailand-go/internal/httpcapture"
	"github.com/ailand-ai/ailand-go/internal/retry"
	"github.com/ailand-ai/ailand-go/internal/validation"
	"github.com/ailand-ai/ailand-go/settings"
)

// Client issues chat and embedding requests against one Azure OpenAI
// endpoint. Safe for concurrent use.
type Client struct {
	endpoint       string
	model          ChatModel
	embeddingModel EmbeddingModel
	apiVersion     APIVersion
	retryConfig    retry.Config
	debug          bool
	baseOpts       []option.RequestOption
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithModel overrides the default chat model.
func WithModel(model ChatModel) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithEmbeddingModel overrides the default embedding model.
func WithEmbeddingModel(model EmbeddingModel) ClientOption {
	return func(c *Client) {
		c.embeddingModel = model
	}
}

// WithAPIVersion overrides the default API version.
func WithAPIVersion(version APIVersion) ClientOption {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithRetryConfig overrides the default (conservative) retry configuration.
func WithRetryConfig(cfg retry.Config) ClientOption {
	return func(c *Client) {
		c.retryConfig = cfg
	}
}

// WithDebugCapture enables raw request/response JSON capture on results.
func WithDebugCapture(enabled bool) ClientOption {
	return func(c *Client) {
		c.debug = enabled
	}
}

// NewClient creates a client for the given endpoint using the resolved
// authentication payload.
func NewClient(endpoint string, payload auth.Payload, opts ...ClientOption) (*Client, error) {
	if err := validation.ValidateEndpointURL(endpoint); err != nil {
		return nil, fmt.Errorf("endpoint: %w", err)
	}

	c := &Client{
		endpoint:       endpoint,
		model:          DefaultChatModel,
		embeddingModel: DefaultEmbeddingModel,
		apiVersion:     DefaultAPIVersion,
		retryConfig:    retry.Conservative,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	c.baseOpts = append(
		[]option.RequestOption{azure.WithEndpoint(endpoint, string(c.apiVersion))},
		payload.RequestOptions()...,
	)

	slog.Info("aoai client initialized",
		"endpoint", endpoint,
		"model", string(c.model),
		"api_version", string(c.apiVersion),
		"strategy", string(payload.Strategy),
	)
	return c, nil
}

// NewClientFromSettings selects the regional endpoint from connection
// settings and creates a client for it.
func NewClientFromSettings(conn settings.ConnectionSettings, region Region, payload auth.Payload, opts ...ClientOption) (*Client, error) {
	endpoint, err := Endpoint(conn, region)
	if err != nil {
		return nil, err
	}
	return NewClient(endpoint, payload, opts...)
}

// Message is one chat turn in OpenAI role/content form.
type Message struct {
	Role    string
	Content string
}

// Usage contains token usage for one request.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// ChatParams contains the optional knobs for a chat request.
type ChatParams struct {
	Messages []Message

	// Temperature overrides the default of 0.
	Temperature *float64

	// MaxTokens caps the completion length when set.
	MaxTokens *int

	// OverrideModel overrides the client's configured model for this call.
	OverrideModel ChatModel
}

// ChatResult is the outcome of one chat request.
type ChatResult struct {
	Text  string
	Model ChatModel
	Usage Usage

	// RequestJSON and ResponseJSON hold raw payloads when debug capture is
	// enabled.
	RequestJSON  []byte
	ResponseJSON []byte
}

// Chat sends messages and returns the reply text.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	result, err := c.ChatWithParams(ctx, ChatParams{Messages: messages})
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// ChatWithParams sends a chat-completions request with explicit parameters,
// retrying retryable failures with exponential backoff.
func (c *Client) ChatWithParams(ctx context.Context, params ChatParams) (ChatResult, error) {
	if len(params.Messages) == 0 {
		return ChatResult{}, errors.New("at least one message is required")
	}

	ctx, cancel := retry.EnsureTimeout(ctx, retry.RequestTimeout)
	defer cancel()

	model := c.model
	if params.OverrideModel != "" {
		model = params.OverrideModel
	}

	req := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: toMessageParams(params.Messages),
	}
	if params.Temperature != nil {
		req.Temperature = openai.Float(*params.Temperature)
	}
	if params.MaxTokens != nil {
		req.MaxTokens = openai.Int(int64(*params.MaxTokens))
	}

	requestID := uuid.NewString()
	slog.Info("chat request",
		"model", string(model),
		"messages", len(params.Messages),
		"request_id", requestID,
	)

	var capture *httpcapture.Transport
	api := c.newAPIClient(&capture)

	resp, err := retry.Do(ctx, c.retryConfig, func() (*openai.ChatCompletion, error) {
		return api.Chat.Completions.New(ctx, req)
	})
	if err != nil {
		return ChatResult{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ChatResult{}, errors.New("chat completion returned no choices")
	}

	result := ChatResult{
		Text:  strings.TrimSpace(resp.Choices[0].Message.Content),
		Model: model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if capture != nil {
		result.RequestJSON = capture.RequestBody
		result.ResponseJSON = capture.ResponseBody
	}

	slog.Info("chat request completed",
		"model", string(model),
		"request_id", requestID,
		"tokens_in", result.Usage.InputTokens,
		"tokens_out", result.Usage.OutputTokens,
	)
	return result, nil
}

// newAPIClient builds the SDK client for one logical request. With debug
// capture enabled, a fresh capturing transport is attached and returned via
// capture.
func (c *Client) newAPIClient(capture **httpcapture.Transport) openai.Client {
	opts := c.baseOpts
	if c.debug {
		t := httpcapture.New()
		*capture = t
		opts = append(append([]option.RequestOption{}, opts...), option.WithHTTPClient(t.Client()))
	}
	return openai.NewClient(opts...)
}

func toMessageParams(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch strings.ToLower(m.Role) {
		case "system":
			out = append(out, openai.SystemMessage(m.Content))
		case "assistant":
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
