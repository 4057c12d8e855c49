// Package auth resolves Azure OpenAI credentials. Given any subset of a raw
// API key, a raw bearer token, and certificate-backed service-principal
// settings, it selects exactly one credential strategy and returns a payload
// the request client can consume.
package auth

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
)

// DefaultScope is the token scope used by the ambient credential chain when
// no resource is configured.
const DefaultScope = "https://cognitiveservices.azure.com/.default"

// Strategy identifies a credential-acquisition strategy.
type Strategy string

const (
	// StrategyCertificate is certificate-backed service-principal auth.
	StrategyCertificate Strategy = "certificate"

	// StrategyAPIKey is a static API key used verbatim.
	StrategyAPIKey Strategy = "api-key"

	// StrategyBearerToken is a pre-acquired bearer token used verbatim.
	StrategyBearerToken Strategy = "bearer-token"

	// StrategyDefaultChain is the ambient credential discovery chain.
	StrategyDefaultChain Strategy = "default-chain"
)

// TokenProvider returns a current bearer token, refreshing it internally as
// needed. Safe to invoke repeatedly and concurrently.
type TokenProvider func(ctx context.Context) (string, error)

// Payload is the resolver's output. Exactly one of APIKey or Credential is
// populated. Payloads are created per client construction and never cached
// here; token caching and refresh belong to the wrapped credential.
type Payload struct {
	// Strategy names the strategy that produced this payload.
	Strategy Strategy

	// APIKey is set for the static key strategy.
	APIKey string

	// Credential is set for every token-based strategy.
	Credential azcore.TokenCredential
}

// RequestOptions converts the payload into openai-go client options. This is
// the entire handoff contract between credential resolution and the request
// client.
func (p Payload) RequestOptions() []option.RequestOption {
	if p.APIKey != "" {
		return []option.RequestOption{azure.WithAPIKey(p.APIKey)}
	}
	return []option.RequestOption{azure.WithTokenCredential(p.Credential)}
}

// TokenProvider wraps the payload's credential into a bearer-token provider
// scoped to scope. Only valid for token-based payloads.
func (p Payload) TokenProvider(scope string) TokenProvider {
	return GetBearerTokenProvider(p.Credential, scope)
}

// GetBearerTokenProvider wraps a credential into a callable that fetches a
// current token for scope. Concurrency safety is delegated to the credential,
// which caches and refreshes tokens internally.
func GetBearerTokenProvider(cred azcore.TokenCredential, scope string) TokenProvider {
	return func(ctx context.Context) (string, error) {
		tok, err := cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{scope}})
		if err != nil {
			return "", err
		}
		return tok.Token, nil
	}
}
