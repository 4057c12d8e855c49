package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ailand-ai/ailand-go/settings"
)

// Credentials is the resolver input. Any subset of fields may be set.
type Credentials struct {
	// APIKey is a static Azure OpenAI key, used verbatim when selected.
	APIKey string

	// BearerToken is a pre-acquired bearer token, used verbatim for the
	// lifetime of one client instance.
	BearerToken string

	// Certificate enables certificate-backed service-principal auth.
	Certificate *settings.CertificateCredentialSettings
}

// Attempt records one failed strategy during resolution.
type Attempt struct {
	Strategy Strategy
	Err      error
}

// AuthenticationError is returned when every applicable strategy failed. It
// enumerates each attempt with its underlying cause.
type AuthenticationError struct {
	Attempts []Attempt
}

func (e *AuthenticationError) Error() string {
	if len(e.Attempts) == 0 {
		return "no valid authentication method available"
	}
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Strategy, a.Err))
	}
	return "no valid authentication method available: " + strings.Join(parts, "; ")
}

// Unwrap exposes the per-strategy causes to errors.Is/As.
func (e *AuthenticationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}

// Resolve selects exactly one credential strategy for the supplied inputs.
// Strategies are attempted in a fixed precedence: certificate settings, then
// a raw API key, then a raw bearer token, then the ambient default chain. A
// failing strategy is logged at warn level and the next one attempted; only
// total exhaustion returns an error. One evaluation per call, no shared
// state, no retries of the same strategy.
//
// Certificate settings outrank a raw key when both are supplied; the raw key
// then serves as the fallback if the certificate strategy fails. A raw key or
// token short-circuits the ambient chain entirely.
func Resolve(ctx context.Context, creds Credentials) (Payload, error) {
	steps := []struct {
		strategy Strategy
		supplied bool
		run      func() (Payload, error)
	}{
		{StrategyCertificate, creds.Certificate != nil, func() (Payload, error) {
			return certificateCredential(ctx, creds.Certificate)
		}},
		{StrategyAPIKey, strings.TrimSpace(creds.APIKey) != "", func() (Payload, error) {
			return staticKey(creds.APIKey)
		}},
		{StrategyBearerToken, strings.TrimSpace(creds.BearerToken) != "", func() (Payload, error) {
			return staticToken(creds.BearerToken)
		}},
		{StrategyDefaultChain, true, func() (Payload, error) {
			return defaultChainCredential(ctx)
		}},
	}

	var attempts []Attempt
	for _, step := range steps {
		if !step.supplied {
			continue
		}

		payload, err := step.run()
		if err == nil {
			slog.Debug("credential strategy selected", "strategy", string(step.strategy))
			return payload, nil
		}

		slog.Warn("credential strategy failed, trying next",
			"strategy", string(step.strategy),
			"error", err,
		)
		attempts = append(attempts, Attempt{Strategy: step.strategy, Err: err})
	}

	return Payload{}, &AuthenticationError{Attempts: attempts}
}
