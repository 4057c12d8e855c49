package retry

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
)

// IsRetryable checks if an error should trigger a retry attempt.
// Rate limits, server errors, and network failures are retryable;
// authentication and invalid-request errors are not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	// Context errors are not retryable
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 429, 500, 502, 503, 504:
			return true
		case 400, 401, 403, 404, 422:
			return false
		}
	}

	errStr := strings.ToLower(err.Error())

	// Authentication/authorization errors - not retryable
	authPatterns := []string{
		"401", "403",
		"invalid_api_key", "authentication", "permission",
		"unauthorized", "unauthenticated",
	}
	for _, p := range authPatterns {
		if strings.Contains(errStr, p) {
			return false
		}
	}

	// Invalid request errors - not retryable
	invalidPatterns := []string{
		"400", "422",
		"invalid_request", "malformed", "validation",
	}
	for _, p := range invalidPatterns {
		if strings.Contains(errStr, p) {
			return false
		}
	}

	// Retryable errors: rate limits, server errors, network issues
	retryablePatterns := []string{
		"429", "500", "502", "503", "504",
		"rate", "overloaded", "server_error",
		"connection", "timeout", "temporary", "eof",
		"tls handshake", "no such host", "api_connection",
	}
	for _, p := range retryablePatterns {
		if strings.Contains(errStr, p) {
			return true
		}
	}

	return false
}
