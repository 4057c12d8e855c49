package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},

		{"context canceled", context.Canceled, false},
		{"context deadline exceeded", context.DeadlineExceeded, false},

		{"401 unauthorized", errors.New("401 unauthorized"), false},
		{"403 forbidden", errors.New("403 forbidden"), false},
		{"invalid_api_key", errors.New("invalid_api_key"), false},
		{"authentication failed", errors.New("authentication failed"), false},
		{"unauthenticated", errors.New("unauthenticated request"), false},

		{"400 bad request", errors.New("400 bad request"), false},
		{"422 unprocessable", errors.New("422 unprocessable entity"), false},
		{"invalid_request", errors.New("invalid_request"), false},
		{"malformed json", errors.New("malformed json"), false},

		{"429 rate limit", errors.New("429 too many requests"), true},
		{"rate limit text", errors.New("rate limit exceeded"), true},
		{"500 internal", errors.New("500 internal server error"), true},
		{"502 bad gateway", errors.New("502 bad gateway"), true},
		{"503 unavailable", errors.New("503 service unavailable"), true},
		{"504 timeout", errors.New("504 gateway timeout"), true},
		{"server_error", errors.New("server_error occurred"), true},

		{"connection refused", errors.New("connection refused"), true},
		{"timeout", errors.New("request timeout"), true},
		{"eof error", errors.New("unexpected EOF"), true},
		{"tls handshake", errors.New("tls handshake failure"), true},
		{"no such host", errors.New("dial tcp: no such host"), true},

		{"unknown error", errors.New("something else entirely"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestProfile(t *testing.T) {
	tests := []struct {
		name string
		want Config
	}{
		{"conservative", Conservative},
		{"moderate", Moderate},
		{"aggressive", Aggressive},
		{"", Conservative},
		{"bogus", Conservative},
	}

	for _, tt := range tests {
		t.Run("profile_"+tt.name, func(t *testing.T) {
			if got := Profile(tt.name); got != tt.want {
				t.Errorf("Profile(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

var fastConfig = Config{MaxAttempts: 3, MinWait: time.Millisecond, MaxWait: 5 * time.Millisecond}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	got, err := Do(context.Background(), fastConfig, func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("503 service unavailable")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	if got != "ok" {
		t.Errorf("expected ok, got %q", got)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	attempts := 0
	_, err := Do(context.Background(), fastConfig, func() (string, error) {
		attempts++
		return "", errors.New("401 unauthorized")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Errorf("expected exactly 1 attempt for non-retryable error, got %d", attempts)
	}
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	attempts := 0
	_, err := Do(context.Background(), fastConfig, func() (string, error) {
		attempts++
		return "", errors.New("429 too many requests")
	})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if attempts != fastConfig.MaxAttempts {
		t.Errorf("expected %d attempts, got %d", fastConfig.MaxAttempts, attempts)
	}
}

func TestEnsureTimeout(t *testing.T) {
	ctx, cancel := EnsureTimeout(context.Background(), time.Minute)
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Error("expected a deadline to be set")
	}

	parent, parentCancel := context.WithTimeout(context.Background(), time.Hour)
	defer parentCancel()
	child, childCancel := EnsureTimeout(parent, time.Minute)
	defer childCancel()
	if child != parent {
		t.Error("expected the original context when a deadline exists")
	}
}
