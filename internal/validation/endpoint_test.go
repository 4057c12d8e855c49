package validation

import (
	"errors"
	"testing"
)

func TestValidateEndpointURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{"valid https", "https://sweden.openai.azure.com", nil},
		{"valid https with path", "https://sweden.openai.azure.com/openai", nil},
		{"localhost http", "http://localhost:8080", nil},
		{"loopback http", "http://127.0.0.1:8080", nil},

		{"empty", "", ErrEmptyURL},
		{"whitespace only", "   ", ErrEmptyURL},
		{"http non-localhost", "http://sweden.openai.azure.com", ErrHTTPNotAllowed},
		{"file scheme", "file:///etc/passwd", ErrUnsafeScheme},
		{"ftp scheme", "ftp://example.com", ErrUnsafeScheme},
		{"missing hostname", "https://", ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEndpointURL(tt.url)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateEndpointURL(%q) = %v, want nil", tt.url, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEndpointURL(%q) = %v, want %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
