// Package validation checks service endpoint URLs before they are handed to
// the request client.
package validation

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

var (
	// ErrEmptyURL is returned when the URL is empty
	ErrEmptyURL = errors.New("URL cannot be empty")

	// ErrInvalidURL is returned when the URL cannot be parsed
	ErrInvalidURL = errors.New("invalid URL format")

	// ErrUnsafeScheme is returned when the URL uses a non-HTTP(S) scheme
	ErrUnsafeScheme = errors.New("unsafe URL scheme")

	// ErrHTTPNotAllowed is returned when HTTP is used for non-localhost URLs
	ErrHTTPNotAllowed = errors.New("HTTP is only allowed for localhost")
)

// ValidateEndpointURL validates a URL intended for use as a service endpoint.
// It rejects empty and unparseable URLs, any scheme other than http/https,
// and plain http outside localhost.
func ValidateEndpointURL(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ErrEmptyURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("%w: only http:// and https:// are allowed", ErrUnsafeScheme)
	}

	hostname := parsed.Hostname()
	if hostname == "" {
		return fmt.Errorf("%w: missing hostname", ErrInvalidURL)
	}

	if scheme == "http" && !isLocalhostHost(hostname) {
		return fmt.Errorf("%w: use https:// for non-localhost URLs", ErrHTTPNotAllowed)
	}

	return nil
}

// isLocalhostHost checks if the hostname is localhost or a loopback address
func isLocalhostHost(hostname string) bool {
	hostname = strings.ToLower(hostname)
	if hostname == "localhost" {
		return true
	}
	if ip := net.ParseIP(hostname); ip != nil {
		return ip.IsLoopback()
	}
	return false
}
