// Package httpcapture wraps an HTTP transport to capture raw request and
// response bodies for debugging.
package httpcapture

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
)

// Transport captures the request and response bodies of each round trip.
// Use one instance per request; the captured payloads are overwritten on
// every call.
type Transport struct {
	// Base is the underlying transport. If nil, http.DefaultTransport is used.
	Base http.RoundTripper

	// RequestBody holds the last captured request body.
	RequestBody []byte

	// ResponseBody holds the last captured response body.
	ResponseBody []byte
}

// New creates a capturing transport over http.DefaultTransport.
func New() *Transport {
	return &Transport{Base: http.DefaultTransport}
}

// RoundTrip implements http.RoundTripper. Bodies are read in full and then
// restored so the SDK can consume them normally.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			slog.Warn("httpcapture: read request body failed", "error", err)
			return nil, err
		}
		t.RequestBody = body
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.Body != nil {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			slog.Warn("httpcapture: read response body failed", "error", err)
			resp.Body.Close()
			return nil, err
		}
		t.ResponseBody = body
		resp.Body = io.NopCloser(bytes.NewReader(body))
	}

	return resp, nil
}

// Client returns an *http.Client that routes through this transport.
func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}
