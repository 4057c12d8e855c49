package auth

import "errors"

var (
	// ErrMalformedCertificate indicates the combined certificate material
	// does not parse as PEM
	ErrMalformedCertificate = errors.New("malformed certificate material")

	// ErrMissingAPIKey indicates an empty API key was supplied
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrMissingToken indicates an empty bearer token was supplied
	ErrMissingToken = errors.New("missing bearer token")
)
