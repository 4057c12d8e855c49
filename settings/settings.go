// Package settings holds typed connection and credential configuration for
// Azure OpenAI, loaded from layered env-file and environment-variable sources.
package settings

import (
	"fmt"
	"strings"

	"github.com/ailand-ai/ailand-go/internal/validation"
)

const (
	// DefaultCognitiveServicesResource is the Azure Cognitive Services
	// resource used when no RESOURCE value is configured. The /.default
	// scope suffix is appended during normalization.
	DefaultCognitiveServicesResource = "https://cognitiveservices.azure.com"

	// defaultScopeSuffix is required on every token scope handed to the
	// identity provider.
	defaultScopeSuffix = "/.default"
)

// ConnectionSettings holds the regional Azure OpenAI endpoint URLs.
// Immutable after loading; construct once at startup and pass by value.
type ConnectionSettings struct {
	// DefaultEndpoint is the primary regional endpoint (key OPENAI_API_BASE_DEFAULT).
	DefaultEndpoint string

	// AltEndpoint is the alternate regional endpoint (key OPENAI_API_BASE_ALT).
	AltEndpoint string
}

// Validate checks that both endpoint URLs are present and well-formed.
func (c ConnectionSettings) Validate() error {
	if invalid := c.invalidFields(); len(invalid) > 0 {
		return &ConfigurationError{Fields: invalid}
	}
	return nil
}

func (c ConnectionSettings) invalidFields() []string {
	var invalid []string
	if c.DefaultEndpoint == "" {
		invalid = append(invalid, keyEndpointDefault)
	} else if err := validation.ValidateEndpointURL(c.DefaultEndpoint); err != nil {
		invalid = append(invalid, fmt.Sprintf("%s (%v)", keyEndpointDefault, err))
	}
	if c.AltEndpoint == "" {
		invalid = append(invalid, keyEndpointAlt)
	} else if err := validation.ValidateEndpointURL(c.AltEndpoint); err != nil {
		invalid = append(invalid, fmt.Sprintf("%s (%v)", keyEndpointAlt, err))
	}
	return invalid
}

// CertificateCredentialSettings extends ConnectionSettings with the values
// needed for certificate-backed service-principal authentication.
type CertificateCredentialSettings struct {
	ConnectionSettings

	// TenantID is the Entra ID tenant (key TENANT_ID).
	TenantID string

	// ClientID is the registered application ID (key CLIENT_ID).
	ClientID string

	// NoProxy lists hosts excluded from proxying (key NO_PROXY, optional).
	NoProxy string

	// Resource is the token scope target (key RESOURCE). Normalized to end
	// with /.default exactly once.
	Resource string

	// PublicCert is the PEM-encoded public certificate (key PUBLIC_CERT_KEY).
	PublicCert string

	// PrivateCert is the PEM-encoded private key (key PRIVATE_CERT_KEY).
	// Never logged.
	PrivateCert string
}

// normalize applies the /.default scope suffix to Resource. Idempotent:
// running it twice never produces a doubled suffix.
func (c *CertificateCredentialSettings) normalize() {
	if c.Resource == "" {
		c.Resource = DefaultCognitiveServicesResource
	}
	if !strings.HasSuffix(c.Resource, defaultScopeSuffix) {
		c.Resource = strings.TrimRight(c.Resource, "/") + defaultScopeSuffix
	}
}

// CertificateBytes combines the private and public certificate material into
// the byte sequence the identity SDK expects: private, newline, public.
// Pure and deterministic; the result is handed to the credential constructor
// and never persisted.
func (c CertificateCredentialSettings) CertificateBytes() []byte {
	return []byte(c.PrivateCert + "\n" + c.PublicCert)
}

// Validate reports every missing or malformed field in one error.
func (c CertificateCredentialSettings) Validate() error {
	invalid := c.ConnectionSettings.invalidFields()
	if c.TenantID == "" {
		invalid = append(invalid, keyTenantID)
	}
	if c.ClientID == "" {
		invalid = append(invalid, keyClientID)
	}
	if c.PublicCert == "" {
		invalid = append(invalid, keyPublicCert)
	}
	if c.PrivateCert == "" {
		invalid = append(invalid, keyPrivateCert)
	}
	if len(invalid) > 0 {
		return &ConfigurationError{Fields: invalid}
	}
	return nil
}
