package auth

import (
	"context"
	"crypto"
	"crypto/x509"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/ailand-ai/ailand-go/settings"
)

// pemHeaderPrefix starts every recognizable PEM block.
const pemHeaderPrefix = "-----BEGIN"

// Identity SDK constructors, declared as variables so tests can stub them.
var (
	parseCertificates = azidentity.ParseCertificates

	newCertificateCredential = func(tenantID, clientID string, certs []*x509.Certificate, key crypto.PrivateKey) (azcore.TokenCredential, error) {
		return azidentity.NewClientCertificateCredential(tenantID, clientID, certs, key, nil)
	}
)

// certificateCredential builds a service-principal credential from the
// combined certificate bytes, scoped to the settings' tenant and client, and
// verifies it by requesting one token for the normalized resource scope. The
// verification token stays in the credential's internal cache, so it is not
// wasted work.
func certificateCredential(ctx context.Context, s *settings.CertificateCredentialSettings) (Payload, error) {
	pem := s.CertificateBytes()
	if !strings.HasPrefix(strings.TrimSpace(string(pem)), pemHeaderPrefix) {
		return Payload{}, ErrMalformedCertificate
	}

	certs, key, err := parseCertificates(pem, nil)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformedCertificate, err)
	}

	cred, err := newCertificateCredential(s.TenantID, s.ClientID, certs, key)
	if err != nil {
		return Payload{}, fmt.Errorf("certificate credential: %w", err)
	}

	if _, err := cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{s.Resource}}); err != nil {
		return Payload{}, fmt.Errorf("certificate token request: %w", err)
	}

	return Payload{Strategy: StrategyCertificate, Credential: cred}, nil
}
