package auth

import (
	"context"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// staticKey uses a raw API key verbatim. No validation beyond non-emptiness
// and no network calls.
func staticKey(key string) (Payload, error) {
	if strings.TrimSpace(key) == "" {
		return Payload{}, ErrMissingAPIKey
	}
	return Payload{Strategy: StrategyAPIKey, APIKey: key}, nil
}

// staticToken uses a pre-acquired bearer token verbatim for the lifetime of
// one client instance. Token freshness rests entirely with the caller.
func staticToken(token string) (Payload, error) {
	if strings.TrimSpace(token) == "" {
		return Payload{}, ErrMissingToken
	}
	return Payload{Strategy: StrategyBearerToken, Credential: staticTokenCredential{token: token}}, nil
}

// staticTokenCredential adapts a fixed token string to the credential
// interface. The reported expiry is nominal; nothing refreshes this token.
type staticTokenCredential struct {
	token string
}

func (c staticTokenCredential) GetToken(_ context.Context, _ policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: c.token, ExpiresOn: time.Now().Add(time.Hour)}, nil
}
