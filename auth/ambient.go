package auth

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// newDefaultChainCredential is a variable so tests can stub the chain.
var newDefaultChainCredential = func() (azcore.TokenCredential, error) {
	return azidentity.NewDefaultAzureCredential(nil)
}

// defaultChainCredential builds the ambient credential chain, which probes in
// a fixed order: environment service-principal variables, workload/managed
// identity, then locally cached developer-tool credentials. One token request
// against the default scope verifies that at least one probe succeeded.
func defaultChainCredential(ctx context.Context) (Payload, error) {
	cred, err := newDefaultChainCredential()
	if err != nil {
		return Payload{}, fmt.Errorf("default credential chain: %w", err)
	}

	if _, err := cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{DefaultScope}}); err != nil {
		return Payload{}, fmt.Errorf("default credential chain: %w", err)
	}

	return Payload{Strategy: StrategyDefaultChain, Credential: cred}, nil
}
