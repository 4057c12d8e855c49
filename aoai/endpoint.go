package aoai

import (
	"errors"
	"fmt"

	"github.com/ailand-ai/ailand-go/settings"
)

// Region selects which configured endpoint a client talks to.
type Region string

const (
	// RegionDefault maps to the default endpoint.
	RegionDefault Region = "sweden"

	// RegionSwitzerland maps to the alternate endpoint.
	RegionSwitzerland Region = "switzerland"
)

// Endpoint returns the endpoint URL for region from the connection settings.
func Endpoint(conn settings.ConnectionSettings, region Region) (string, error) {
	switch region {
	case RegionSwitzerland:
		if conn.AltEndpoint == "" {
			return "", fmt.Errorf("alternate endpoint (%s region) not configured", RegionSwitzerland)
		}
		return conn.AltEndpoint, nil
	case RegionDefault, "":
		if conn.DefaultEndpoint == "" {
			return "", errors.New("default endpoint not configured")
		}
		return conn.DefaultEndpoint, nil
	default:
		return "", fmt.Errorf("unknown region %q", region)
	}
}
