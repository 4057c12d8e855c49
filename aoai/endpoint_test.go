package aoai

import (
	"testing"

	"github.com/ailand-ai/ailand-go/settings"
)

func TestEndpoint(t *testing.T) {
	conn := settings.ConnectionSettings{
		DefaultEndpoint: "https://sweden.openai.azure.com",
		AltEndpoint:     "https://switzerland.openai.azure.com",
	}

	tests := []struct {
		name    string
		conn    settings.ConnectionSettings
		region  Region
		want    string
		wantErr bool
	}{
		{"default region", conn, RegionDefault, "https://sweden.openai.azure.com", false},
		{"empty region falls back to default", conn, Region(""), "https://sweden.openai.azure.com", false},
		{"switzerland region", conn, RegionSwitzerland, "https://switzerland.openai.azure.com", false},
		{"unknown region", conn, Region("mars"), "", true},
		{"missing default endpoint", settings.ConnectionSettings{AltEndpoint: "https://x"}, RegionDefault, "", true},
		{"missing alternate endpoint", settings.ConnectionSettings{DefaultEndpoint: "https://x"}, RegionSwitzerland, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Endpoint(tt.conn, tt.region)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Endpoint() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Endpoint() = %q, want %q", got, tt.want)
			}
		})
	}
}
