package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Recognized keys. Matching is case-insensitive; unrecognized keys in any
// source are ignored.
const (
	keyEndpointDefault = "OPENAI_API_BASE_DEFAULT"
	keyEndpointAlt     = "OPENAI_API_BASE_ALT"
	keyTenantID        = "TENANT_ID"
	keyClientID        = "CLIENT_ID"
	keyNoProxy         = "NO_PROXY"
	keyResource        = "RESOURCE"
	keyPublicCert      = "PUBLIC_CERT_KEY"
	keyPrivateCert     = "PRIVATE_CERT_KEY"
)

// Env-file discovery candidates, relative to the working directory.
// The local override file wins field-by-field over the shared team file.
const (
	localEnvFile  = ".envs/local.env"
	sharedEnvFile = ".envs/dev.env"
)

// values is a merged, case-normalized view over all configuration sources.
type values map[string]string

func (v values) get(key string) string {
	return v[strings.ToUpper(key)]
}

// merge copies entries from src into v without overwriting existing keys,
// so earlier (higher-priority) sources win.
func (v values) merge(src map[string]string) {
	for k, val := range src {
		k = strings.ToUpper(strings.TrimSpace(k))
		if _, ok := v[k]; !ok {
			v[k] = val
		}
	}
}

// Load populates CertificateCredentialSettings from the discovered env files
// and the process environment, in priority order: local override file, shared
// file, environment variables, defaults. The process environment is read but
// never mutated.
func Load() (*CertificateCredentialSettings, error) {
	src, err := discover()
	if err != nil {
		return nil, err
	}
	return fromValues(src)
}

// LoadFile populates CertificateCredentialSettings from exactly one env file,
// bypassing discovery and the process environment. A missing path is an error
// wrapping fs.ErrNotExist.
func LoadFile(path string) (*CertificateCredentialSettings, error) {
	src, err := readEnvFile(path)
	if err != nil {
		return nil, err
	}
	v := values{}
	v.merge(src)
	return fromValues(v)
}

// LoadConnection populates ConnectionSettings from the layered sources.
func LoadConnection() (*ConnectionSettings, error) {
	src, err := discover()
	if err != nil {
		return nil, err
	}
	return connectionFromValues(src)
}

// LoadConnectionFile populates ConnectionSettings from exactly one env file.
func LoadConnectionFile(path string) (*ConnectionSettings, error) {
	src, err := readEnvFile(path)
	if err != nil {
		return nil, err
	}
	v := values{}
	v.merge(src)
	return connectionFromValues(v)
}

// discover builds the merged value map from the candidate env files and the
// process environment.
func discover() (values, error) {
	v := values{}

	for _, path := range []string{localEnvFile, sharedEnvFile} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		src, err := readEnvFile(path)
		if err != nil {
			return nil, err
		}
		v.merge(src)
	}

	env := map[string]string{}
	for _, kv := range os.Environ() {
		if k, val, ok := strings.Cut(kv, "="); ok {
			env[k] = val
		}
	}
	v.merge(env)

	return v, nil
}

// readEnvFile parses one plain key=value file.
func readEnvFile(path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("env file %s: %w", filepath.Clean(path), err)
	}
	src, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("parse env file %s: %w", filepath.Clean(path), err)
	}
	return src, nil
}

func fromValues(v values) (*CertificateCredentialSettings, error) {
	s := &CertificateCredentialSettings{
		ConnectionSettings: ConnectionSettings{
			DefaultEndpoint: v.get(keyEndpointDefault),
			AltEndpoint:     v.get(keyEndpointAlt),
		},
		TenantID:    v.get(keyTenantID),
		ClientID:    v.get(keyClientID),
		NoProxy:     v.get(keyNoProxy),
		Resource:    v.get(keyResource),
		PublicCert:  v.get(keyPublicCert),
		PrivateCert: v.get(keyPrivateCert),
	}
	s.normalize()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func connectionFromValues(v values) (*ConnectionSettings, error) {
	c := &ConnectionSettings{
		DefaultEndpoint: v.get(keyEndpointDefault),
		AltEndpoint:     v.get(keyEndpointAlt),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
