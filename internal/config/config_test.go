package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AILAND_CONFIG", "AILAND_MODEL", "AILAND_API_VERSION", "AILAND_REGION",
		"AILAND_RETRY_PROFILE", "AILAND_DEBUG", "AILAND_LOG_LEVEL", "AILAND_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Client.Model != "gpt-4.1-mini" {
		t.Errorf("expected default model, got %q", cfg.Client.Model)
	}
	if cfg.Client.Region != "sweden" {
		t.Errorf("expected default region, got %q", cfg.Client.Region)
	}
	if cfg.Client.RetryProfile != "conservative" {
		t.Errorf("expected conservative retry profile, got %q", cfg.Client.RetryProfile)
	}
	if cfg.Client.Debug {
		t.Error("expected debug disabled by default")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoad_FromFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "ailand.yaml")
	body := `client:
  model: gpt-4o-mini
  region: switzerland
  retry_profile: aggressive
  debug: true
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("AILAND_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Client.Model != "gpt-4o-mini" {
		t.Errorf("expected model from file, got %q", cfg.Client.Model)
	}
	if cfg.Client.Region != "switzerland" {
		t.Errorf("expected region from file, got %q", cfg.Client.Region)
	}
	if cfg.Client.RetryProfile != "aggressive" {
		t.Errorf("expected retry profile from file, got %q", cfg.Client.RetryProfile)
	}
	if !cfg.Client.Debug {
		t.Error("expected debug enabled from file")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected json log format, got %q", cfg.Logging.Format)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Client.APIVersion != "2024-08-01-preview" {
		t.Errorf("expected default api version, got %q", cfg.Client.APIVersion)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "ailand.yaml")
	if err := os.WriteFile(path, []byte("client:\n  model: gpt-4o-mini\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("AILAND_CONFIG", path)
	t.Setenv("AILAND_MODEL", "gpt-4.1-mini")
	t.Setenv("AILAND_REGION", "switzerland")
	t.Setenv("AILAND_DEBUG", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Client.Model != "gpt-4.1-mini" {
		t.Errorf("expected env override for model, got %q", cfg.Client.Model)
	}
	if cfg.Client.Region != "switzerland" {
		t.Errorf("expected env override for region, got %q", cfg.Client.Region)
	}
	if !cfg.Client.Debug {
		t.Error("expected AILAND_DEBUG=1 to enable debug")
	}
}

func TestLoad_InvalidRetryProfile(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("AILAND_RETRY_PROFILE", "reckless")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid retry profile")
	}
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("AILAND_LOG_FORMAT", "xml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid log format")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "ailand.yaml")
	if err := os.WriteFile(path, []byte("client: [not a mapping"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("AILAND_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
