package yamlenv

import (
	"testing"

	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Conn    *Env[string] `yaml:"conn"`
	Port    *Env[int]    `yaml:"port"`
	Enabled *Env[bool]   `yaml:"enabled"`
}

func TestEnv_PlainValues(t *testing.T) {
	var cfg testConfig
	body := []byte("conn: postgres://localhost\nport: 8080\nenabled: true\n")

	if err := yaml.Unmarshal(body, &cfg); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if cfg.Conn.Value != "postgres://localhost" {
		t.Fatalf("expected conn, got %q", cfg.Conn.Value)
	}
	if cfg.Port.Value != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port.Value)
	}
	if !cfg.Enabled.Value {
		t.Fatalf("expected enabled=true")
	}
}

func TestEnv_ExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_PG_CONN", "postgres://db:5432/app")
	t.Setenv("TEST_API_PORT", "9090")

	var cfg testConfig
	body := []byte("conn: ${TEST_PG_CONN}\nport: ${TEST_API_PORT}\n")

	if err := yaml.Unmarshal(body, &cfg); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if cfg.Conn.Value != "postgres://db:5432/app" {
		t.Fatalf("expected expanded conn, got %q", cfg.Conn.Value)
	}
	if cfg.Port.Value != 9090 {
		t.Fatalf("expected expanded port, got %d", cfg.Port.Value)
	}
}

func TestEnv_InvalidIntFails(t *testing.T) {
	var cfg testConfig
	body := []byte("port: not-a-number\n")

	if err := yaml.Unmarshal(body, &cfg); err == nil {
		t.Fatalf("expected error for non-numeric port")
	}
}
