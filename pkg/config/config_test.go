package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
environment: test
server:
  port: 8080
  read_timeout: 10s
  write_timeout: 10s
  shutdown_timeout: 5s
storage:
  type: memory
  prefix: foxjournal
logging:
  level: info
  format: console
  output: stdout
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if c.Environment != "test" {
		t.Errorf("expected environment test, got %s", c.Environment)
	}
	if c.Storage.Type != "memory" {
		t.Errorf("expected memory storage, got %s", c.Storage.Type)
	}
	if c.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", c.Server.Port)
	}
}

func TestValidateRejectsUnknownStorage(t *testing.T) {
	bad := `
environment: test
server:
  port: 8080
storage:
  type: clickhouse
`
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatal("expected validation error for unknown storage type")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("SERVER_PORT", "9090")

	c, err := LoadWithEnv(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if c.Storage.Type != "redis" {
		t.Errorf("expected redis storage, got %s", c.Storage.Type)
	}
	if c.Storage.Redis.Host != "cache.internal" {
		t.Errorf("expected overridden host, got %s", c.Storage.Redis.Host)
	}
	if c.Server.Port != 9090 {
		t.Errorf("expected overridden port, got %d", c.Server.Port)
	}
}
