package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/spanforge/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Defaults.K != pipeline.DefaultK {
		t.Errorf("K = %d, want %d", cfg.Defaults.K, pipeline.DefaultK)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() on missing file: %v", err)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("missing config should fall back to defaults, got backend %q", cfg.Cache.Backend)
	}
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") failed: %v", err)
	}
	if cfg.Defaults.K != pipeline.DefaultK {
		t.Errorf("K = %d, want default", cfg.Defaults.K)
	}
}

func TestLoadConfig_Full(t *testing.T) {
	path := writeConfig(t, `
[defaults]
k = 250

[cache]
backend = "redis"

[cache.redis]
addr = "cache.internal:6379"
db = 2
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Defaults.K != 250 {
		t.Errorf("K = %d, want 250", cfg.Defaults.K)
	}
	if cfg.Cache.Backend != BackendRedis {
		t.Errorf("Backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Cache.Redis.Addr != "cache.internal:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Cache.Redis.Addr)
	}
	if cfg.Cache.Redis.DB != 2 {
		t.Errorf("Redis.DB = %d, want 2", cfg.Cache.Redis.DB)
	}
	// Untouched sections keep their defaults.
	if cfg.Cache.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("Mongo.URI = %q, want default", cfg.Cache.Mongo.URI)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad backend", "[cache]\nbackend = \"memcached\"\n"},
		{"negative k", "[defaults]\nk = -5\n"},
		{"unknown key", "[cache]\nbakend = \"file\"\n"},
		{"malformed toml", "[cache\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig() accepted invalid config")
			}
		})
	}
}
