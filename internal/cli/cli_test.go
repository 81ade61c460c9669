package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	os.Unsetenv("XDG_CACHE_HOME")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := filepath.Join(t.TempDir(), "custom-cache")
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestConfigPathXDG(t *testing.T) {
	customConfig := filepath.Join(t.TempDir(), "custom-config")
	t.Setenv("XDG_CONFIG_HOME", customConfig)

	expected := filepath.Join(customConfig, appName, "config.toml")
	if got := configPath(); got != expected {
		t.Errorf("configPath() = %q, want %q", got, expected)
	}
}

func TestRootCommand(t *testing.T) {
	// Point the config lookup at an empty directory so the host's config
	// cannot leak into the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("root.Use = %q, want %q", root.Use, appName)
	}

	want := []string{"cluster", "connect", "browse", "render", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != formatSVG {
		t.Errorf("parseFormats(\"\") = %v, want [svg]", got)
	}
	got := parseFormats("svg,dot")
	if len(got) != 2 || got[0] != "svg" || got[1] != "dot" {
		t.Errorf("parseFormats(\"svg,dot\") = %v", got)
	}
}

func TestArtifactBase(t *testing.T) {
	tests := []struct {
		name     string
		inputArg string
		output   string
		want     string
	}{
		{"explicit output", "points.txt", "diagram.svg", "diagram"},
		{"from input", "points.txt", "", "points"},
		{"stdin", "-", "", "forest"},
		{"url input", "", "", "forest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := artifactBase(tt.inputArg, tt.output); got != tt.want {
				t.Errorf("artifactBase(%q, %q) = %q, want %q", tt.inputArg, tt.output, got, tt.want)
			}
		})
	}
}

func TestReadInputRejectsConflicts(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c := New(io.Discard, LogInfo)
	cmd := c.RootCommand()

	_, err := c.readInput(cmd, []string{"points.txt"}, "http://example.com", true)
	if err == nil || !strings.Contains(err.Error(), "--from-url") {
		t.Errorf("expected conflict error, got %v", err)
	}

	_, err = c.readInput(cmd, nil, "", true)
	if err == nil {
		t.Error("expected error when no input source is given")
	}
}

func TestReadInputFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c := New(io.Discard, LogInfo)
	cmd := c.RootCommand()

	path := filepath.Join(t.TempDir(), "points.txt")
	if err := os.WriteFile(path, []byte("1,2,3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := c.readInput(cmd, []string{path}, "", true)
	if err != nil {
		t.Fatalf("readInput() failed: %v", err)
	}
	if string(data) != "1,2,3\n" {
		t.Errorf("readInput() = %q", data)
	}
}
