// ABOUTME: Tests for mindguard configuration management.
// ABOUTME: Covers load, save, defaults, backend selection, and path expansion.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/mindguard/internal/storage"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "markdown"}
	if got := cfg.GetBackend(); got != "markdown" {
		t.Errorf("GetBackend() = %q, want %q", got, "markdown")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}

	got := cfg.GetDataDir()
	if got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/mindguard-test"}
	if got := cfg.GetDataDir(); got != "/tmp/mindguard-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/mindguard-test")
	}
}

func TestGetWindowDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetWindow(); got != 7 {
		t.Errorf("GetWindow() = %d, want 7", got)
	}
}

func TestGetWindowExplicit(t *testing.T) {
	cfg := &Config{Window: 30}
	if got := cfg.GetWindow(); got != 30 {
		t.Errorf("GetWindow() = %d, want 30", got)
	}
}

func TestGetWindowNegative(t *testing.T) {
	cfg := &Config{Window: -3}
	if got := cfg.GetWindow(); got != 7 {
		t.Errorf("GetWindow() = %d, want default 7 for negative config", got)
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~")
	if got != home {
		t.Errorf("ExpandPath(\"~\") = %q, want %q", got, home)
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~/data/mindguard")
	want := filepath.Join(home, "data/mindguard")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/mindguard\") = %q, want %q", got, want)
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/mindguard-data"}
	got := cfg.GetDataDir()
	want := filepath.Join(home, "mindguard-data")
	if got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestOpenStorageMemory(t *testing.T) {
	cfg := &Config{Backend: "memory"}

	repo, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage() failed: %v", err)
	}
	defer repo.Close()

	if _, ok := repo.(*storage.MemoryStore); !ok {
		t.Errorf("Expected *storage.MemoryStore, got %T", repo)
	}
}

func TestOpenStorageSQLite(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &Config{Backend: "sqlite", DataDir: tmpDir}

	repo, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage() failed: %v", err)
	}
	defer repo.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, "mindguard.db")); err != nil {
		t.Errorf("Expected database file to be created: %v", err)
	}
}

func TestOpenStorageMarkdown(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &Config{Backend: "markdown", DataDir: tmpDir}

	repo, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage() failed: %v", err)
	}
	defer repo.Close()

	if _, ok := repo.(*storage.MarkdownStore); !ok {
		t.Errorf("Expected *storage.MarkdownStore, got %T", repo)
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "etcd"}

	if _, err := cfg.OpenStorage(); err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.Backend != "" {
		t.Errorf("Expected empty Backend, got %q", cfg.Backend)
	}
	if cfg.DataDir != "" {
		t.Errorf("Expected empty DataDir, got %q", cfg.DataDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &Config{
		Backend: "markdown",
		DataDir: "/tmp/mindguard-data",
		Window:  14,
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.Backend != "markdown" {
		t.Errorf("Backend mismatch: got %q, want %q", loaded.Backend, "markdown")
	}
	if loaded.DataDir != "/tmp/mindguard-data" {
		t.Errorf("DataDir mismatch: got %q, want %q", loaded.DataDir, "/tmp/mindguard-data")
	}
	if loaded.Window != 14 {
		t.Errorf("Window mismatch: got %d, want 14", loaded.Window)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	cfg := &Config{Backend: "sqlite"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "mindguard")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "mindguard")
	os.MkdirAll(configDir, 0755)
	os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600)

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")

	got := GetConfigPath()
	if !strings.HasSuffix(got, filepath.Join("mindguard", "config.json")) {
		t.Errorf("GetConfigPath() = %q, want suffix mindguard/config.json", got)
	}
}
