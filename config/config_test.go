package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("expected zero Config, got %+v", cfg)
	}
}

func TestLoadParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "heapdom.yaml")
	content := "top_n: 10\ndot_output: /tmp/dom.dot\nflame_output: /tmp/flame.txt\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TopN != 10 {
		t.Errorf("TopN = %d, want 10", cfg.TopN)
	}
	if cfg.DotOutput != "/tmp/dom.dot" {
		t.Errorf("DotOutput = %q", cfg.DotOutput)
	}
	if cfg.FlameOutput != "/tmp/flame.txt" {
		t.Errorf("FlameOutput = %q", cfg.FlameOutput)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("top_n: [this is not an int\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
