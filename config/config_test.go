package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Bot.Trigger != "=" {
		t.Errorf("expected Trigger=\"=\", got %q", cfg.Bot.Trigger)
	}
	if cfg.Bot.ChoiceTTLSeconds != 30 {
		t.Errorf("expected ChoiceTTLSeconds=30, got %d", cfg.Bot.ChoiceTTLSeconds)
	}
	if cfg.Libraries.Dir != "javadocs" {
		t.Errorf("expected Dir=javadocs, got %q", cfg.Libraries.Dir)
	}
	if cfg.Suggest.MinSimilarity != 0.9 {
		t.Errorf("expected MinSimilarity=0.9, got %f", cfg.Suggest.MinSimilarity)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "jdoc.yaml")

	content := `
bot:
  trigger: "!"
  choice_ttl_seconds: 60
libraries:
  dir: docs
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Bot.Trigger != "!" {
		t.Errorf("expected Trigger=\"!\", got %q", cfg.Bot.Trigger)
	}
	if cfg.Bot.ChoiceTTLSeconds != 60 {
		t.Errorf("expected ChoiceTTLSeconds=60, got %d", cfg.Bot.ChoiceTTLSeconds)
	}
	if cfg.Libraries.Dir != "docs" {
		t.Errorf("expected Dir=docs, got %q", cfg.Libraries.Dir)
	}
	// Unset sections keep their defaults
	if cfg.Bot.MaxMessageLength != 500 {
		t.Errorf("expected MaxMessageLength=500, got %d", cfg.Bot.MaxMessageLength)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "jdoc.yaml")

	content := `
urban:
  timeout_seconds: 5
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Urban.TimeoutSeconds != 5 {
		t.Errorf("expected TimeoutSeconds=5, got %d", cfg.Urban.TimeoutSeconds)
	}
}

func TestIndexDBPath(t *testing.T) {
	got := IndexDBPath("/tmp/project")
	want := filepath.Join("/tmp/project", ".jdoc", "index.db")
	if got != want {
		t.Errorf("IndexDBPath = %q, want %q", got, want)
	}
}
