package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesMissingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := LoadWithPath(path)
	if err != nil {
		t.Fatalf("LoadWithPath: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file was not created: %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path = %q, want %q", cfg.Path(), path)
	}
	if got := cfg.ResolveDataDir(); got != filepath.Join(filepath.Dir(path), DefaultDataDir) {
		t.Errorf("ResolveDataDir = %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadWithPath(path)
	if err != nil {
		t.Fatalf("LoadWithPath: %v", err)
	}
	cfg.DataDir = "/var/lib/jarvisedu"
	cfg.Chat.Model = "gpt-4o-mini"
	cfg.Questions = map[string]string{"add_assignment.course": "Which class?"}
	cfg.Music = map[string]string{"oppenheimer": "oppenheimer.mp3"}
	cfg.Focus.SessionMinutes = 50
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadWithPath(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.DataDir != "/var/lib/jarvisedu" || got.Chat.Model != "gpt-4o-mini" {
		t.Errorf("reloaded config = %+v", got)
	}
	if got.Questions["add_assignment.course"] != "Which class?" {
		t.Errorf("Questions = %v", got.Questions)
	}
	if got.Music["oppenheimer"] != "oppenheimer.mp3" {
		t.Errorf("Music = %v", got.Music)
	}
	if got.Focus.SessionMinutes != 50 {
		t.Errorf("Focus = %+v", got.Focus)
	}
	if got.ResolveDataDir() != "/var/lib/jarvisedu" {
		t.Errorf("ResolveDataDir = %q", got.ResolveDataDir())
	}
}

func TestChatAPIKeyEnvFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := LoadWithPath(path)
	if err != nil {
		t.Fatalf("LoadWithPath: %v", err)
	}

	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	if got := cfg.ChatAPIKey(); got != "sk-from-env" {
		t.Errorf("ChatAPIKey = %q, want env fallback", got)
	}

	cfg.Chat.APIKey = "sk-from-file"
	if got := cfg.ChatAPIKey(); got != "sk-from-file" {
		t.Errorf("ChatAPIKey = %q, want file value", got)
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := MaskAPIKey("short"); got != "*****" {
		t.Errorf("MaskAPIKey(short) = %q", got)
	}
	if got := MaskAPIKey("sk-abcdefghijklmnop"); got != "sk-a***********mnop" {
		t.Errorf("MaskAPIKey = %q", got)
	}
}
