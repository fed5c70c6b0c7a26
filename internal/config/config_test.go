package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/Chube123go/RedditStoryBot/internal/branding"
)

func setup(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	Load()
	t.Cleanup(viper.Reset)
	return home
}

func TestSetAndGet(t *testing.T) {
	home := setup(t)

	if err := Set(KeyBotDir, "/opt/bots/story"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Get(KeyBotDir); got != "/opt/bots/story" {
		t.Errorf("Get(%q) = %q, want %q", KeyBotDir, got, "/opt/bots/story")
	}

	// The file lands under the sandboxed home.
	path := filepath.Join(home, branding.HomeDir(), "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "bot_dir") {
		t.Errorf("config file missing key, contents:\n%s", data)
	}
}

func TestBotRepoURL_Resolution(t *testing.T) {
	setup(t)

	// Branding default when nothing else is set.
	if got := BotRepoURL(); got != branding.BotRepoURL() {
		t.Errorf("default = %q, want branding %q", got, branding.BotRepoURL())
	}

	// Config file value wins over branding.
	if err := Set(KeyBotRepoURL, "https://example.com/fork.git"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := BotRepoURL(); got != "https://example.com/fork.git" {
		t.Errorf("config value = %q, want fork URL", got)
	}

	// Env var wins over everything.
	t.Setenv(branding.EnvVar(KeyBotRepoURL), "https://example.com/env.git")
	if got := BotRepoURL(); got != "https://example.com/env.git" {
		t.Errorf("env value = %q, want env URL", got)
	}
}

func TestUpdateCheckEnabled(t *testing.T) {
	setup(t)

	if !UpdateCheckEnabled() {
		t.Error("expected update check enabled by default")
	}

	t.Setenv(branding.EnvVar(KeyUpdateCheck), "false")
	if UpdateCheckEnabled() {
		t.Error("expected update check disabled via env")
	}
}

func TestResolved(t *testing.T) {
	setup(t)

	if got := Resolved(KeyBotDir); got != branding.BotDirName() {
		t.Errorf("Resolved(bot_dir) = %q, want branding default %q", got, branding.BotDirName())
	}
	if got := Resolved(KeyUpdateCheck); got != "true" {
		t.Errorf("Resolved(update_check) = %q, want %q", got, "true")
	}
	if got := Resolved(KeyUpdateMirror); got != "" {
		t.Errorf("Resolved(update_mirror) = %q, want empty", got)
	}

	if err := Set(KeyBotDir, "Elsewhere"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Resolved(KeyBotDir); got != "Elsewhere" {
		t.Errorf("Resolved(bot_dir) = %q, want file value", got)
	}

	t.Setenv(branding.EnvVar(KeyBotDir), "EnvWins")
	if got := Resolved(KeyBotDir); got != "EnvWins" {
		t.Errorf("Resolved(bot_dir) = %q, want env value", got)
	}
}

func TestKeysCoverAccessors(t *testing.T) {
	want := []string{
		KeyBotRepoURL, KeyBotDir, KeyBotEntrypoint, KeyPythonMinimum,
		KeyUpdateCheck, KeyUpdateMirror,
	}
	got := Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
