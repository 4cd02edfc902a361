package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points every config lookup at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("ASTA_CONFIG", "")
	t.Setenv("ASTA_THEME_FILE", "")
	return tempDir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "asta")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.Assign != "enter" {
		t.Errorf("Default Assign key = %s, want enter", defaults.Assign)
	}
	if defaults.PrevEntity != "k" || defaults.NextEntity != "j" {
		t.Errorf("Default navigation keys = %s/%s, want k/j", defaults.PrevEntity, defaults.NextEntity)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Output.Suffix != "_auction_results" {
		t.Errorf("Output.Suffix = %q, want _auction_results", cfg.Output.Suffix)
	}
	if len(cfg.Output.Header) != 3 || cfg.Output.Header[0] != "Rider" {
		t.Errorf("Output.Header = %v, want [Rider Team Price]", cfg.Output.Header)
	}
	if len(cfg.Session.SkipWords) != 2 {
		t.Errorf("Session.SkipWords = %v, want [skip salta]", cfg.Session.SkipWords)
	}
	if cfg.Roster.SurnameColumn != "B" || cfg.Roster.FirstNameColumn != "C" || cfg.Roster.ValueColumn != "G" {
		t.Errorf("Roster columns = %+v, want B/C/G", cfg.Roster)
	}
	if !cfg.Journal.Enabled {
		t.Error("Journal should be enabled by default")
	}
	if cfg.ColorScheme.Preset != "default" || cfg.ColorScheme.Accent == "" {
		t.Errorf("ColorScheme not defaulted: %+v", cfg.ColorScheme)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `key_mappings:
  quit: "x"
  assign: "a"
session:
  skip_words: ["pass"]
output:
  suffix: "_risultati"
  header: ["Corridore", "Squadra", "Prezzo"]
journal:
  enabled: false
theme:
  preset: monochrome
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.Assign != "a" {
		t.Errorf("Loaded Assign key = %s, want a", cfg.KeyMappings.Assign)
	}
	// Unspecified values should use defaults
	if cfg.KeyMappings.PrevEntity != "k" {
		t.Errorf("Loaded PrevEntity key = %s, want k (default)", cfg.KeyMappings.PrevEntity)
	}
	if len(cfg.Session.SkipWords) != 1 || cfg.Session.SkipWords[0] != "pass" {
		t.Errorf("SkipWords = %v, want [pass]", cfg.Session.SkipWords)
	}
	if cfg.Output.Suffix != "_risultati" || cfg.Output.Header[0] != "Corridore" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Output.Dir != "." {
		t.Errorf("Output.Dir = %q, want . (default)", cfg.Output.Dir)
	}
	if cfg.Journal.Enabled {
		t.Error("Journal.Enabled should be false")
	}
	if cfg.ColorScheme.Accent != MonochromeColorScheme().Accent {
		t.Errorf("Accent = %s, want monochrome accent", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("roster:\n  value_column: H\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("ASTA_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Roster.ValueColumn != "H" {
		t.Errorf("ValueColumn = %q, want H", cfg.Roster.ValueColumn)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "output:\n  suffix: \"_from_file\"\n")
	t.Setenv("ASTA_OUTPUT__SUFFIX", "_from_env")
	t.Setenv("ASTA_JOURNAL__ENABLED", "false")
	t.Setenv("ASTA_KEY_MAPPINGS__QUIT", "Q")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Output.Suffix != "_from_env" {
		t.Errorf("Output.Suffix = %q, want _from_env", cfg.Output.Suffix)
	}
	if cfg.Journal.Enabled {
		t.Error("Journal.Enabled should be overridden to false")
	}
	if cfg.KeyMappings.Quit != "Q" {
		t.Errorf("Quit = %q, want Q", cfg.KeyMappings.Quit)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"short header", "output:\n  header: [\"Name\", \"Team\"]\n", ErrInvalidConfig},
		{"duplicate key", "key_mappings:\n  quit: \"j\"\n", ErrInvalidConfig},
		{"negative header rows", "roster:\n  header_rows: -1\n", ErrInvalidConfig},
		{"quit on up arrow", "key_mappings:\n  quit: \"up\"\n", ErrInvalidConfig},
		{"previous on down arrow", "key_mappings:\n  prev_entity: \"down\"\n", ErrInvalidConfig},
		{"malformed yaml", "output: [\n", ErrLoadConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeConfig(t, dir, tt.content)

			_, err := Load()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigArrowNavigation(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "key_mappings:\n  prev_entity: \"up\"\n  next_entity: \"down\"\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.KeyMappings.PrevEntity != "up" {
		t.Errorf("PrevEntity = %q, want up", cfg.KeyMappings.PrevEntity)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Output.Header) != 3 {
		t.Fatalf("Output.Header = %v, want 3 names", cfg.Output.Header)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("ColorScheme.Accent is empty")
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}
