package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/plain/vocabulary"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []string{"**/*.plain"}, cfg.Workspace.Patterns)
	assert.True(t, cfg.LSP.ReportPartial)
	assert.Zero(t, cfg.Parser.MaxTokens)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid default config", func(c *Config) {}, false},
		{"negative max tokens", func(c *Config) { c.Parser.MaxTokens = -1 }, true},
		{"no patterns", func(c *Config) { c.Workspace.Patterns = nil }, true},
		{"bad pattern", func(c *Config) { c.Workspace.Patterns = []string{"[a"} }, true},
		{"unknown class", func(c *Config) { c.Lexicon = map[string][]string{"Gerund": {"running"}} }, true},
		{"extra stems", func(c *Config) { c.Lexicon = map[string][]string{"Verb": {"runs"}} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "plain.yaml", `
lexicon:
  Verb: [runs, walks]
parser:
  max_tokens: 40
lsp:
  report_partial: false
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Parser.MaxTokens)
	assert.False(t, cfg.LSP.ReportPartial)
	assert.Equal(t, []string{"**/*.plain"}, cfg.Workspace.Patterns, "unset sections keep defaults")

	v, err := cfg.Vocabulary()
	require.NoError(t, err)
	head, err := v.Lookup("walks", "")
	require.NoError(t, err)
	assert.Equal(t, vocabulary.Verb, head.Category())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "plain.toml", `
[lexicon]
Adjective = ["shiny"]

[workspace]
patterns = ["docs/**/*.txt"]
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/**/*.txt"}, cfg.Workspace.Patterns)
	assert.Equal(t, []string{"shiny"}, cfg.Lexicon["Adjective"])
}

func TestLoadErrors(t *testing.T) {
	_, err := LoadFromFile(writeFile(t, "plain.json", `{}`))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = LoadFromFile(writeFile(t, "plain.yaml", "parser: [unclosed"))
	assert.ErrorContains(t, err, "parse config file")

	_, err = LoadFromFile(writeFile(t, "plain.yaml", "parser:\n  max_tokens: -3\n"))
	assert.ErrorContains(t, err, "max_tokens")

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config file")
}

func TestLoadMissingUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
