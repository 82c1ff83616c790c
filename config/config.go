// Package config loads the settings shared by the plain commands.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/plain/vocabulary"
)

// Config is the complete configuration.
type Config struct {
	// Lexicon adds stems to word classes, keyed by class name.
	Lexicon   map[string][]string `yaml:"lexicon" toml:"lexicon"`
	Parser    ParserConfig        `yaml:"parser" toml:"parser"`
	Workspace WorkspaceConfig     `yaml:"workspace" toml:"workspace"`
	LSP       LSPConfig           `yaml:"lsp" toml:"lsp"`
}

type ParserConfig struct {
	// MaxTokens rejects longer clauses; 0 means no limit.
	MaxTokens int `yaml:"max_tokens" toml:"max_tokens"`
}

type WorkspaceConfig struct {
	// Patterns are doublestar globs, relative to the workspace root.
	Patterns []string `yaml:"patterns" toml:"patterns"`
}

type LSPConfig struct {
	// ReportPartial warns about clauses that do not reduce to one tree.
	ReportPartial bool `yaml:"report_partial" toml:"report_partial"`
}

func DefaultConfig() *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			Patterns: []string{"**/*.plain"},
		},
		LSP: LSPConfig{
			ReportPartial: true,
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Parser.MaxTokens < 0 {
		return fmt.Errorf("parser.max_tokens must not be negative")
	}
	if len(c.Workspace.Patterns) == 0 {
		return fmt.Errorf("workspace.patterns must not be empty")
	}
	for _, p := range c.Workspace.Patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("workspace.patterns: invalid pattern %q", p)
		}
	}
	if _, err := c.Vocabulary(); err != nil {
		return fmt.Errorf("lexicon: %w", err)
	}
	return nil
}

// Vocabulary builds the built-in vocabulary extended by the lexicon.
func (c *Config) Vocabulary() (*vocabulary.Vocabulary, error) {
	return vocabulary.New(c.Lexicon)
}

// LoadFromFile reads a YAML or TOML file, chosen by extension, over the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Load reads path if it is set and exists, and returns the defaults
// otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadFromFile(path)
}
