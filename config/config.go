// Package config loads the benchmark corpus and run settings from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/yyyoichi/stegotext/harness"
)

//go:embed corpus.yaml
var defaultCorpus []byte

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the corpus and the run settings.
// Zero values fall back to defaults.
type Config struct {
	Repeat   int      `yaml:"repeat"`
	Staging  string   `yaml:"staging"`   // HTML staging file
	Database string   `yaml:"database"`  // sqlite file, empty disables storage
	Chart    string   `yaml:"chart"`     // chart html output, empty disables it
	CacheDir string   `yaml:"cache_dir"` // http cache for url covers
	Covers   []Cover  `yaml:"covers"`
	Secrets  []Secret `yaml:"secrets"`
}

// Cover is a cover text given inline or by URL.
type Cover struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
}

type Secret struct {
	Name string `yaml:"name"`
	Msg  string `yaml:"msg"`
}

// Default returns the built-in corpus: three English and three Russian cover
// texts and two secrets.
func Default() (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(defaultCorpus, &c); err != nil {
		return nil, fmt.Errorf("failed to parse default corpus: %w", err)
	}
	return &c, nil
}

// Load reads the YAML file at path. Covers or secrets left out of the file
// are taken from the built-in corpus.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	def, err := Default()
	if err != nil {
		return nil, err
	}
	if len(c.Covers) == 0 {
		c.Covers = def.Covers
	}
	if len(c.Secrets) == 0 {
		c.Secrets = def.Secrets
	}
	return &c, nil
}

// Validate checks names, cover sources and that every text is valid UTF-8.
func (c *Config) Validate() error {
	if c.Repeat < 0 {
		return fmt.Errorf("%w: repeat %d", ErrInvalidConfig, c.Repeat)
	}
	if len(c.Covers) == 0 || len(c.Secrets) == 0 {
		return fmt.Errorf("%w: at least one cover and one secret are required", ErrInvalidConfig)
	}
	for i, cv := range c.Covers {
		if cv.Name == "" {
			return fmt.Errorf("%w: covers[%d] has no name", ErrInvalidConfig, i)
		}
		if (cv.Text == "") == (cv.URL == "") {
			return fmt.Errorf("%w: cover %q needs exactly one of text or url", ErrInvalidConfig, cv.Name)
		}
		if !utf8.ValidString(cv.Text) {
			return fmt.Errorf("%w: cover %q is not valid UTF-8", ErrInvalidConfig, cv.Name)
		}
	}
	for i, s := range c.Secrets {
		if s.Name == "" {
			return fmt.Errorf("%w: secrets[%d] has no name", ErrInvalidConfig, i)
		}
		if !utf8.ValidString(s.Msg) {
			return fmt.Errorf("%w: secret %q is not valid UTF-8", ErrInvalidConfig, s.Name)
		}
	}
	return nil
}

// RepeatOrDefault returns the configured repetitions or harness.DefaultRepeat.
func (c *Config) RepeatOrDefault() int {
	if c.Repeat > 0 {
		return c.Repeat
	}
	return harness.DefaultRepeat
}

// StagingOrDefault returns the configured staging file or harness.DefaultStagingPath.
func (c *Config) StagingOrDefault() string {
	if c.Staging != "" {
		return c.Staging
	}
	return harness.DefaultStagingPath()
}

// CacheDirOrDefault returns the configured http cache directory.
func (c *Config) CacheDirOrDefault() string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	return filepath.Join(os.TempDir(), "stegotext-http-cache")
}

// SecretMessages converts the secrets for the harness.
func (c *Config) SecretMessages() []harness.SecretMessage {
	out := make([]harness.SecretMessage, len(c.Secrets))
	for i, s := range c.Secrets {
		out[i] = harness.SecretMessage{Name: s.Name, Msg: s.Msg}
	}
	return out
}
