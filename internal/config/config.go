package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rzbill/gitmsg/pkg/trailer"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	CommentChar       string   `json:"commentChar"`
	Separators        string   `json:"separators"`
	GeneratedPrefixes []string `json:"generatedPrefixes"`
}

// Default returns built-in defaults matching git's stock behavior.
func Default() Config {
	return Config{
		CommentChar: "#",
		Separators:  ":",
	}
}

// Load reads configuration from a JSON file. If path is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return Config{}, errors.New("yaml config not supported yet; use JSON for now")
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the parser cannot honor.
func (c Config) Validate() error {
	if len(c.CommentChar) != 1 {
		return fmt.Errorf("commentChar must be a single character, got %q", c.CommentChar)
	}
	if c.Separators == "" {
		return errors.New("separators must not be empty")
	}
	return nil
}

// Options converts the config into trailer parse options.
func (c Config) Options() []trailer.Option {
	var opts []trailer.Option
	if len(c.CommentChar) == 1 {
		opts = append(opts, trailer.WithCommentChar(c.CommentChar[0]))
	}
	if c.Separators != "" {
		opts = append(opts, trailer.WithSeparators(c.Separators))
	}
	if len(c.GeneratedPrefixes) > 0 {
		opts = append(opts, trailer.WithGeneratedPrefixes(c.GeneratedPrefixes...))
	}
	return opts
}
