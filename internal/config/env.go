package config

import (
	"os"
	"strings"
)

// FromEnv overlays GITMSG_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("GITMSG_COMMENT_CHAR"); v != "" {
		cfg.CommentChar = v
	}
	if v := os.Getenv("GITMSG_SEPARATORS"); v != "" {
		cfg.Separators = v
	}
	if v := os.Getenv("GITMSG_GENERATED_PREFIXES"); v != "" {
		parts := strings.Split(v, ",")
		cfg.GeneratedPrefixes = nil
		for _, p := range parts {
			if p != "" {
				cfg.GeneratedPrefixes = append(cfg.GeneratedPrefixes, p)
			}
		}
	}
}
