package config

import "strings"

// applyDefaults normalizes configuration values after loading.
func applyDefaults(cfg *Config) {
	cfg.VCS = strings.TrimSpace(cfg.VCS)

	var exts []string
	for _, ext := range cfg.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	cfg.Extensions = exts

	var excludes []string
	for _, prefix := range cfg.Exclude {
		prefix = strings.TrimSpace(prefix)
		if prefix == "" {
			continue
		}
		excludes = append(excludes, prefix)
	}
	cfg.Exclude = excludes
}
