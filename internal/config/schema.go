// Package config provides configuration loading and validation for .wscheck.yml.
package config

// ConfigFileName is the optional project configuration file looked up at
// the working-tree root.
const ConfigFileName = ".wscheck.yml"

// Config represents the complete .wscheck.yml configuration.
// The zero value is a valid configuration (auto-detect VCS, base extension
// sets only, nothing excluded).
type Config struct {
	// VCS forces the collaborator ("hg" or "git") instead of auto-detecting.
	VCS string `yaml:"vcs,omitempty"`
	// Extensions are merged into the checked extension set.
	Extensions []string `yaml:"extensions,omitempty"`
	// Exclude lists path prefixes never content-checked or content-fixed.
	Exclude []string `yaml:"exclude,omitempty"`
}
