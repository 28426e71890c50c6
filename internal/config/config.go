package config

import (
	"os"

	"gopkg.in/yaml.v3"

	wserrors "github.com/nathan8299/wscheck/internal/errors"
	"github.com/nathan8299/wscheck/internal/schema"
)

// Load reads and parses a .wscheck.yml configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wserrors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, wserrors.Configf("failed to parse config file: %v", err)
	}

	return &cfg, nil
}

// LoadAndValidate reads a config file, validates it against the embedded
// schema, and applies defaults. A missing file yields the zero-value
// configuration.
func LoadAndValidate(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, wserrors.Wrap(err, "failed to read config file")
	}

	// Schema validation runs against the generic document so unknown keys
	// and malformed values are reported before decoding into the struct.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, wserrors.Configf("failed to parse config file: %v", err)
	}
	if doc != nil {
		if err := schema.ValidateConfig(doc); err != nil {
			return nil, wserrors.Configf("%s: %v", path, err)
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, wserrors.Configf("failed to parse config file: %v", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}
