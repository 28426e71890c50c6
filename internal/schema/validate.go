// Package schema provides JSON schema validation for wscheck configuration files.
package schema

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/nathan8299/wscheck/schema"
)

var (
	configSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		configData, err := schemafs.FS.Open("config.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read config schema: %w", err)
			return
		}
		defer configData.Close()

		configDoc, err := jsonschema.UnmarshalJSON(configData)
		if err != nil {
			compileErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}

		if err := compiler.AddResource("config.schema.json", configDoc); err != nil {
			compileErr = fmt.Errorf("add config schema resource: %w", err)
			return
		}

		configSchema, err = compiler.Compile("config.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile config schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateConfig validates a decoded configuration document against the
// config schema. The document is the generic form produced by the YAML
// decoder (maps, slices, scalars).
func ValidateConfig(doc any) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	if err := configSchema.Validate(doc); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
