package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/massbuild-config.v1.schema.json
var schemaBytes []byte

// Validates a YAML configuration document against the embedded JSON schema.
//
// The YAML is decoded into generic values and re-encoded as JSON, since the
// schema validator only understands JSON documents. Schema violations are
// collected into a single error listing every failed field.
func validateSchema(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if doc == nil {
		return nil // Empty document, defaults apply.
	}

	jsonDoc, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(jsonDoc),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrConfig, strings.Join(issues, "; "))
}
