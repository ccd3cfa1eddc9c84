// Package questions loads and validates quiz question banks.
package questions

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/pawquiz/internal/quiz"
)

//go:embed default.yaml
var defaultBank []byte

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://pawquiz/bank.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// bankFile is the on-disk layout of a bank.
type bankFile struct {
	Questions []quiz.Question `yaml:"questions"`
}

// Default returns the built-in four-question bank.
func Default() []quiz.Question {
	qs, err := Parse(defaultBank)
	if err != nil {
		panic(fmt.Sprintf("built-in question bank: %v", err))
	}
	return qs
}

// Load reads a YAML or JSON bank from path.
func Load(path string) ([]quiz.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	qs, err := Parse(data)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Path = path
		}
		return nil, err
	}
	return qs, nil
}

// Parse validates data against the bank schema and decodes it.
// JSON input is accepted since YAML is a superset of it.
func Parse(data []byte) ([]quiz.Question, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("parse: %w", err)}
	}

	if err := validateSchema(raw); err != nil {
		return nil, &ValidationError{Err: err}
	}

	var bf bankFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("decode: %w", err)}
	}

	for i, q := range bf.Questions {
		if err := q.Validate(); err != nil {
			return nil, &ValidationError{Err: fmt.Errorf("question %d: %w", i+1, err)}
		}
	}
	return bf.Questions, nil
}

// validateSchema checks a decoded document against the embedded schema.
func validateSchema(doc any) error {
	schema, err := bankSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	// The validator expects JSON-shaped values, so round-trip through JSON.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode for validation: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("decode for validation: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func bankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
