// Package validation checks JSON documents against named JSON schemas.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrUnknownSchema is returned when validating against a name that was
// never registered
var ErrUnknownSchema = errors.New("schema not registered")

// SchemaValidator holds compiled schemas by name. It is safe for concurrent
// use.
type SchemaValidator struct {
	mu       sync.RWMutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates an empty validator
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// RegisterSchema compiles schema under name. Registering a name twice keeps
// the first schema.
func (v *SchemaValidator) RegisterSchema(name string, schema []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[name]; ok {
		return nil
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(schema)))
	if err != nil {
		return fmt.Errorf("failed to parse schema JSON: %w", err)
	}
	if err := v.compiler.AddResource(name, doc); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := v.compiler.Compile(name)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[name] = compiled
	return nil
}

// ValidateBytes validates a JSON document against the named schema
func (v *SchemaValidator) ValidateBytes(data []byte, name string) error {
	v.mu.RLock()
	schema, ok := v.schemas[name]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("schema validation failed:\n%s", strings.Join(violations(verr), "\n"))
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// ValidateFile reads path and validates it against the named schema
func (v *SchemaValidator) ValidateFile(path, name string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", path, err)
	}
	return v.ValidateBytes(data, name)
}

// violations flattens a validation error tree into one line per leaf
func violations(err *jsonschema.ValidationError) []string {
	if len(err.Causes) > 0 {
		var out []string
		for _, cause := range err.Causes {
			out = append(out, violations(cause)...)
		}
		return out
	}

	location := "/" + strings.Join(err.InstanceLocation, "/")
	keyword := "validation"
	if err.ErrorKind != nil {
		if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
			keyword = strings.Join(path, ".")
		}
	}
	return []string{fmt.Sprintf("  - at %s: %s failed", location, keyword)}
}
