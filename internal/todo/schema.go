package todo

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/planner-go/internal/utils"
)

//go:embed todo.schema.json
var schemaSource string

const schemaURL = "todo.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
		return nil, fmt.Errorf("add todo schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile todo schema: %w", err)
	}
	return schema, nil
})

// SchemaJSON returns the JSON Schema the todo file is validated against.
func SchemaJSON() string {
	return schemaSource
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid bool
	// Syntax is set when the data is not JSON at all.
	Syntax error
	Errors []error
}

// Err joins the result's errors, or returns nil when the data is valid.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	if r.Syntax != nil {
		return r.Syntax
	}
	return errors.Join(r.Errors...)
}

// Validate checks raw todo file contents against the schema and the
// unique-id rule. Blank input is valid and means an empty list.
func Validate(data []byte) *ValidationResult {
	result := &ValidationResult{Valid: true}
	if len(bytes.TrimSpace(data)) == 0 {
		return result
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		result.Valid = false
		result.Syntax = fmt.Errorf("parse todo file: %w", err)
		return result
	}
	if dec.More() {
		result.Valid = false
		result.Syntax = errors.New("parse todo file: trailing data after JSON value")
		return result
	}

	schema, err := compiledSchema()
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err)
		return result
	}
	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
		return result
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{Err: err})
		return result
	}
	seen := make(map[int]int, len(items))
	for i, item := range items {
		if first, ok := seen[item.ID]; ok {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: fmt.Sprintf("[%d].id", i),
				Err:  fmt.Errorf("duplicate id %d (first used at [%d])", item.ID, first),
			})
			continue
		}
		seen[item.ID] = i
	}
	return result
}

func appendSchemaErrors(result *ValidationResult, err error) {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: utils.JSONPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}
