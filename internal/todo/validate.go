package todo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/todotxt-go/internal/utils"
)

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location, e.g. items[2].priority
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationOptions controls validation behavior.
type ValidationOptions struct {
	// SchemaPath is the path to a JSON Schema file describing
	// {"items": [Record, ...]}. If empty, only minimal checks run.
	SchemaPath string
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

// schemaDocument is the value validated against a user schema.
type schemaDocument struct {
	Items []Record `json:"items"`
}

// Validate checks every item in the list. Minimal checks always run; a
// schema, when configured and loadable, is applied on top of them.
func (l *List) Validate(opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	l.validateMinimal(result)

	if opts.SchemaPath != "" {
		schemaResult := validateWithSchema(l, opts.SchemaPath)
		result.UsedSchema = schemaResult.UsedSchema
		result.Warnings = append(result.Warnings, schemaResult.Warnings...)
		if !schemaResult.UsedSchema {
			result.Warnings = append(result.Warnings, "JSON Schema validation not available, using minimal checks")
		} else if !schemaResult.Valid {
			result.Valid = false
			result.Errors = append(result.Errors, schemaResult.Errors...)
		}
	}

	return result
}

// validateMinimal performs the checks that need no schema.
func (l *List) validateMinimal(result *ValidationResult) {
	for i, item := range l.items {
		path := fmt.Sprintf("items[%d]", i)
		if err := validateItemMinimal(item, path); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
			continue
		}
		if item.Description == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: empty description", path))
		}
		if item.CompletionDate != nil && item.CompletionDate.Before(*item.CreationDate) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: completed %s before it was created %s", path,
					item.CompletionDate.Format(DateLayout), item.CreationDate.Format(DateLayout)))
		}
	}
}

// validateItemMinimal checks the invariants Format relies on.
func validateItemMinimal(item Item, path string) *ValidationError {
	if item.Priority.IsSet() && !item.Priority.Valid() {
		return &ValidationError{
			Path: path + ".priority",
			Err:  fmt.Errorf("%w: %q, must be A-Z", ErrInvalidPriority, string(rune(item.Priority))),
		}
	}
	if item.CompletionDate != nil && item.CreationDate == nil {
		return &ValidationError{
			Path: path + ".creation_date",
			Err:  ErrCompletionWithoutCreation,
		}
	}
	return nil
}

// validateWithSchema attempts JSON Schema validation.
func validateWithSchema(l *List, schemaPath string) *ValidationResult {
	result := &ValidationResult{
		Valid:      true,
		Errors:     make([]error, 0),
		Warnings:   make([]string, 0),
		UsedSchema: false,
	}

	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("invalid schema path: %v", err))
		return result
	}

	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("schema file not found: %s", absPath))
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("failed to read schema file: %v", err))
		}
		return result
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	schema, err := compiler.Compile(absPath)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("invalid schema file: %v", err))
		return result
	}

	result.UsedSchema = true

	data, err := json.Marshal(schemaDocument{Items: l.Records()})
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("failed to marshal items for validation: %w", err),
		})
		return result
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("failed to unmarshal items for validation: %w", err),
		})
		return result
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}

	return result
}

func appendSchemaErrors(result *ValidationResult, err error) {
	if err == nil {
		return
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
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
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}
