package scenario

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Validator handles scenario validation.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator creates a new validator with the given schema file.
func NewValidator(schemaPath string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()

	schema, err := compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Validator{schema: schema}, nil
}

// ValidateDirectory loads and validates all scenario files in a directory.
func (v *Validator) ValidateDirectory(dirPath string) []ValidationError {
	scenarios, loadErrors := LoadFromDirectory(dirPath)

	var allErrors []ValidationError
	allErrors = append(allErrors, loadErrors...)

	if len(scenarios) == 0 {
		return allErrors
	}

	for _, sf := range scenarios {
		allErrors = append(allErrors, v.validateSchema(sf.File, sf.Scenario)...)
	}

	allErrors = append(allErrors, v.validateExtraRules(scenarios)...)

	return allErrors
}

// ValidateScenario validates a single already-loaded scenario.
func (v *Validator) ValidateScenario(file string, sc *Scenario) []ValidationError {
	errors := v.validateSchema(file, sc)
	errors = append(errors, validateCycleLength(file, sc)...)
	return errors
}

// validateSchema validates one scenario against the JSON schema. The
// document round-trips through YAML to get schema-friendly generic types.
func (v *Validator) validateSchema(file string, sc *Scenario) []ValidationError {
	var errors []ValidationError

	yamlBytes, err := yaml.Marshal(sc)
	if err != nil {
		errors = append(errors, ValidationError{
			File:    file,
			Message: fmt.Sprintf("failed to marshal scenario: %v", err),
		})
		return errors
	}

	var jsonData interface{}
	if err := yaml.Unmarshal(yamlBytes, &jsonData); err != nil {
		errors = append(errors, ValidationError{
			File:    file,
			Message: fmt.Sprintf("failed to convert to JSON: %v", err),
		})
		return errors
	}

	if err := v.schema.Validate(jsonData); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			errors = append(errors, extractSchemaErrors(file, validationErr)...)
		} else {
			errors = append(errors, ValidationError{
				File:    file,
				Message: err.Error(),
			})
		}
	}

	return errors
}

// extractSchemaErrors converts JSON schema validation errors to ValidationErrors.
func extractSchemaErrors(file string, err *jsonschema.ValidationError) []ValidationError {
	var errors []ValidationError

	path := strings.Join(err.InstanceLocation, ".")
	if path == "" {
		path = "(root)"
	}

	errors = append(errors, ValidationError{
		File:    file,
		Path:    path,
		Message: err.Error(),
	})

	for _, cause := range err.Causes {
		errors = append(errors, extractSchemaErrors(file, cause)...)
	}

	return errors
}

// validateExtraRules applies rules the JSON schema cannot express.
func (v *Validator) validateExtraRules(scenarios []ScenarioWithFile) []ValidationError {
	var errors []ValidationError

	idSeen := make(map[string]string)
	for _, sf := range scenarios {
		id := sf.Scenario.Metadata.ID
		if prevFile, exists := idSeen[id]; exists {
			errors = append(errors, ValidationError{
				File:    sf.File,
				Path:    "metadata.id",
				Message: fmt.Sprintf("duplicate ID %q (also in %s)", id, filepath.Base(prevFile)),
			})
		} else {
			idSeen[id] = sf.File
		}

		errors = append(errors, validateCycleLength(sf.File, sf.Scenario)...)
	}

	return errors
}

// validateCycleLength checks that at least one full maintenance cycle
// fits inside the asset lifespan.
func validateCycleLength(file string, sc *Scenario) []ValidationError {
	var errors []ValidationError

	if sc.Spec.CycleLengthYears > sc.Spec.LifespanYears {
		errors = append(errors, ValidationError{
			File: file,
			Path: "spec.cycleLengthYears",
			Message: fmt.Sprintf("cycleLengthYears (%g) must not exceed lifespanYears (%g)",
				sc.Spec.CycleLengthYears, sc.Spec.LifespanYears),
		})
	}

	return errors
}
