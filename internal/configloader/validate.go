package configloader

import (
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/jirascope/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "json.field_path").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown fields).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownKeys lists the keys a configuration file may contain, keyed by
// their parent section ("" for the top level).
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownKeys = map[string]map[string]bool{
	"": {
		"strict":           true,
		"detect_languages": true,
		"block_spacing":    true,
		"json":             true,
	},
	"json": {
		"indent":     true,
		"field_path": true,
	},
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	validateFieldPath(cfg.JSON.FieldPath, result)

	return result
}

func validateFieldPath(path string, result *ValidationResult) {
	if path == "" {
		return
	}

	if strings.TrimSpace(path) != path {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "json.field_path",
			Value:   path,
			Message: "path must not start or end with whitespace",
		})
		return
	}

	if strings.IndexFunc(path, unicode.IsControl) >= 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "json.field_path",
			Value:   path,
			Message: "path must not contain control characters",
		})
		return
	}

	if strings.HasPrefix(path, ".") || strings.HasSuffix(path, ".") || strings.Contains(path, "..") {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "json.field_path",
			Value:   path,
			Message: fmt.Sprintf("path %q has an empty component", path),
		})
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// CheckUnknownKeys reports keys in a YAML configuration document that
// jirascope does not recognise. Malformed YAML yields no findings; the
// decoder reports it separately.
func CheckUnknownKeys(content []byte, filePath string) []ValidationError {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil || len(root.Content) == 0 {
		return nil
	}

	var findings []ValidationError
	checkMapping(root.Content[0], "", filePath, &findings)
	return findings
}

func checkMapping(node *yaml.Node, section, filePath string, findings *[]ValidationError) {
	if node.Kind != yaml.MappingNode {
		return
	}

	known := knownKeys[section]
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		field := key.Value
		if section != "" {
			field = section + "." + key.Value
		}

		if !known[key.Value] {
			*findings = append(*findings, ValidationError{
				Field:    field,
				Value:    key.Value,
				Message:  "unknown key; it will be ignored",
				FilePath: filePath,
				Line:     key.Line,
			})
			continue
		}

		if _, nested := knownKeys[field]; nested {
			checkMapping(value, field, filePath, findings)
		}
	}
}
