package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/jirascope/pkg/config"
)

// envVarPrefix is the prefix for all jirascope environment variables.
const envVarPrefix = "JIRASCOPE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
)

type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"STRICT":           {field: "strict", typ: envTypeBool, description: "Fail on unsupported Markdown: true or false"},
	"DETECT_LANGUAGES": {field: "detect_languages", typ: envTypeBool, description: "Guess code block languages: true or false"},
	"BLOCK_SPACING":    {field: "block_spacing", typ: envTypeBool, description: "Blank lines between rendered blocks: true or false"},
	"JSON_INDENT":      {field: "json.indent", typ: envTypeBool, description: "Pretty-print ADF JSON: true or false"},
	"FIELD_PATH":       {field: "json.field_path", typ: envTypeString, description: "gjson path of the document in Jira payloads"},
	"COLOR":            {field: "color", typ: envTypeString, description: "Styled output: auto, always, or never"},
}

// LookupFunc retrieves the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// LoadFromEnv reads JIRASCOPE_* variables from the process environment.
func LoadFromEnv() (*Overrides, error) {
	return overridesFromEnv(os.LookupEnv)
}

// overridesFromEnv collects overrides from lookup. Unset and empty
// variables are skipped.
func overridesFromEnv(lookup LookupFunc) (*Overrides, error) {
	o := &Overrides{}
	if lookup == nil {
		return o, nil
	}

	for suffix, mapping := range envMappings {
		envVar := envVarPrefix + suffix
		value, ok := lookup(envVar)
		if !ok || value == "" {
			continue
		}

		if err := applyEnvValue(o, mapping, value, envVar); err != nil {
			return nil, err
		}
	}

	return o, nil
}

func applyEnvValue(o *Overrides, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(o, mapping.field, b)
	case envTypeString:
		return setStringField(o, mapping.field, value)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setBoolField(o *Overrides, field string, value bool) error {
	switch field {
	case "strict":
		o.Strict = &value
	case "detect_languages":
		o.DetectLanguages = &value
	case "block_spacing":
		o.BlockSpacing = &value
	case "json.indent":
		o.Indent = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setStringField(o *Overrides, field, value string) error {
	switch field {
	case "json.field_path":
		o.FieldPath = &value
	case "color":
		mode := config.ColorMode(value)
		o.Color = &mode
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns the supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
