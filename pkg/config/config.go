// Package config defines core configuration types for jirascope.
// These types are pure data structures with no dependency on the loader.
package config

// DefaultFieldPath is the gjson path of an issue description in a Jira
// REST payload.
const DefaultFieldPath = "fields.description"

// JSONConfig controls how ADF JSON is written and where it is read from
// inside larger payloads.
type JSONConfig struct {
	// Indent pretty-prints ADF JSON output.
	Indent bool `json:"indent" yaml:"indent"`

	// FieldPath is the gjson path used when the input is a Jira payload
	// rather than a bare document. Empty means the whole input.
	FieldPath string `json:"field_path" yaml:"field_path"`
}

// Config is the root configuration structure for jirascope.
type Config struct {
	// Strict makes unsupported Markdown abort a conversion instead of
	// producing the placeholder text.
	Strict bool `json:"strict" yaml:"strict"`

	// DetectLanguages guesses a language for code blocks without one.
	DetectLanguages bool `json:"detect_languages" yaml:"detect_languages"`

	// BlockSpacing separates rendered Markdown blocks with blank lines.
	BlockSpacing bool `json:"block_spacing" yaml:"block_spacing"`

	// JSON configures ADF JSON input and output.
	JSON JSONConfig `json:"json" yaml:"json"`

	// CLI-level options (not persisted to config files).

	// Color selects when terminal output is styled.
	Color ColorMode `json:"-" yaml:"-"`

	// Output is the destination path; empty or "-" means stdout.
	Output string `json:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		JSON: JSONConfig{
			Indent:    true,
			FieldPath: DefaultFieldPath,
		},
		Color: ColorAuto,
	}
}
