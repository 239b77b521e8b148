package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldFiles  = "files"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldBytes  = "bytes"

	// Conversion fields.
	FieldStrict          = "strict"
	FieldDetectLanguages = "detect_languages"
	FieldBlockSpacing    = "block_spacing"
	FieldFieldPath       = "field_path"
	FieldNodes           = "nodes"
	FieldWarnings        = "warnings"
	FieldKind            = "kind"
	FieldLine            = "line"

	// Round-trip fields.
	FieldStable   = "stable"
	FieldUnstable = "unstable"

	// Configuration fields.
	FieldConfigFile = "config_file"
	FieldSource     = "source"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
