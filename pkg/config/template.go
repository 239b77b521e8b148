package config

import (
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "json".
	Format string
}

const yamlTemplate = `# jirascope configuration
# See: https://github.com/yaklabco/jirascope

# Abort md2adf on Markdown that has no ADF equivalent (images, raw HTML...)
# instead of emitting a placeholder paragraph.
strict: false

# Guess the language of fenced code blocks that do not name one.
detect_languages: false

# Separate blocks with a blank line when rendering Markdown.
block_spacing: false

json:
  # Pretty-print ADF JSON output.
  indent: true

  # gjson path of the document inside a Jira payload, used by adf2md and
  # stats. A bare ADF document is always read whole.
  field_path: fields.description
`

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	switch opts.Format {
	case "", "yaml", "yml":
		return []byte(yamlTemplate), nil
	case "json":
		data, err := json.MarshalIndent(NewConfig(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown template format %q", opts.Format)
	}
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# jirascope configuration
# See: https://github.com/yaklabco/jirascope`
}
