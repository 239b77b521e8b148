package configloader

import "github.com/yaklabco/jirascope/pkg/config"

// Overrides holds settings from sources that only name what they change:
// environment variables and command-line flags. A nil field leaves the
// underlying value alone, so an explicit false can still override a true
// from a configuration file.
type Overrides struct {
	Strict          *bool
	DetectLanguages *bool
	BlockSpacing    *bool
	Indent          *bool
	FieldPath       *string
	Color           *config.ColorMode
	Output          *string
}

// IsZero reports whether o changes nothing.
func (o *Overrides) IsZero() bool {
	return o == nil || *o == Overrides{}
}

// merge returns a copy of base with every set field of o applied.
func merge(base *config.Config, o *Overrides) *config.Config {
	if base == nil {
		base = config.NewConfig()
	}
	result := base.Clone()
	if o.IsZero() {
		return result
	}

	if o.Strict != nil {
		result.Strict = *o.Strict
	}
	if o.DetectLanguages != nil {
		result.DetectLanguages = *o.DetectLanguages
	}
	if o.BlockSpacing != nil {
		result.BlockSpacing = *o.BlockSpacing
	}
	if o.Indent != nil {
		result.JSON.Indent = *o.Indent
	}
	if o.FieldPath != nil {
		result.JSON.FieldPath = *o.FieldPath
	}
	if o.Color != nil {
		result.Color = *o.Color
	}
	if o.Output != nil {
		result.Output = *o.Output
	}

	return result
}

// MergeAll applies overrides to base in order, later ones taking precedence.
func MergeAll(base *config.Config, overrides ...*Overrides) *config.Config {
	result := merge(base, nil)
	for _, o := range overrides {
		result = merge(result, o)
	}
	return result
}
