package goldmark

import "github.com/yaklabco/jirascope/pkg/langdetect"

// Option configures a Parser.
type Option func(*options)

type options struct {
	strict bool
	detect func(code []byte) (string, bool)
}

func defaultOptions() options {
	return options{}
}

// WithStrict makes unsupported Markdown constructs fail the parse with an
// *UnsupportedNodeError instead of producing a placeholder leaf.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithLanguageDetection fills in the language of code blocks written
// without an info string.
func WithLanguageDetection(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.detect = langdetect.Detect
		} else {
			o.detect = nil
		}
	}
}
