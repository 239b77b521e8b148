package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/jirascope/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// DefaultContext is the number of unchanged lines shown around a change.
const DefaultContext = 3

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized text output.
	Color config.ColorMode

	// ShowAll reports files that rendered identically without warnings.
	ShowAll bool

	// Context is the number of unchanged diff lines kept around each
	// change. Negative keeps every line.
	Context int

	// Compact writes JSON on a single line.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:  os.Stdout,
		Format:  FormatText,
		Color:   config.ColorAuto,
		Context: DefaultContext,
	}
}
