package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/yaklabco/jirascope/internal/configloader"
	"github.com/yaklabco/jirascope/internal/logging"
	"github.com/yaklabco/jirascope/internal/ui/pretty"
	"github.com/yaklabco/jirascope/pkg/adf"
	"github.com/yaklabco/jirascope/pkg/convert"
	"github.com/yaklabco/jirascope/pkg/fsutil"
	"github.com/yaklabco/jirascope/pkg/jira"
)

type statsFlags struct {
	path string
}

func newStatsCommand() *cobra.Command {
	flags := &statsFlags{}

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Count the node types in a document",
		Long: `Print a table of the ADF node types in a document.

The input is ADF JSON, a Jira payload (see adf2md --path), or Markdown,
which is converted first. JSON input is recognised by its content.

Examples:
  jirascope stats doc.json
  jirascope stats README.md
  jirascope stats --path fields.environment issue.json`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.path, "path", "", "gjson path of the document inside a payload")

	return cmd
}

func runStats(cmd *cobra.Command, args []string, flags *statsFlags) error {
	overrides := &configloader.Overrides{}
	if cmd.Flags().Changed("path") {
		overrides.FieldPath = &flags.path
	}

	sess, err := newSession(cmd, overrides)
	if err != nil {
		return err
	}

	content, info, err := fsutil.ReadInput(sess.ctx, inputPath(args), cmd.InOrStdin())
	if err != nil {
		return err
	}

	ctx := logging.WithFields(sess.ctx, logging.FieldInput, info.Path)

	var doc *adf.Document
	if isJSON(content) {
		path := documentPath(content, sess.cfg.JSON.FieldPath, cmd.Flags().Changed("path"))
		doc, err = jira.ExtractDocument(content, path)
	} else {
		var result *convert.Result
		result, err = sess.converter().FromMarkdown(ctx, string(content))
		if result != nil {
			doc = result.Document
			logging.FromContext(ctx).Debug("converted markdown", logging.FieldWarnings, len(result.Warnings))
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", info.Path, err)
	}

	return writeCensus(sess.out, sess.styles, adf.CountTypes(doc))
}

// isJSON reports whether content looks like a JSON object rather than
// Markdown.
func isJSON(content []byte) bool {
	trimmed := bytes.TrimSpace(content)
	return len(trimmed) > 0 && trimmed[0] == '{' && gjson.ValidBytes(trimmed)
}

func writeCensus(w io.Writer, styles *pretty.Styles, counts map[adf.NodeType]int) error {
	named := make(map[string]int, len(counts))
	for typ, n := range counts {
		named[string(typ)] = n
	}

	table := styles.FormatCensus(named, pretty.TerminalWidth(w))
	if table == "" {
		table = styles.Dim.Render("empty document") + "\n"
	}
	_, err := io.WriteString(w, table)
	return err
}
