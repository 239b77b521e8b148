package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jirascope/internal/logging"
	"github.com/yaklabco/jirascope/pkg/adf"
	"github.com/yaklabco/jirascope/pkg/convert"
	"github.com/yaklabco/jirascope/pkg/fsutil"
	"github.com/yaklabco/jirascope/pkg/jira"
)

type md2adfFlags struct {
	conversionFlags
	compact bool
	issue   bool
	output  string
}

func newMD2ADFCommand() *cobra.Command {
	flags := &md2adfFlags{}

	cmd := &cobra.Command{
		Use:   "md2adf [file]",
		Short: "Convert Markdown to ADF JSON",
		Long: `Convert a Markdown file to an Atlassian Document Format (ADF) document.

Reads standard input when no file is given or the file is "-". Markdown
with no ADF equivalent, such as images or raw HTML, is replaced by a
placeholder paragraph and reported as a warning; --strict makes it an
error instead.

Examples:
  jirascope md2adf notes.md                 # Print ADF JSON
  jirascope md2adf --compact notes.md       # Single-line JSON
  jirascope md2adf --issue notes.md         # Wrap as an issue update body
  cat notes.md | jirascope md2adf -o doc.json`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMD2ADF(cmd, args, flags)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "write JSON on a single line")
	cmd.Flags().BoolVar(&flags.issue, "issue", false,
		`wrap the document as {"fields":{"description":...}} for the issue API`)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func runMD2ADF(cmd *cobra.Command, args []string, flags *md2adfFlags) error {
	overrides := flags.overrides(cmd)
	if cmd.Flags().Changed("compact") {
		indent := !flags.compact
		overrides.Indent = &indent
	}
	if cmd.Flags().Changed("output") {
		overrides.Output = &flags.output
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
	logger := logging.FromContext(ctx)

	result, err := sess.converter().FromMarkdown(ctx, string(content))
	if err != nil {
		return fmt.Errorf("%s: %w", info.Path, err)
	}

	for _, w := range result.Warnings {
		logger.Warn(w.Message, logging.FieldLine, w.Line, logging.FieldKind, w.Kind)
	}

	var data []byte
	if flags.issue {
		data, err = issuePayload(result.Document, sess.cfg.JSON.Indent)
	} else {
		data, err = convert.EncodeJSON(result.Document, sess.cfg.JSON.Indent)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')

	written, err := fsutil.WriteOutput(ctx, sess.cfg.Output, data, sess.out)
	if err != nil {
		return err
	}

	logger.Debug("converted markdown",
		logging.FieldNodes, len(result.Document.Content),
		logging.FieldWarnings, len(result.Warnings),
		logging.FieldBytes, len(data),
		"written", written,
	)
	return nil
}

// issuePayload wraps doc in the body of an issue create or edit request.
func issuePayload(doc *adf.Document, indent bool) ([]byte, error) {
	node, err := jira.ToCommentNode(doc)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"fields": map[string]any{"description": node},
	}
	if indent {
		return json.MarshalIndent(payload, "", "  ")
	}
	return json.Marshal(payload)
}

// inputPath returns the single optional path argument, or "" for stdin.
func inputPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
