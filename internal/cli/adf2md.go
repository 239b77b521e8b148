package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/yaklabco/jirascope/internal/logging"
	"github.com/yaklabco/jirascope/pkg/adf"
	"github.com/yaklabco/jirascope/pkg/fsutil"
	"github.com/yaklabco/jirascope/pkg/jira"
)

type adf2mdFlags struct {
	blockSpacing bool
	path         string
	all          bool
	output       string
}

func newADF2MDCommand() *cobra.Command {
	flags := &adf2mdFlags{}

	cmd := &cobra.Command{
		Use:   "adf2md [file]",
		Short: "Convert ADF JSON to Markdown",
		Long: `Render an Atlassian Document Format (ADF) document as Markdown.

The input may be a bare ADF document or a Jira REST payload. For a
payload, the document is taken from the gjson path given by --path, or
json.field_path from the configuration (default fields.description).
A bare document is used whole unless --path is given.

Examples:
  jirascope adf2md doc.json
  jirascope adf2md issue.json                          # fields.description
  jirascope adf2md --path fields.environment issue.json
  jirascope adf2md --all --path 'comments.#.body' comments.json
  curl ... | jirascope adf2md -o description.md`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runADF2MD(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.blockSpacing, "block-spacing", false,
		"separate rendered blocks with blank lines")
	cmd.Flags().StringVar(&flags.path, "path", "", "gjson path of the document inside a payload")
	cmd.Flags().BoolVar(&flags.all, "all", false,
		"render every document matched by a multi-value --path")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func runADF2MD(cmd *cobra.Command, args []string, flags *adf2mdFlags) error {
	overrides := (&conversionFlags{blockSpacing: flags.blockSpacing}).overrides(cmd)
	if cmd.Flags().Changed("path") {
		overrides.FieldPath = &flags.path
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

	path := documentPath(content, sess.cfg.JSON.FieldPath, cmd.Flags().Changed("path"))
	logger.Debug("extracting document", logging.FieldFieldPath, path)

	var docs []*adf.Document
	if flags.all {
		docs, err = jira.ExtractDocuments(content, path)
	} else {
		var doc *adf.Document
		doc, err = jira.ExtractDocument(content, path)
		docs = []*adf.Document{doc}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", info.Path, err)
	}

	conv := sess.converter()
	rendered := make([]string, 0, len(docs))
	for _, doc := range docs {
		rendered = append(rendered, conv.ToMarkdown(doc))
	}
	data := []byte(strings.Join(rendered, "\n"))

	if _, err := fsutil.WriteOutput(ctx, sess.cfg.Output, data, sess.out); err != nil {
		return err
	}

	logger.Debug("rendered markdown",
		logging.FieldNodes, len(docs),
		logging.FieldBytes, len(data),
	)
	return nil
}

// documentPath picks the gjson path of the document in payload. An
// explicit path always wins; otherwise a payload whose root is itself a
// document is used whole.
func documentPath(payload []byte, configured string, explicit bool) string {
	if explicit {
		return configured
	}
	if gjson.GetBytes(payload, "type").String() == string(adf.TypeDoc) {
		return ""
	}
	return configured
}
