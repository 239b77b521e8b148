package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/yaklabco/jirascope/internal/cli"
	"github.com/yaklabco/jirascope/pkg/config"
)

const helloDocument = `{"version":1,"type":"doc","content":[` +
	`{"type":"paragraph","content":[{"type":"text","text":"Hello, world!"}]}]}`

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIntegration_MD2ADF(t *testing.T) {
	t.Parallel()

	t.Run("stdin to stdout", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "Hello, **world**!\n", "md2adf", "--compact")
		require.NoError(t, err)

		assert.Equal(t, 1, len(stdout)-len(trimNewline(stdout)), "compact output is one line")
		assert.Equal(t, int64(1), gjson.Get(stdout, "version").Int())
		assert.Equal(t, "doc", gjson.Get(stdout, "type").String())
		assert.Equal(t, "Hello, ", gjson.Get(stdout, "content.0.content.0.text").String())
		assert.Equal(t, "strong", gjson.Get(stdout, "content.0.content.1.marks.0.type").String())
	})

	t.Run("file to file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, filepath.Join(dir, "notes.md"), "# Title\n")
		out := filepath.Join(dir, "notes.json")

		stdout, _, err := execute(t, "", "md2adf", in, "-o", out)
		require.NoError(t, err)
		assert.Empty(t, stdout)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "heading", gjson.GetBytes(data, "content.0.type").String())
		assert.Equal(t, int64(1), gjson.GetBytes(data, "content.0.attrs.level").Int())
		assert.Contains(t, string(data), "\n  \"", "indented by default")
	})

	t.Run("issue payload", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "Crash on save\n", "md2adf", "--issue")
		require.NoError(t, err)
		assert.Equal(t, "doc", gjson.Get(stdout, "fields.description.type").String())
		assert.Equal(t, "Crash on save", gjson.Get(stdout, "fields.description.content.0.content.0.text").String())
	})

	t.Run("placeholder is reported", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, err := execute(t, "![logo](logo.png)\n", "md2adf")
		require.NoError(t, err)
		assert.Contains(t, stdout, "-!- unimplemented markdown node -!-")
		assert.Contains(t, stderr, "Image")
	})

	t.Run("strict fails", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "![logo](logo.png)\n", "md2adf", "--strict")
		require.Error(t, err)
		assert.Equal(t, cli.ExitConversionError, cli.ExitCodeFromError(err))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "", "md2adf", filepath.Join(t.TempDir(), "nope.md"))
		require.Error(t, err)
		assert.Equal(t, cli.ExitIOError, cli.ExitCodeFromError(err))
	})
}

func TestIntegration_ADF2MD(t *testing.T) {
	t.Parallel()

	issue := `{"key":"PROJ-1","fields":{"description":` + helloDocument + `,"environment":null}}`
	comments := `{"comments":[{"body":` + helloDocument + `},{"body":` + helloDocument + `}]}`

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "bare document", stdin: helloDocument, want: "Hello, world!\n"},
		{name: "issue description", stdin: issue, want: "Hello, world!\n"},
		{name: "null field", stdin: issue, args: []string{"--path", "fields.environment"}, want: ""},
		{
			name:  "all comments",
			stdin: comments,
			args:  []string{"--all", "--path", "comments.#.body"},
			want:  "Hello, world!\n\nHello, world!\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, tt.stdin, append([]string{"adf2md"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}

	t.Run("invalid payload", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, `{"fields":`, "adf2md")
		require.Error(t, err)
		assert.Equal(t, cli.ExitConversionError, cli.ExitCodeFromError(err))
	})

	t.Run("missing field", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, issue, "adf2md", "--path", "fields.nope")
		require.Error(t, err)
		assert.Equal(t, cli.ExitConversionError, cli.ExitCodeFromError(err))
	})
}

func TestIntegration_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "stable.md"), "Hello, world!\n")
	writeFile(t, filepath.Join(dir, "docs", "merge.md"), "one\n\ntwo\n")
	writeFile(t, filepath.Join(dir, ".hidden", "skip.md"), "one\n\ntwo\n")

	t.Run("report", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "", "roundtrip", dir)
		require.NoError(t, err)

		assert.Contains(t, stdout, "merge.md")
		assert.Contains(t, stdout, "unstable")
		assert.NotContains(t, stdout, "stable.md (identical)")
		assert.NotContains(t, stdout, "skip.md")
		assert.Contains(t, stdout, "Round trip unstable")
	})

	t.Run("check fails on unstable files", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "", "roundtrip", "--check", "--quiet", dir)
		require.ErrorIs(t, err, cli.ErrRoundTripFailed)
		assert.Equal(t, cli.ExitRoundTripFailed, cli.ExitCodeFromError(err))
		assert.Contains(t, stdout, "1 of 2 files unstable")
	})

	t.Run("block spacing keeps paragraphs apart", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "", "roundtrip", "--check", "--quiet", "--block-spacing", dir)
		require.NoError(t, err)
		assert.Contains(t, stdout, "All files stable")
	})

	t.Run("exclude", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "", "roundtrip", "--check", "--quiet", "--exclude", "docs", dir)
		require.NoError(t, err)
		assert.Contains(t, stdout, "All files stable (1 file checked)")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "", "roundtrip", "--format", "json", dir)
		require.NoError(t, err)
		assert.Equal(t, int64(2), gjson.Get(stdout, "summary.filesChecked").Int())
		assert.Equal(t, int64(1), gjson.Get(stdout, "summary.filesUnstable").Int())
		assert.Equal(t, int64(2), gjson.Get(stdout, "files.#").Int())
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "", "roundtrip", "--format", "sarif", dir)
		require.Error(t, err)
		assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
	})

	t.Run("all includes identical files", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "", "roundtrip", "--all", dir)
		require.NoError(t, err)
		assert.Contains(t, stdout, "stable.md (identical)")
	})
}

func TestIntegration_Stats(t *testing.T) {
	t.Parallel()

	t.Run("markdown", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, filepath.Join(t.TempDir(), "list.md"), "# Title\n\n* one\n* two\n")

		stdout, _, err := execute(t, "", "stats", path)
		require.NoError(t, err)
		for _, want := range []string{"NODE", "COUNT", "heading", "bulletList", "listItem", "text", "total"} {
			assert.Contains(t, stdout, want)
		}
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, helloDocument, "stats")
		require.NoError(t, err)
		assert.Contains(t, stdout, "paragraph")
		assert.NotContains(t, stdout, "heading")
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "", "stats")
		require.NoError(t, err)
		assert.Equal(t, "empty document\n", stdout)
	})
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".jirascope.yml")

	_, _, err := execute(t, "", "init", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig(), cfg)

	_, _, err = execute(t, "", "init", "-o", path)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))

	_, _, err = execute(t, "", "init", "-o", path, "--force", "--format", "json")
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, gjson.ValidBytes(data))
}

func TestIntegration_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, filepath.Join(dir, "jirascope.yml"), "strict: true\njson:\n  indent: false\n")

	_, _, err := execute(t, "![logo](logo.png)\n", "--config", cfgPath, "md2adf")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConversionError, cli.ExitCodeFromError(err))

	stdout, _, err := execute(t, "plain\n", "--config", cfgPath, "md2adf")
	require.NoError(t, err)
	assert.Equal(t, 1, len(stdout)-len(trimNewline(stdout)))

	stdout, _, err = execute(t, "![logo](logo.png)\n", "--config", cfgPath, "md2adf", "--strict=false")
	require.NoError(t, err, "an explicit false flag overrides the file")
	assert.Contains(t, stdout, "unimplemented")

	_, _, err = execute(t, "", "--config", filepath.Join(dir, "missing.yml"), "md2adf")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeFromError(err))

	_, _, err = execute(t, "x\n", "--color", "sometimes", "md2adf")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeFromError(err))
}

// trimNewline drops every newline so a test can count them.
func trimNewline(s string) string {
	out := make([]byte, 0, len(s))
	for i := range len(s) {
		if s[i] != '\n' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
