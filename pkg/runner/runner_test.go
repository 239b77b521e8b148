package runner_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jirascope/pkg/convert"
	"github.com/yaklabco/jirascope/pkg/runner"
)

func TestNew(t *testing.T) {
	t.Parallel()

	conv := convert.New(convert.DefaultOptions())
	assert.Same(t, conv, runner.New(conv).Converter)
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tree(t, dir, "Hello, world!\n", "a.md")
	tree(t, dir, "- one\n- two\n", "b.md")
	tree(t, dir, "one\n\ntwo\n", "c.md")
	tree(t, dir, "![logo](logo.png)\n", "d.md")

	r := runner.New(convert.New(convert.DefaultOptions()))
	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.md", "b.md", "c.md", "d.md"}, rel(t, dir, paths(result)))

	stats := result.Stats
	assert.Equal(t, 4, stats.FilesDiscovered)
	assert.Equal(t, 4, stats.FilesProcessed)
	assert.Equal(t, 0, stats.FilesErrored)
	assert.Equal(t, 1, stats.FilesUnstable, "paragraphs merge without block spacing")
	assert.Equal(t, 3, stats.FilesStable)
	assert.Equal(t, 3, stats.FilesChanged)
	assert.Equal(t, 1, stats.WarningsTotal)
	assert.Equal(t, 1, stats.WarningsByKind["Image"])

	assert.True(t, result.HasFailures())
	assert.True(t, result.HasChanges())
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	r := runner.New(convert.New(convert.DefaultOptions()))
	result, err := r.Run(context.Background(), runner.Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasFailures())
	assert.False(t, result.HasChanges())
}

func TestRunner_RunFiles_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tree(t, dir, "<div>\nraw\n</div>\n", "html.md")

	r := runner.New(convert.New(convert.Options{Strict: true}))
	files := []string{filepath.Join(dir, "html.md"), filepath.Join(dir, "missing.md")}

	result, err := r.RunFiles(context.Background(), files, 0)
	require.NoError(t, err)
	require.Len(t, result.Files, 2)
	assert.Equal(t, 2, result.Stats.FilesErrored)
	assert.Nil(t, result.Files[0].Report)
	require.Error(t, result.Files[0].Error)
	assert.True(t, result.HasFailures())
}

func TestRunner_SerialVsParallelConsistency(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for i := range 20 {
		tree(t, dir, fmt.Sprintf("# Doc %d\n* item **%d**\n", i, i), fmt.Sprintf("doc%02d.md", i))
	}

	r := runner.New(convert.New(convert.DefaultOptions()))
	ctx := context.Background()

	serial, err := r.Run(ctx, runner.Options{WorkingDir: dir, Jobs: 1})
	require.NoError(t, err)
	parallel, err := r.Run(ctx, runner.Options{WorkingDir: dir, Jobs: 8})
	require.NoError(t, err)

	assert.Equal(t, paths(serial), paths(parallel))
	assert.Equal(t, serial.Stats, parallel.Stats)
	for i := range serial.Files {
		assert.Equal(t, serial.Files[i].Report.Rendered, parallel.Files[i].Report.Rendered)
	}
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tree(t, dir, "x\n", "a.md", "b.md")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner.New(convert.New(convert.DefaultOptions()))
	_, err := r.RunFiles(ctx, []string{filepath.Join(dir, "a.md"), filepath.Join(dir, "b.md")}, 2)
	require.ErrorIs(t, err, context.Canceled)
}

func paths(result *runner.Result) []string {
	out := make([]string, 0, len(result.Files))
	for _, f := range result.Files {
		out = append(out, f.Path)
	}
	return out
}
