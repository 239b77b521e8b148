package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/jirascope/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		code   string
		want   string
		wantOK bool
	}{
		{name: "shebang bash", code: "#!/bin/bash\necho hello", want: "bash", wantOK: true},
		{name: "shebang sh", code: "#!/bin/sh\necho hello", want: "bash", wantOK: true},
		{name: "shebang python", code: "#!/usr/bin/env python3\nprint('hello')", want: "python", wantOK: true},
		{
			name:   "go package",
			code:   "package main\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}",
			want:   "go",
			wantOK: true,
		},
		{
			name:   "go snippet",
			code:   "func add(a, b int) int {\n\tsum := a + b\n\treturn sum\n}",
			want:   "go",
			wantOK: true,
		},
		{
			name:   "python function",
			code:   "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()",
			want:   "python",
			wantOK: true,
		},
		{
			name:   "javascript arrow",
			code:   "const x = () => { return 42; };\nconsole.log(x());",
			want:   "javascript",
			wantOK: true,
		},
		{name: "json object", code: `{"key": "value", "number": 123}`, want: "json", wantOK: true},
		{
			name:   "yaml mapping",
			code:   "key: value\nother: 123\nlist:\n  - item1\n  - item2",
			want:   "yaml",
			wantOK: true,
		},
		{
			name:   "rust main",
			code:   "fn main() {\n    println!(\"Hello, world!\");\n}",
			want:   "rust",
			wantOK: true,
		},
		{name: "sql select", code: "SELECT * FROM users WHERE id = 1;", want: "sql", wantOK: true},
		{
			name:   "html document",
			code:   "<!DOCTYPE html>\n<html>\n<head><title>Test</title></head>\n<body></body>\n</html>",
			want:   "html",
			wantOK: true,
		},
		{name: "prose is not code", code: "just some text without any code patterns"},
		{name: "empty", code: ""},
		{name: "whitespace only", code: "  \n\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := langdetect.Detect([]byte(tt.code))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Shell":      "bash",
		"C++":        "cpp",
		"C#":         "csharp",
		"Go":         "go",
		"TypeScript": "typescript",
	}

	for in, want := range tests {
		assert.Equal(t, want, langdetect.Normalize(in), in)
	}
}
