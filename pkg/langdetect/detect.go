// Package langdetect guesses the language of a code block that was written
// without an info string, so the resulting codeBlock node can carry a
// language attribute Jira uses for highlighting.
package langdetect

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// candidates limits the classifier to languages Jira can highlight.
//
//nolint:gochecknoglobals // read-only lookup table
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript", "Java", "Kotlin",
	"Ruby", "Rust", "C", "C++", "C#", "SQL", "JSON", "YAML", "XML",
	"HTML", "CSS", "Dockerfile", "PHP",
}

// jiraNames maps go-enry language names to the identifiers Jira's code
// block macro accepts where the two differ.
//
//nolint:gochecknoglobals // read-only lookup table
var jiraNames = map[string]string{
	"Shell":      "bash",
	"C++":        "cpp",
	"C#":         "csharp",
	"Dockerfile": "dockerfile",
}

type rule struct {
	lang  string
	match func(code []byte) bool
}

//nolint:gochecknoglobals // read-only lookup tables
var (
	sqlStatement = regexp.MustCompile(`(?i)^\s*(select|insert\s+into|update|delete\s+from|create\s+(table|index|view))\s`)
	rustItem     = regexp.MustCompile(`\bfn\s+\w+\s*\(|\blet\s+mut\s|println!\(`)
	yamlKey      = regexp.MustCompile(`(?m)^\s*[\w.-]+:\s+\S|^\s*-\s+\w`)

	// rules run in order; the first match wins.
	rules = []rule{
		{"go", func(code []byte) bool {
			return bytes.HasPrefix(bytes.TrimSpace(code), []byte("package ")) ||
				bytes.Contains(code, []byte(" := ")) && bytes.Contains(code, []byte("func "))
		}},
		{"json", func(code []byte) bool {
			trimmed := bytes.TrimSpace(code)
			return len(trimmed) > 1 && (trimmed[0] == '{' || trimmed[0] == '[') &&
				bytes.Contains(trimmed, []byte(`":`))
		}},
		{"html", func(code []byte) bool {
			lower := bytes.ToLower(code)
			return bytes.Contains(lower, []byte("<!doctype html")) || bytes.Contains(lower, []byte("<html"))
		}},
		{"sql", sqlStatement.Match},
		{"rust", rustItem.Match},
		{"python", func(code []byte) bool {
			s := string(code)
			return strings.Contains(s, "def ") && strings.Contains(s, "):") ||
				strings.Contains(s, "__name__")
		}},
		{"javascript", func(code []byte) bool {
			s := string(code)
			return strings.Contains(s, "console.log(") ||
				strings.Contains(s, "=>") && (strings.Contains(s, "const ") || strings.Contains(s, "let "))
		}},
		{"yaml", func(code []byte) bool {
			return len(yamlKey.FindAll(code, -1)) >= 2 && !bytes.ContainsAny(code, "{;(")
		}},
	}
)

// Detect returns a Jira language identifier for code. The boolean is false
// when no strategy produced a confident answer.
//
// Strategies are tried in order: shebang, editor modeline, a small set of
// unambiguous patterns, then the go-enry Bayesian classifier.
func Detect(code []byte) (string, bool) {
	if len(bytes.TrimSpace(code)) == 0 {
		return "", false
	}

	if lang, safe := enry.GetLanguageByShebang(code); safe {
		return Normalize(lang), true
	}

	if lang, safe := enry.GetLanguageByModeline(code); safe {
		return Normalize(lang), true
	}

	for _, r := range rules {
		if r.match(code) {
			return r.lang, true
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(code, candidates); safe && lang != "" {
		return Normalize(lang), true
	}

	return "", false
}

// Normalize converts a go-enry language name to the identifier Jira uses.
func Normalize(lang string) string {
	if name, ok := jiraNames[lang]; ok {
		return name
	}
	return strings.ToLower(lang)
}
