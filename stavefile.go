//go:build stave

package main

import (
	"cmp"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const binary = "bin/jirascope"

// Default target runs build.
var Default = Build

var Aliases = map[string]any{
	"b": Build,
	"t": Test,
	"s": Smoke,
}

// Build compiles jirascope with version info when sources changed.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	fmt.Println("Building jirascope...")
	return sh.RunV("go", "build", "-ldflags", versionFlags(), "-o", binary, "./cmd/jirascope")
}

// Test runs the race-enabled suite through gotestsum.
func Test() error {
	jobs := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go", "tool", "gotestsum",
		"-f", "pkgname-and-test-fails",
		"--", "-race", "-p", jobs, "./...",
	)
}

// Smoke converts the repository's own Markdown through ADF and back.
func Smoke() error {
	st.Deps(Build)
	if err := sh.RunV(binary, "roundtrip", "--quiet", "--exclude", "_examples", "."); err != nil {
		return err
	}
	return sh.RunV(binary, "stats", "DESIGN.md")
}

// Clean removes bin/.
func Clean() error {
	return sh.Rm("bin")
}

func versionFlags() string {
	git := func(args ...string) string {
		out, err := sh.Output("git", args...)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(out)
	}
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		cmp.Or(git("describe", "--tags", "--always", "--dirty"), "dev"),
		cmp.Or(git("rev-parse", "--short", "HEAD"), "none"),
		time.Now().UTC().Format(time.RFC3339),
	)
}
