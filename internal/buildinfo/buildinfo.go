// Package buildinfo exposes build-time metadata for the abacus binaries.
// Every value can be overridden with -ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/abacus/internal/buildinfo.Version=1.2.3' -X 'github.com/flarebyte/abacus/internal/buildinfo.OutputFormat=json'"
package buildinfo

import "strings"

var (
	// Version is the semantic version or custom string.
	Version = "dev"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional).
	Date = ""
	// BuiltBy is an optional builder identifier.
	BuiltBy = ""
	// OutputFormat selects the structured echo printed by `abacus math` and
	// `abacus generate` when --output is not given: text, json, yaml or cue.
	OutputFormat = "text"
)

// Summary returns a concise single-line version string.
func Summary() string {
	v := Version
	if v == "" {
		v = "dev"
	}

	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if Date != "" {
		parts = append(parts, "date="+Date)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
