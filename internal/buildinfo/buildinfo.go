package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the one-line form printed by the version command.
func String() string {
	return fmt.Sprintf("station %s (commit %s, built %s)", Version, Commit, Date)
}

// LogAttrs returns the build fields as slog key/value pairs.
func LogAttrs() []any {
	return []any{"version", Version, "commit", Commit, "date", Date}
}
