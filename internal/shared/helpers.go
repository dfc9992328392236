// Package shared provides small helpers used by more than one package in
// the grml-changelog codebase.
package shared

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CommandLine renders a program and its arguments for messages and logs.
func CommandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return err
	}
	return fmt.Errorf("%s: %w", trimmed, err)
}

// ResolvePath joins path onto base unless it is already absolute.
func ResolvePath(base string, path string) string {
	if path == "" || base == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
