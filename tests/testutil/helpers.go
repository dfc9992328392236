// Package testutil provides shared test helpers used across integration
// and e2e test packages.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// WriteFile writes content below dir, creating parent directories.
func WriteFile(t *testing.T, dir string, rel string, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// DpkgList renders rows in `dpkg -l` layout; each row is name, version.
func DpkgList(rows ...[2]string) string {
	var b strings.Builder
	b.WriteString("||/ Name Version Architecture Description\n")
	b.WriteString("+++-====-=======-============-===========\n")
	for _, row := range rows {
		b.WriteString("ii  " + row[0] + "  " + row[1] + "  all  test package\n")
	}
	return b.String()
}
