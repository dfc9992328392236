package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, rel string, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// dpkgList renders rows in `dpkg -l` layout; each row is name, version.
func dpkgList(rows ...[2]string) string {
	var b strings.Builder
	b.WriteString("||/ Name Version Architecture Description\n")
	b.WriteString("+++-====-=======-============-===========\n")
	for _, row := range rows {
		b.WriteString("ii  " + row[0] + "  " + row[1] + "  all  test package\n")
	}
	return b.String()
}
