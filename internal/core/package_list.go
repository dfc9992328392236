package core

import (
	"bufio"
	"io"
	"regexp"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"grml-changelog/internal/types"
)

// packageRowPattern matches an installed row of `dpkg -l` output:
// state marker "ii", package name, version, then optional description.
var packageRowPattern = regexp.MustCompile(`^ii\s+(\S+)\s+(\S+)(?:\s|$)`)

const maxPackageListLine = 1024 * 1024

// ParsePackageList reads a dpkg list and returns the installed packages.
// Rows that are not installed-package rows are skipped. A package listed
// twice keeps its last version.
func ParsePackageList(r io.Reader) (types.PackageSnapshot, error) {
	versions := map[string]string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxPackageListLine)
	for scanner.Scan() {
		name, version, ok := parsePackageRow(scanner.Text())
		if !ok {
			continue
		}
		versions[name] = version
	}
	if err := scanner.Err(); err != nil {
		return types.PackageSnapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read package list").
			WithCause(err)
	}
	return types.NewPackageSnapshot(versions), nil
}

func parsePackageRow(line string) (string, string, bool) {
	match := packageRowPattern.FindStringSubmatch(line)
	if match == nil {
		return "", "", false
	}
	return match[1], match[2], true
}
