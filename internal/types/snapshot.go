package types

import "sort"

// PackageSnapshot maps installed package names to their versions as read
// from one dpkg list. A zero PackageSnapshot is an empty, usable snapshot.
type PackageSnapshot struct {
	versions map[string]string
}

func NewPackageSnapshot(versions map[string]string) PackageSnapshot {
	copied := make(map[string]string, len(versions))
	for name, version := range versions {
		copied[name] = version
	}
	return PackageSnapshot{versions: copied}
}

func (s PackageSnapshot) Version(name string) (string, bool) {
	version, ok := s.versions[name]
	return version, ok
}

func (s PackageSnapshot) Has(name string) bool {
	_, ok := s.versions[name]
	return ok
}

func (s PackageSnapshot) Len() int {
	return len(s.versions)
}

// Names returns the package names in lexicographic order.
func (s PackageSnapshot) Names() []string {
	names := make([]string, 0, len(s.versions))
	for name := range s.versions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
