package types

import "fmt"

type JobIdentity struct {
	Name    string
	BuildID string
}

// VersionRange is the git revision range between two package versions.
// Versions map to tags by prefixing them with "v".
type VersionRange struct {
	Old    string
	HasOld bool
	New    string
}

func (r VersionRange) String() string {
	if !r.HasOld {
		return "v" + r.New
	}
	return fmt.Sprintf("v%s..v%s", r.Old, r.New)
}

type TrackedChange struct {
	Package    string
	OldVersion string
	HasOld     bool
	NewVersion string
}

func (c TrackedChange) Range() VersionRange {
	return VersionRange{Old: c.OldVersion, HasOld: c.HasOld, New: c.NewVersion}
}

type VersionChange struct {
	Package    string
	OldVersion string
	NewVersion string
}

func (c VersionChange) String() string {
	return fmt.Sprintf("%s %s -> %s", c.Package, c.OldVersion, c.NewVersion)
}

// Classification is the outcome of diffing two package snapshots. Tracked
// entries are rendered from git history; generic entries are listed flat.
// All slices are sorted and free of duplicates.
type Classification struct {
	TrackedChanges  []TrackedChange
	TrackedRemovals []string
	GenericAdded    []string
	GenericChanged  []VersionChange
	GenericRemoved  []string
}

func (c Classification) GenericChangedLines() []string {
	lines := make([]string, 0, len(c.GenericChanged))
	for _, change := range c.GenericChanged {
		lines = append(lines, change.String())
	}
	return lines
}

func (c Classification) Empty() bool {
	return len(c.TrackedChanges) == 0 &&
		len(c.TrackedRemovals) == 0 &&
		len(c.GenericAdded) == 0 &&
		len(c.GenericChanged) == 0 &&
		len(c.GenericRemoved) == 0
}
