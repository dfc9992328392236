package core

import (
	"sort"
	"strings"

	"grml-changelog/internal/types"
)

// Classify diffs two package snapshots. Packages whose name starts with
// prefix are tracked: their changes are reported individually so a git
// history can be attached. Everything else lands in the generic lists.
// An empty prefix tracks every package.
func Classify(old types.PackageSnapshot, current types.PackageSnapshot, prefix string) types.Classification {
	result := types.Classification{}

	for _, name := range old.Names() {
		if current.Has(name) {
			continue
		}
		if isTracked(name, prefix) {
			result.TrackedRemovals = append(result.TrackedRemovals, name)
			continue
		}
		result.GenericRemoved = append(result.GenericRemoved, name)
	}

	for _, name := range current.Names() {
		newVersion, _ := current.Version(name)
		oldVersion, hasOld := old.Version(name)
		if hasOld && oldVersion == newVersion {
			continue
		}
		switch {
		case isTracked(name, prefix):
			result.TrackedChanges = append(result.TrackedChanges, types.TrackedChange{
				Package:    name,
				OldVersion: oldVersion,
				HasOld:     hasOld,
				NewVersion: newVersion,
			})
		case !hasOld:
			result.GenericAdded = append(result.GenericAdded, name)
		default:
			result.GenericChanged = append(result.GenericChanged, types.VersionChange{
				Package:    name,
				OldVersion: oldVersion,
				NewVersion: newVersion,
			})
		}
	}

	sort.Slice(result.GenericChanged, func(i, j int) bool {
		return result.GenericChanged[i].String() < result.GenericChanged[j].String()
	})
	return result
}

func isTracked(name string, prefix string) bool {
	return strings.HasPrefix(name, prefix)
}
