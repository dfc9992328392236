package core

import "grml-changelog/internal/types"

// Summarize builds the machine-readable summary of a classification.
func Summarize(job types.JobIdentity, prefix string, c types.Classification) types.ChangelogSummary {
	cache := newVersionCache()
	summary := types.ChangelogSummary{
		Job:     job.Name,
		BuildID: job.BuildID,
		Prefix:  prefix,
		Tracked: types.TrackedSummary{
			Removed: append([]string(nil), c.TrackedRemovals...),
		},
		Debian: types.DebianListChange{
			Added:   append([]string(nil), c.GenericAdded...),
			Removed: append([]string(nil), c.GenericRemoved...),
		},
	}
	for _, change := range c.TrackedChanges {
		direction := types.VersionDirectionNew
		if change.HasOld {
			direction = cache.direction(change.OldVersion, change.NewVersion)
		}
		summary.Tracked.Changed = append(summary.Tracked.Changed, types.TrackedEntry{
			Package:   change.Package,
			From:      change.OldVersion,
			To:        change.NewVersion,
			Range:     change.Range().String(),
			Direction: direction,
		})
	}
	for _, change := range c.GenericChanged {
		summary.Debian.Changed = append(summary.Debian.Changed, types.ChangedEntry{
			Package:   change.Package,
			From:      change.OldVersion,
			To:        change.NewVersion,
			Direction: cache.direction(change.OldVersion, change.NewVersion),
		})
	}
	return summary
}
