package ports

import "context"

// MirrorPort keeps one local git mirror per tracked package.
type MirrorPort interface {
	// Sync clones the mirror when it is missing, re-points its remote and
	// fetches with pruning.
	Sync(ctx context.Context, packageName string) error

	// Log returns `git log --oneline` output for revisionRange, verbatim.
	Log(ctx context.Context, packageName string, revisionRange string) (string, error)
}

// ChangelogSourcePort supplies the commit log for one tracked package change.
type ChangelogSourcePort interface {
	Changelog(ctx context.Context, packageName string, revisionRange string) (string, error)
}
