package core

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"grml-changelog/internal/ports"
	"grml-changelog/internal/types"
)

// Separator closes every section of a rendered changelog.
const Separator = "------------------------------------------------------------------------\n"

const listIndent = "\n     "

// RenderChangelog renders the full changelog document in memory. Tracked
// removals come first, then tracked changes with their commit logs, then
// the flat Debian package lists. Any failure from source aborts rendering
// and no partial document is returned.
func RenderChangelog(ctx context.Context, job types.JobIdentity, c types.Classification, source ports.ChangelogSourcePort) (string, error) {
	var b strings.Builder
	b.WriteString(Separator)
	b.WriteString("Generated by grml-changelog for job\n")
	b.WriteString(job.Name + " " + job.BuildID + "\n")
	b.WriteString(Separator)

	for _, name := range c.TrackedRemovals {
		b.WriteString("\n")
		b.WriteString(name + "\n")
		b.WriteString("Removed.\n")
		b.WriteString(Separator)
	}

	for _, change := range c.TrackedChanges {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		revisionRange := change.Range().String()
		log.Ctx(ctx).Info().
			Str("package", change.Package).
			Str("range", revisionRange).
			Msg("building git changelog")
		commits, err := source.Changelog(ctx, change.Package, revisionRange)
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		b.WriteString(change.Package + " " + revisionRange + "\n")
		b.WriteString("Changes:\n")
		b.WriteString(commits)
		if commits != "" && !strings.HasSuffix(commits, "\n") {
			b.WriteString("\n")
		}
		b.WriteString(Separator)
	}

	b.WriteString("\n")
	b.WriteString("Changes to Debian package list:\n")
	writeListing(&b, "Added", c.GenericAdded)
	writeListing(&b, "Changed", c.GenericChangedLines())
	writeListing(&b, "Removed", c.GenericRemoved)
	b.WriteString(Separator)
	return b.String(), nil
}

func writeListing(b *strings.Builder, label string, entries []string) {
	b.WriteString("  " + label + ":" + listIndent)
	b.WriteString(strings.TrimSpace(strings.Join(entries, listIndent)))
	b.WriteString("\n")
}
