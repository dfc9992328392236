package ports

import "grml-changelog/internal/types"

// ChangelogOutput is everything one run writes. An empty SummaryPath skips
// the summary.
type ChangelogOutput struct {
	ChangelogPath string
	Changelog     string
	SummaryPath   string
	Summary       types.ChangelogSummary
}

type ChangelogWriterPort interface {
	WriteChangelog(output ChangelogOutput) error
}
