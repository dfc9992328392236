package app

import (
	"time"

	"grml-changelog/internal/types"
)

const (
	DefaultOutputFilename = "changelog.txt"
	DefaultOldListName    = "dpkg.list.old"
	DefaultMirrorDirName  = "packages"
)

// DefaultNewListPath is where grml-live leaves the package list of the
// image it just built, relative to the workspace.
var DefaultNewListPath = []string{"grml_logs", "fai", "dpkg.list"}

type ChangelogRequest struct {
	Workspace      string
	NewList        string
	OldList        string
	Output         string
	PackagePrefix  string
	GitURLBase     string
	Job            types.JobIdentity
	CommandTimeout time.Duration
	Jobs           int
	SummaryPath    string
}

type ChangelogResult struct {
	OutputPath      string
	SummaryPath     string
	TrackedChanges  int
	TrackedRemovals int
	GenericAdded    int
	GenericChanged  int
	GenericRemoved  int
}

type DiffRequest struct {
	Workspace     string
	NewList       string
	OldList       string
	PackagePrefix string
	Job           types.JobIdentity
}

type DiffResult struct {
	Classification types.Classification
	Summary        types.ChangelogSummary
}
