package types

type VersionDirection string

const (
	VersionDirectionUpgrade   VersionDirection = "upgrade"
	VersionDirectionDowngrade VersionDirection = "downgrade"
	VersionDirectionNew       VersionDirection = "new"
	VersionDirectionUnknown   VersionDirection = "unknown"
)

// ChangelogSummary is the machine-readable companion of a rendered changelog.
type ChangelogSummary struct {
	Job     string           `yaml:"job,omitempty"`
	BuildID string           `yaml:"build_id,omitempty"`
	Prefix  string           `yaml:"package_prefix"`
	Tracked TrackedSummary   `yaml:"tracked"`
	Debian  DebianListChange `yaml:"debian"`
}

type TrackedSummary struct {
	Changed []TrackedEntry `yaml:"changed,omitempty"`
	Removed []string       `yaml:"removed,omitempty"`
}

type TrackedEntry struct {
	Package   string           `yaml:"package"`
	From      string           `yaml:"from,omitempty"`
	To        string           `yaml:"to"`
	Range     string           `yaml:"range"`
	Direction VersionDirection `yaml:"direction"`
}

type DebianListChange struct {
	Added   []string       `yaml:"added,omitempty"`
	Changed []ChangedEntry `yaml:"changed,omitempty"`
	Removed []string       `yaml:"removed,omitempty"`
}

type ChangedEntry struct {
	Package   string           `yaml:"package"`
	From      string           `yaml:"from"`
	To        string           `yaml:"to"`
	Direction VersionDirection `yaml:"direction"`
}
