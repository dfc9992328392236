package core

import (
	debversion "github.com/knqyf263/go-deb-version"

	"grml-changelog/internal/types"
)

// versionCache memoizes parsed Debian versions; package lists repeat the
// same version strings across many rows.
type versionCache struct {
	deb map[string]debversion.Version
}

func newVersionCache() *versionCache {
	return &versionCache{deb: map[string]debversion.Version{}}
}

func (c *versionCache) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, err
	}
	c.deb[value] = parsed
	return parsed, nil
}

// direction classifies the move from oldVersion to newVersion using Debian
// version ordering. Unparseable or equal versions yield unknown.
func (c *versionCache) direction(oldVersion string, newVersion string) types.VersionDirection {
	v1, err := c.debVersion(oldVersion)
	if err != nil {
		return types.VersionDirectionUnknown
	}
	v2, err := c.debVersion(newVersion)
	if err != nil {
		return types.VersionDirectionUnknown
	}
	switch {
	case v2.GreaterThan(v1):
		return types.VersionDirectionUpgrade
	case v2.LessThan(v1):
		return types.VersionDirectionDowngrade
	default:
		return types.VersionDirectionUnknown
	}
}
