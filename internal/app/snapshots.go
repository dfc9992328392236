package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"grml-changelog/internal/core"
	"grml-changelog/internal/shared"
	"grml-changelog/internal/types"
)

// classify reads both package lists and diffs them. The new list is
// required. A missing or unreadable old list is logged and treated as
// empty, so a first build reports every package as added.
func (s Service) classify(ctx context.Context, workspace string, newList string, oldList string, prefix string) (types.Classification, error) {
	newPath, err := newListPath(workspace, newList)
	if err != nil {
		return types.Classification{}, err
	}
	current, err := s.PackageLists.ReadPackageList(ctx, newPath)
	if err != nil {
		return types.Classification{}, err
	}

	oldPath := shared.ResolvePath(workspace, defaultString(oldList, DefaultOldListName))
	old, err := s.PackageLists.ReadPackageList(ctx, oldPath)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("path", oldPath).Msg("parsing old package list failed, treating it as empty")
		old = types.PackageSnapshot{}
	}

	classification := core.Classify(old, current, prefix)
	if prefix == "" && len(classification.TrackedChanges) > 0 {
		log.Ctx(ctx).Warn().
			Int("tracked", len(classification.TrackedChanges)).
			Msg("package prefix is empty, every package is tracked and needs a git mirror")
	}
	return classification, nil
}

func newListPath(workspace string, newList string) (string, error) {
	if path := strings.TrimSpace(newList); path != "" {
		return shared.ResolvePath(workspace, path), nil
	}
	if workspace == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("new package list path or workspace is required")
	}
	return filepath.Join(append([]string{workspace}, DefaultNewListPath...)...), nil
}

func defaultString(value string, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
