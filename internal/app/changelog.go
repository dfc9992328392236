package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"grml-changelog/internal/core"
	"grml-changelog/internal/ports"
	"grml-changelog/internal/shared"
	"grml-changelog/internal/types"
)

// Changelog diffs the package lists of two builds, renders the changelog
// and writes it into the workspace. Nothing is written unless every step
// succeeded.
func (s Service) Changelog(ctx context.Context, req ChangelogRequest) (ChangelogResult, error) {
	workspace := strings.TrimSpace(req.Workspace)
	if workspace == "" {
		return ChangelogResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace is required")
	}
	if req.Jobs < 0 {
		return ChangelogResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("jobs must not be negative: %d", req.Jobs))
	}

	classification, err := s.classify(ctx, workspace, req.NewList, req.OldList, req.PackagePrefix)
	if err != nil {
		return ChangelogResult{}, err
	}
	if len(classification.TrackedChanges) > 0 && strings.TrimSpace(req.GitURLBase) == "" {
		return ChangelogResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("git url base is required to build changelogs for tracked packages")
	}

	mirrorDir := filepath.Join(workspace, DefaultMirrorDirName)
	if err := os.MkdirAll(mirrorDir, 0o755); err != nil {
		return ChangelogResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create mirror directory").
			WithCause(err)
	}
	source := newSyncOnceSource(s.NewMirror(s.Runner, strings.TrimSpace(req.GitURLBase), mirrorDir, req.CommandTimeout))
	if req.Jobs > 1 && len(classification.TrackedChanges) > 1 {
		if err := source.prefetch(ctx, classification.TrackedChanges, req.Jobs); err != nil {
			return ChangelogResult{}, err
		}
	}

	content, err := core.RenderChangelog(ctx, req.Job, classification, source)
	if err != nil {
		return ChangelogResult{}, err
	}

	output := ports.ChangelogOutput{
		ChangelogPath: shared.ResolvePath(workspace, defaultString(req.Output, DefaultOutputFilename)),
		Changelog:     content,
	}
	if summaryPath := strings.TrimSpace(req.SummaryPath); summaryPath != "" {
		output.SummaryPath = shared.ResolvePath(workspace, summaryPath)
		output.Summary = core.Summarize(req.Job, req.PackagePrefix, classification)
	}
	log.Ctx(ctx).Info().
		Str("path", output.ChangelogPath).
		Str("summary", output.SummaryPath).
		Msg("writing changelog")
	if err := s.ChangelogWriter.WriteChangelog(output); err != nil {
		return ChangelogResult{}, err
	}

	result := ChangelogResult{
		OutputPath:      output.ChangelogPath,
		SummaryPath:     output.SummaryPath,
		TrackedChanges:  len(classification.TrackedChanges),
		TrackedRemovals: len(classification.TrackedRemovals),
		GenericAdded:    len(classification.GenericAdded),
		GenericChanged:  len(classification.GenericChanged),
		GenericRemoved:  len(classification.GenericRemoved),
	}
	return result, nil
}

// syncOnceSource syncs each mirror at most once per run before querying
// its log, whether the sync happened during prefetch or on first use.
type syncOnceSource struct {
	mirror ports.MirrorPort

	mu     sync.Mutex
	synced map[string]struct{}
}

func newSyncOnceSource(mirror ports.MirrorPort) *syncOnceSource {
	return &syncOnceSource{mirror: mirror, synced: map[string]struct{}{}}
}

func (s *syncOnceSource) Changelog(ctx context.Context, packageName string, revisionRange string) (string, error) {
	if err := s.sync(ctx, packageName); err != nil {
		return "", err
	}
	return s.mirror.Log(ctx, packageName, revisionRange)
}

func (s *syncOnceSource) sync(ctx context.Context, packageName string) error {
	s.mu.Lock()
	_, done := s.synced[packageName]
	s.mu.Unlock()
	if done {
		return nil
	}
	if err := s.mirror.Sync(ctx, packageName); err != nil {
		return err
	}
	s.mu.Lock()
	s.synced[packageName] = struct{}{}
	s.mu.Unlock()
	return nil
}

// prefetch syncs the mirrors of all tracked changes with at most jobs
// syncs in flight. The first failure cancels the remaining syncs.
func (s *syncOnceSource) prefetch(ctx context.Context, changes []types.TrackedChange, jobs int) error {
	log.Ctx(ctx).Info().Int("mirrors", len(changes)).Int("jobs", jobs).Msg("prefetching git mirrors")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, change := range changes {
		name := change.Package
		g.Go(func() error {
			return s.sync(gctx, name)
		})
	}
	return g.Wait()
}

var _ ports.ChangelogSourcePort = (*syncOnceSource)(nil)
