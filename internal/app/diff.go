package app

import (
	"context"

	"grml-changelog/internal/core"
)

// Diff classifies the package lists without touching any git mirror.
func (s Service) Diff(ctx context.Context, req DiffRequest) (DiffResult, error) {
	classification, err := s.classify(ctx, req.Workspace, req.NewList, req.OldList, req.PackagePrefix)
	if err != nil {
		return DiffResult{}, err
	}
	return DiffResult{
		Classification: classification,
		Summary:        core.Summarize(req.Job, req.PackagePrefix, classification),
	}, nil
}
