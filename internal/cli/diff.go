package cli

import (
	"context"

	"github.com/spf13/cobra"

	"grml-changelog/internal/adapters"
	"grml-changelog/internal/app"
	"grml-changelog/internal/types"
)

func newDiffCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Classify package list changes as YAML without fetching git history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiff(cmd.Context(), cmd, opts)
		},
	}
	addListFlags(cmd, &opts)
	return cmd
}

func runDiff(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	lists := resolveListOptions(cmd, opts)
	service := newAppService()
	result, err := service.Diff(ctx, app.DiffRequest{
		Workspace:     lists.Workspace,
		NewList:       lists.NewList,
		OldList:       lists.OldList,
		PackagePrefix: lists.PackagePrefix,
		Job:           types.JobIdentity{Name: lists.JobName, BuildID: lists.BuildID},
	})
	if err != nil {
		return err
	}
	return adapters.EncodeSummary(cmd.OutOrStdout(), result.Summary)
}
