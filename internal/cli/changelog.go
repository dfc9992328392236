package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"grml-changelog/internal/app"
	"grml-changelog/internal/types"
)

type listOptions struct {
	Workspace     string
	NewList       string
	OldList       string
	PackagePrefix string
	JobName       string
	BuildID       string
}

type changelogOptions struct {
	listOptions
	Output         string
	GitURLBase     string
	CommandTimeout time.Duration
	Jobs           int
	Summary        string
}

func addListFlags(cmd *cobra.Command, opts *listOptions) {
	cmd.Flags().StringVar(&opts.Workspace, "workspace", ".", "Build workspace directory")
	cmd.Flags().StringVar(&opts.NewList, "new-list", "", "Package list of this build (default <workspace>/grml_logs/fai/dpkg.list)")
	cmd.Flags().StringVar(&opts.OldList, "old-list", app.DefaultOldListName, "Package list of the previous build")
	cmd.Flags().StringVar(&opts.PackagePrefix, "package-prefix", "", "Name prefix of packages whose git history is tracked")
	cmd.Flags().StringVar(&opts.JobName, "job-name", "", "Job name stamped into the header")
	cmd.Flags().StringVar(&opts.BuildID, "build-id", "", "Build id stamped into the header")

	_ = viper.BindPFlag("workspace", cmd.Flags().Lookup("workspace"))
	_ = viper.BindPFlag("new_list", cmd.Flags().Lookup("new-list"))
	_ = viper.BindPFlag("old_list", cmd.Flags().Lookup("old-list"))
	_ = viper.BindPFlag("package_prefix", cmd.Flags().Lookup("package-prefix"))
	_ = viper.BindPFlag("job_name", cmd.Flags().Lookup("job-name"))
	_ = viper.BindPFlag("build_id", cmd.Flags().Lookup("build-id"))
}

func resolveListOptions(cmd *cobra.Command, opts listOptions) listOptions {
	return listOptions{
		Workspace:     resolveString(cmd, opts.Workspace, "workspace", "workspace"),
		NewList:       resolveString(cmd, opts.NewList, "new_list", "new-list"),
		OldList:       resolveString(cmd, opts.OldList, "old_list", "old-list"),
		PackagePrefix: resolveString(cmd, opts.PackagePrefix, "package_prefix", "package-prefix"),
		JobName:       resolveString(cmd, opts.JobName, "job_name", "job-name"),
		BuildID:       resolveString(cmd, opts.BuildID, "build_id", "build-id"),
	}
}

func newChangelogCommand() *cobra.Command {
	opts := changelogOptions{}
	cmd := &cobra.Command{
		Use:   "changelog",
		Short: "Write a changelog from two package lists and per-package git history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChangelog(cmd.Context(), cmd, opts)
		},
	}
	addListFlags(cmd, &opts.listOptions)
	cmd.Flags().StringVar(&opts.Output, "output", app.DefaultOutputFilename, "Changelog file, relative to the workspace")
	cmd.Flags().StringVar(&opts.GitURLBase, "git-url-base", "", "Base URL of the per-package git repositories")
	cmd.Flags().DurationVar(&opts.CommandTimeout, "command-timeout", 10*time.Minute, "Timeout for each git invocation (0 disables)")
	cmd.Flags().IntVar(&opts.Jobs, "jobs", 1, "Number of git mirrors synced in parallel")
	cmd.Flags().StringVar(&opts.Summary, "summary", "", "Optional YAML summary file, relative to the workspace")

	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("git_url_base", cmd.Flags().Lookup("git-url-base"))
	_ = viper.BindPFlag("command_timeout", cmd.Flags().Lookup("command-timeout"))
	_ = viper.BindPFlag("jobs", cmd.Flags().Lookup("jobs"))
	_ = viper.BindPFlag("summary", cmd.Flags().Lookup("summary"))
	return cmd
}

func runChangelog(ctx context.Context, cmd *cobra.Command, opts changelogOptions) error {
	lists := resolveListOptions(cmd, opts.listOptions)
	service := newAppService()
	result, err := service.Changelog(ctx, app.ChangelogRequest{
		Workspace:      lists.Workspace,
		NewList:        lists.NewList,
		OldList:        lists.OldList,
		Output:         resolveString(cmd, opts.Output, "output", "output"),
		PackagePrefix:  lists.PackagePrefix,
		GitURLBase:     resolveString(cmd, opts.GitURLBase, "git_url_base", "git-url-base"),
		Job:            types.JobIdentity{Name: lists.JobName, BuildID: lists.BuildID},
		CommandTimeout: resolveDuration(cmd, opts.CommandTimeout, "command_timeout", "command-timeout"),
		Jobs:           resolveInt(cmd, opts.Jobs, "jobs", "jobs"),
		SummaryPath:    resolveString(cmd, opts.Summary, "summary", "summary"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote changelog: %s (%d tracked, %d added, %d changed, %d removed)\n",
		result.OutputPath,
		result.TrackedChanges+result.TrackedRemovals,
		result.GenericAdded,
		result.GenericChanged,
		result.GenericRemoved,
	)
	return nil
}
