package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/discuss/jobs"
)

type jobFunc func(context.Context, jobs.Config) error

func JobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "job",
		Aliases: []string{"jobs"},
		Short:   "Run and inspect background jobs",
		Example: heredoc.Doc(`
			$ discuss job list
			$ discuss job run reconcile_counters
		`),
	}

	cmd.AddCommand(
		listJobsCmd(),
		runJobCmd(),
	)

	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")

	return cmd
}

func listJobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the jobs configured for this deployment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			types := make([]string, 0, len(cfg.Jobs))
			for t := range cfg.Jobs {
				types = append(types, string(t))
			}
			sort.Strings(types)

			if f := format(cmd); f != formatTable {
				return printStructured(cmd.OutOrStdout(), f, cfg.Jobs)
			}
			table := newTable(cmd.OutOrStdout(), "JOB", "ENABLED", "INTERVAL")
			for _, t := range types {
				job := cfg.Jobs[jobs.Type(t)]
				table.Append([]string{t, strconv.FormatBool(job.Enabled), job.Interval})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", formatTable, "Output format: table, json or yaml")
	return cmd
}

func runJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <job>",
		Short: "Fire a specific job once",
		Example: heredoc.Doc(`
			$ discuss job run reconcile_counters
			$ discuss job run flagged_comments_reminder
		`),
		Args: cobra.ExactValidArgs(1),
		ValidArgs: []string{
			string(jobs.TypeReconcileCounters),
			string(jobs.TypeFlaggedCommentsReminder),
		},
		RunE: runWithApp(func(ctx context.Context, _ *cobra.Command, a *app, args []string) error {
			handler := jobs.NewHandler(
				a.logger,
				a.services.CommentService,
				a.services.ContentRepository,
				a.services.ReportService,
				a.notifier,
				a.config.Comment.Moderators,
			)
			handlers := map[jobs.Type]jobFunc{
				jobs.TypeReconcileCounters:       handler.ReconcileCounters,
				jobs.TypeFlaggedCommentsReminder: handler.FlaggedCommentsReminder,
			}

			name := jobs.Type(args[0])
			run, ok := handlers[name]
			if !ok {
				return fmt.Errorf("invalid job name: %s", name)
			}
			if err := run(ctx, a.config.Jobs[name].Config); err != nil {
				return fmt.Errorf("running job %q: %w", name, err)
			}
			a.logger.Info(ctx, "job finished", "job", name)
			return nil
		}),
	}

	return cmd
}
