package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "discuss <command> <subcommand> [flags]",
		Short:         "Threaded comments and moderation",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: heredoc.Doc(`
			Threaded comments and moderation for ideas and domains.

			Run the http api with "server start", or manage comments and
			background jobs directly against the database.
		`),
		Example: heredoc.Doc(`
			$ discuss server start -c config.yaml
			$ discuss comment thread idea 5f0e... --page 2
			$ discuss job run reconcile_counters
		`),
	}

	cmd.AddCommand(
		ServerCmd(),
		CommentCmd(),
		JobCmd(),
	)

	return cmd
}
