package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/discuss/internal/server"
	"github.com/goto/discuss/internal/store/postgres"
)

func ServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the api server and manage the database schema",
		Example: heredoc.Doc(`
			$ discuss server start
			$ discuss server migrate
			$ discuss server rollback --steps 1
		`),
	}

	cmd.AddCommand(
		startServerCmd(),
		migrateCmd(),
		rollbackCmd(),
	)

	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")

	return cmd
}

func startServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the http api",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return server.RunServer(&cfg)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply all pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			st, err := postgres.NewClient(cfg.DB)
			if err != nil {
				return fmt.Errorf("initializing store: %w", err)
			}
			defer st.Close() //nolint:errcheck

			if err := st.Migrate(); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migration complete")
			return nil
		},
	}
}

func rollbackCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "rollback",
		Short: "Revert the latest database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			st, err := postgres.NewClient(cfg.DB)
			if err != nil {
				return fmt.Errorf("initializing store: %w", err)
			}
			defer st.Close() //nolint:errcheck

			if err := st.Rollback(steps); err != nil {
				return fmt.Errorf("rolling back migrations: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d migration(s)\n", steps)
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to revert")
	return cmd
}
