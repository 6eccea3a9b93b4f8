package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/roster/internal/store/postgres"
)

func migrateCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run storage migration",
		Example: heredoc.Doc(`
			$ roster migrate
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"group:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(*cfg)
		},
	}
}

func runMigrations(config Config) error {
	logger := initLogger(config.LogLevel)
	logger.Info("roster is migrating", "version", Version)

	return migratePostgres(logger, config)
}

func migratePostgres(logger log.Logger, config Config) error {
	logger.Info("initiating postgres client")

	pgClient, err := postgres.NewClient(config.DB)
	if err != nil {
		logger.Error("failed to prepare migration", "error", err)
		return err
	}
	defer pgClient.Close()

	ver, err := pgClient.Migrate(config.DB)
	if err != nil {
		return fmt.Errorf("problem with migration %w", err)
	}
	logger.Info("migration postgres done", "version", ver)

	return nil
}
