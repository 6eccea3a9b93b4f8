package cli

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/roster/core/employee"
	"github.com/goto/roster/internal/server"
	"github.com/goto/roster/internal/store/postgres"
	"github.com/goto/roster/pkg/statsd"
)

// Version of the current build. overridden by the build system.
var Version string

func serveCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Serve HTTP service",
		Long:    heredoc.Doc(`Serve the employee directory HTTP API.`),
		Aliases: []string{"server", "start"},
		Example: heredoc.Doc(`
			$ roster serve
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"group:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, *cfg)
		},
	}
}

func runServer(cmd *cobra.Command, config Config) error {
	logger := initLogger(config.LogLevel)
	logger.Info("roster starting", "version", Version)

	statsdReporter, err := statsd.Init(logger, config.StatsD)
	if err != nil {
		return fmt.Errorf("failed to create statsd reporter: %w", err)
	}
	defer statsdReporter.Close()

	pgClient, err := postgres.NewClient(config.DB)
	if err != nil {
		return fmt.Errorf("failed to create postgres client: %w", err)
	}
	defer pgClient.Close()

	employeeRepository, err := postgres.NewEmployeeRepository(pgClient)
	if err != nil {
		return fmt.Errorf("failed to create employee repository: %w", err)
	}
	employeeService, err := employee.NewService(logger, employeeRepository)
	if err != nil {
		return fmt.Errorf("failed to create employee service: %w", err)
	}

	return server.Serve(cmd.Context(), config.Service, &server.Dependencies{
		Logger:          logger,
		EmployeeService: employeeService,
		StatsdReporter:  statsdReporter,
	})
}

func initLogger(logLevel string) log.Logger {
	return log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stdout),
	)
}
