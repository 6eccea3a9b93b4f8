package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

const configFlag = "config"

// New builds the roster command tree.
func New(cliConfig *Config) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "roster <command> <subcommand> [flags]",
		Short:         "Employee Directory Service",
		Long:          "Employee directory service with filterable, paginated list APIs.",
		SilenceErrors: true,
		SilenceUsage:  false,
		Example: heredoc.Doc(`
		$ roster serve
		$ roster migrate
		$ roster config init
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'roster <command> --help' for info about a command.
			`),
			"help:feedback": heredoc.Doc(`
				Open an issue here https://github.com/goto/roster/issues
			`),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString(configFlag)
			if cfgFile != "" {
				return LoadConfigFromFlag(cfgFile, cliConfig)
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		serveCmd(cliConfig),
		migrateCmd(cliConfig),
		configCommand(cliConfig),
		versionCmd(),
	)

	cmdx.SetHelp(rootCmd)
	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Override config file")

	return rootCmd
}
