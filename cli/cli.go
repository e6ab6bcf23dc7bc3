package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

func New(cfg *Config) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "meridian <command> <subcommand> [flags]",
		Short:         "Metadata Discovery Service",
		Long:          "Metadata catalog with ranked search over your data assets.",
		SilenceErrors: true,
		SilenceUsage:  false,
		Example: heredoc.Doc(`
		$ meridian server start
		$ meridian server migrate
		$ meridian worker start
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'meridian <command> --help' for info about a command.
			`),
			"help:feedback": heredoc.Doc(`
				Open an issue here https://github.com/raystack/meridian/issues
			`),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, err := cmd.Flags().GetString(configFlag)
			if err != nil || cfgFile == "" {
				return nil
			}
			return LoadConfigFromFlag(cfgFile, cfg)
		},
	}

	rootCmd.AddCommand(
		serverCmd(cfg),
		workerCmd(cfg),
		configCommand(cfg),
	)

	// Help topics
	rootCmd.AddCommand(cmdx.SetCompletionCmd("meridian"))
	rootCmd.AddCommand(cmdx.SetRefCmd(rootCmd))
	cmdx.SetHelp(rootCmd)

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Override config file")

	return rootCmd
}
