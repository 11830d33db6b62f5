package cli

import (
	"context"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

// Version of the current build. overridden by the build system.
// see "Makefile" for more information
var (
	Version string
)

// Execute runs the command tree with ctx. The session opened by the commands
// is released whether or not the command succeeds.
func Execute(ctx context.Context, cfg *Config) (*cobra.Command, error) {
	rootCmd, a := newCLI(cfg)
	return execute(ctx, rootCmd, a)
}

func execute(ctx context.Context, rootCmd *cobra.Command, a *app) (*cobra.Command, error) {
	defer a.Close()
	return rootCmd.ExecuteContextC(ctx)
}

// New builds the command tree. Commands that need the inventory share one
// lazily opened session, which lives as long as the process. The session is
// released after a successful run; use Execute to release it on failure too.
func New(cfg *Config) *cobra.Command {
	rootCmd, _ := newCLI(cfg)
	return rootCmd
}

func newCLI(cfg *Config) (*cobra.Command, *app) {
	if cfg == nil {
		cfg = &Config{}
	}
	a := newApp(cfg)

	rootCmd := newRootCmd(a)
	rootCmd.AddCommand(
		shellCommand(a),
		configCommand(cfg),
		versionCmd(),
	)

	// Help topics
	rootCmd.AddCommand(cmdx.SetCompletionCmd("assetkeeper"))
	rootCmd.AddCommand(cmdx.SetRefCmd(rootCmd))
	rootCmd.AddCommand(cmdx.SetHelpTopicCmd("environment", envHelp))
	cmdx.SetHelp(rootCmd)

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Override config file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString(configFlag)
		if cfgFile == "" {
			return nil
		}
		return LoadConfigFromFlag(cfgFile, cfg)
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		a.Close()
	}

	return rootCmd, a
}

// newRootCmd holds the commands that work on the inventory. The shell builds
// a fresh one per line so that flag values never leak between lines.
func newRootCmd(a *app) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "assetkeeper <command> <subcommand> [flags]",
		Short:         "Equipment inventory and lending",
		Long:          "Keep track of equipment, who borrowed it and when it is due back.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Example: heredoc.Doc(`
		$ assetkeeper store init
		$ assetkeeper asset list
		$ assetkeeper asset add 7,8 --name "Tripod" --location "Closet B"
		$ assetkeeper checkout 7 8 --email jane@example.com
		$ assetkeeper shell
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'assetkeeper <command> --help' for info about a command.
			`),
		},
	}

	rootCmd.AddCommand(
		storeCommand(a),
		assetCommand(a),
		cartCommand(a),
		checkoutCommand(a),
		historyCommand(a),
	)
	return rootCmd
}
