package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"devlaunch/internal/app"
	"devlaunch/internal/apps"
	"devlaunch/internal/prompt"
	"devlaunch/internal/system"
)

var debug bool

// registry is the app list used by every command.
var registry = apps.Default()

var rootCmd = &cobra.Command{
	Use:   "devlaunch [app]",
	Short: "devlaunch – pick a developer app, launch it or install it",
	Long: "devlaunch shows a menu of AI CLIs and editors, checks whether the chosen one\n" +
		"is installed, and then launches it or offers to install it.\n" +
		"Passing an app name skips the menu.",
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		system.SetDebug(debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		o := &app.Orchestrator{
			Registry: registry,
			Prompt:   prompt.Huh{},
			Prober:   apps.Prober{},
			Spawner:  apps.ExecSpawner{},
			Out:      cmd.OutOrStdout(),
			Log:      system.Logger,
		}
		if len(args) == 1 {
			o.Query = args[0]
		}
		res := app.Main(cmd.Context(), o, cmd.ErrOrStderr())
		// Stay alive while the child owns the terminal so its exit status is reported.
		if res.Pending != nil {
			<-res.Pending
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
