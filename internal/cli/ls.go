package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"devlaunch/internal/apps"
	"devlaunch/internal/prompt"
	"devlaunch/internal/ui"
)

func init() {
	rootCmd.AddCommand(lsCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List known apps and whether they are installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var statuses []apps.Status
		check := func() {
			statuses = apps.Prober{}.CheckAll(cmd.Context(), registry)
		}
		if prompt.StdTerminal() {
			if err := spinner.New().Title("Checking apps…").Action(check).Run(); err != nil {
				return err
			}
		} else {
			check()
		}
		renderStatuses(cmd.OutOrStdout(), statuses)
		return nil
	},
}

func renderStatuses(w io.Writer, statuses []apps.Status) {
	rows := make([][]string, 0, len(statuses))
	for _, st := range statuses {
		rows = append(rows, statusRow(st))
	}
	fmt.Fprintln(w, ui.Table([]string{"App", "Kind", "Status", "Version"}, rows))
}

func statusRow(st apps.Status) []string {
	state := "not installed"
	if st.Installed {
		state = "installed"
	}
	ver := st.Version
	if ver == "" {
		ver = "-"
	}
	return []string{st.App.Name(), st.App.Kind().String(), state, ver}
}
