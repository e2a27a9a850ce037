package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arise/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "arise",
	Short:         "Arise — local-first hunter fitness tracker",
	Long:          "Arise is a local-first CLI/TUI fitness tracker with RPG progression: quests, dungeons, ranks, and badges.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newQuestsCmd(),
		newAcceptCmd(),
		newTaskCmd(),
		newClaimCmd(),
		newDungeonsCmd(),
		newDelveCmd(),
		newProgressCmd(),
		newMasterCmd(),
		newProfileCmd(),
		newLogCmd(),
		newPRCmd(),
		newBoardCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
