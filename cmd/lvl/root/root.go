package root

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"levelup/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "lvl",
	Short:         "LevelUp — local-first RPG life tracker",
	Long:          "LevelUp is a local-first CLI/TUI quest tracker: complete real-life quests, earn XP, keep streaks, unlock badges.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newEditCmd(),
		newRmCmd(),
		newDoCmd(),
		newUndoCmd(),
		newListCmd(),
		newStatusCmd(),
		newBadgesCmd(),
		newBoardCmd(),
		newSuggestCmd(),
		newCoachCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
