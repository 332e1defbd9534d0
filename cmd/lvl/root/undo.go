package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/ui"
)

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Undo a quest completion",
		Long: `Undo the most recent completion of a quest.

The quest flips back to open and the awarded XP is deducted (never below
zero). The completion record, your streak, and any badges earned stay as
they are.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			agg := svc.Snapshot(ctx)
			id, err := resolveQuestID(agg, args[0])
			if err != nil {
				return err
			}
			quest := agg.Quest(id)

			res := svc.UndoCompletion(ctx, id)
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to undo: quest is not completed."))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Warn.Render(ui.IconUndo+" Undone"), quest.Title, ui.Muted.Render(fmt.Sprintf("(-%d XP)", res.XPDeducted)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.LabelValue("Level", fmt.Sprintf("%d → %d", res.LevelBefore, res.LevelAfter)))
			if res.LevelDown {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Level decreased"))
			}
			return nil
		},
	}

	return cmd
}
