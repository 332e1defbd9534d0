package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a quest",
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

			res := svc.CompleteQuest(ctx, id)
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to do: quest is already completed or no profile exists."))
				return nil
			}

			line := fmt.Sprintf("%s %s %s %s", ui.Good.Render(ui.IconDone+" Completed"), ui.SkillIcon(quest.Skill), quest.Title, ui.Gold.Render(fmt.Sprintf("+%d XP", res.XPAwarded)))
			if res.BonusPercent > 0 {
				line += " " + ui.Muted.Render(fmt.Sprintf("(streak bonus +%d%%)", res.BonusPercent))
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.LabelValue("Level", fmt.Sprintf("%d → %d", res.LevelBefore, res.LevelAfter)))
			if res.LevelUp {
				fmt.Fprintln(cmd.OutOrStdout(), ui.BadgeLevelUp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.LabelValue("Streak", fmt.Sprintf("%d %s", res.StreakCount, ui.IconFlame)))
			for _, b := range res.NewBadges {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s — %s\n", ui.Gold.Render(ui.IconTrophy+" Badge unlocked:"), b.Icon, b.Name, ui.Muted.Render(b.Description))
			}
			return nil
		},
	}

	return cmd
}
