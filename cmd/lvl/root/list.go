package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			agg := svc.Snapshot(ctx)
			if agg.User == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No profile yet. Run `lvl init <username>` first."))
				return nil
			}
			if len(agg.Quests) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No quests. Add one with `lvl add \"My first quest\"`."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconQuest, "Quests"))
			for i := range agg.Quests {
				q := &agg.Quests[i]
				if q.Completed && !all {
					continue
				}
				line := fmt.Sprintf("%2d. %s %s %s %s +%d XP",
					i+1, ui.CompletedText(q.Completed), ui.SkillIcon(q.Skill), q.Title, ui.Muted.Render(q.Size), q.XPReward)
				if q.DueDate != nil {
					line += " " + ui.Muted.Render("due "+q.DueDate.Format("2006-01-02"))
				}
				if q.IsRecurring {
					line += " " + ui.Muted.Render("↻")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed quests")

	return cmd
}
