package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"levelup/internal/engine"
	"levelup/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, streak, and skills",
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
			u := agg.User
			now := time.Now()

			nextReq := engine.XPRequiredForLevel(u.Level + 1)
			toNext := nextReq - u.TotalXP
			if toNext < 0 {
				toNext = 0
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, u.DisplayName))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", u.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total XP", fmt.Sprintf("%d (next at %d, %d to go)", u.TotalXP, nextReq, toNext)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d%%\n", ui.Key.Render("Progress:"), ui.ProgressBar(engine.ProgressPercent(u.TotalXP, u.Level), 20), engine.ProgressPercent(u.TotalXP, u.Level))

			streakLine := fmt.Sprintf("%d %s (+%d%% XP)", u.StreakCount, ui.IconFlame, engine.StreakBonusPercent(u.StreakCount))
			if u.LastCompletionAt != nil && engine.GraceActive(*u.LastCompletionAt, now) {
				streakLine += " " + ui.Good.Render("active")
			} else if u.StreakCount > 0 {
				streakLine += " " + ui.Warn.Render("at risk")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", streakLine))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Weekly XP", engine.WeeklyXP(agg, now)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("📊 Skills"))
			for i := range agg.Skills {
				sk := &agg.Skills[i]
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %-12s lvl %2d  %s %3d%%  %s\n",
					ui.SkillIcon(sk.Name), sk.Name, sk.Level,
					ui.ProgressBar(engine.ProgressPercent(sk.XP, sk.Level), 12),
					engine.ProgressPercent(sk.XP, sk.Level),
					ui.Muted.Render(fmt.Sprintf("(xp %d)", sk.XP)))
			}
			return nil
		},
	}

	return cmd
}
