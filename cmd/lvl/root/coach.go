package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"levelup/internal/ai"
	"levelup/internal/engine"
	"levelup/internal/ui"
)

func newCoachCmd() *cobra.Command {
	var weekly bool

	cmd := &cobra.Command{
		Use:   "coach [message]",
		Short: "Talk to the AI coach",
		Long: `Talk to the AI coach.

With no arguments, prints a short motivational message. With a message,
answers it. With --weekly, summarizes this week's progress instead.`,
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

			cfg, err := ai.LoadConfig()
			if err != nil {
				return err
			}
			assistant := ai.NewClient(cfg)
			now := time.Now()

			switch {
			case weekly:
				ic := ai.InsightContext{
					WeeklyXP:    engine.WeeklyXP(agg, now),
					StreakCount: agg.User.StreakCount,
				}
				weekStart := engine.StartOfWeek(now)
				for i := range agg.Completions {
					if !agg.Completions[i].WeekStart.Before(weekStart) {
						ic.CompletedQuests++
					}
				}
				for i := range agg.Skills {
					ic.TopSkills = append(ic.TopSkills, ai.SkillSummary{
						Name:  agg.Skills[i].Name,
						Level: agg.Skills[i].Level,
						XP:    agg.Skills[i].XP,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconRobot, "Weekly insight"))
				fmt.Fprintln(cmd.OutOrStdout(), assistant.WeeklyInsight(ctx, ic))
			case len(args) > 0:
				reply := assistant.Chat(ctx, strings.Join(args, " "), nil)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Key.Render(ui.IconRobot+" Coach:"), reply)
			default:
				mc := ai.MotivationContext{
					StreakCount: agg.User.StreakCount,
					Level:       agg.User.Level,
				}
				since := now.AddDate(0, 0, -7)
				for i := range agg.Completions {
					if agg.Completions[i].CompletedAt.After(since) {
						mc.RecentCompletions++
					}
				}
				for i := range agg.Skills {
					if mc.TopSkill == "" || agg.Skills[i].Level > agg.Skill(mc.TopSkill).Level {
						mc.TopSkill = agg.Skills[i].Name
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Key.Render(ui.IconRobot+" Coach:"), assistant.MotivationalMessage(ctx, mc))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&weekly, "weekly", "w", false, "Show a weekly progress insight")

	return cmd
}
