package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/ai"
	"levelup/internal/ui"
)

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the AI coach for quest ideas",
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
			if !cfg.Configured() {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Set GROQ_API_KEY to enable suggestions."))
				return nil
			}
			assistant := ai.NewClient(cfg)

			sc := ai.SuggestionContext{UserLevel: agg.User.Level}
			for i := range agg.Skills {
				sc.Skills = append(sc.Skills, ai.SkillSummary{
					Name:  agg.Skills[i].Name,
					Level: agg.Skills[i].Level,
					XP:    agg.Skills[i].XP,
				})
			}
			for i := len(agg.Quests) - 1; i >= 0 && len(sc.RecentQuests) < 5; i-- {
				sc.RecentQuests = append(sc.RecentQuests, agg.Quests[i].Title)
			}

			suggestions := assistant.SuggestQuests(ctx, sc)
			if len(suggestions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No suggestions right now. Try again later."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconRobot, "Quest ideas"))
			for _, s := range suggestions {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n  %s\n",
					ui.SkillIcon(s.Skill), ui.Key.Render(s.Title), ui.Muted.Render("("+s.Size+")"),
					ui.Muted.Render(s.Description))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(`Add one with: lvl add "<title>" -s <skill> -z <size>`))
			return nil
		},
	}

	return cmd
}
