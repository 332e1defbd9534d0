package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/engine"
	"levelup/internal/ui"
)

func newBadgesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Show the badge catalog and what you have earned",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			agg := svc.Snapshot(ctx)

			awardedAt := map[string]string{}
			for _, ub := range agg.UserBadges {
				awardedAt[ub.BadgeID] = ub.AwardedAt.Format("2006-01-02")
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, fmt.Sprintf("Badges (%d/%d)", len(awardedAt), len(engine.Catalog))))
			for _, b := range engine.Catalog {
				if when, ok := awardedAt[b.ID]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", b.Icon, ui.Gold.Render(b.Name), ui.Muted.Render(b.Description), ui.Good.Render("earned "+when))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", b.Icon, ui.Muted.Render(b.Name), ui.Muted.Render(b.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
