package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"levelup/internal/engine"
	"levelup/internal/ui"
)

func newAddCmd() *cobra.Command {
	var (
		skill     string
		size      string
		desc      string
		due       string
		recurring bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			sk, ok := engine.ParseSkill(skill)
			if !ok {
				return fmt.Errorf("invalid skill %q (strength|intelligence|discipline|social|finance)", skill)
			}
			sz, ok := engine.ParseSize(size)
			if !ok {
				return fmt.Errorf("invalid size %q (S|M|L|XL)", size)
			}

			var dueDate *time.Time
			if due != "" {
				t, err := time.ParseInLocation("2006-01-02", due, time.Local)
				if err != nil {
					return fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", due)
				}
				dueDate = &t
			}

			quest, err := svc.CreateQuest(ctx, engine.QuestInput{
				Title:       args[0],
				Description: desc,
				Skill:       sk,
				Size:        sz,
				DueDate:     dueDate,
				IsRecurring: recurring,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				ui.SkillIcon(quest.Skill),
				quest.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, +%d XP, id %.8s)", quest.Size, quest.XPReward, quest.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&skill, "skill", "s", "discipline", "Skill (strength|intelligence|discipline|social|finance)")
	cmd.Flags().StringVarP(&size, "size", "z", "M", "Size (S|M|L|XL)")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&recurring, "recurring", false, "Mark the quest as recurring")

	return cmd
}
