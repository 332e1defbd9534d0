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

func newEditCmd() *cobra.Command {
	var (
		title     string
		skill     string
		size      string
		desc      string
		due       string
		recurring bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a quest (XP reward follows the size)",
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
			current := agg.Quest(id)

			in := engine.QuestInput{
				Title:       current.Title,
				Description: current.Description,
				Skill:       engine.SkillType(current.Skill),
				Size:        engine.QuestSize(current.Size),
				DueDate:     current.DueDate,
				IsRecurring: current.IsRecurring,
			}
			if cmd.Flags().Changed("title") {
				in.Title = title
			}
			if cmd.Flags().Changed("desc") {
				in.Description = desc
			}
			if cmd.Flags().Changed("skill") {
				sk, ok := engine.ParseSkill(skill)
				if !ok {
					return fmt.Errorf("invalid skill %q", skill)
				}
				in.Skill = sk
			}
			if cmd.Flags().Changed("size") {
				sz, ok := engine.ParseSize(size)
				if !ok {
					return fmt.Errorf("invalid size %q", size)
				}
				in.Size = sz
			}
			if cmd.Flags().Changed("due") {
				if due == "" {
					in.DueDate = nil
				} else {
					t, err := time.ParseInLocation("2006-01-02", due, time.Local)
					if err != nil {
						return fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", due)
					}
					in.DueDate = &t
				}
			}
			if cmd.Flags().Changed("recurring") {
				in.IsRecurring = recurring
			}

			quest, err := svc.UpdateQuest(ctx, id, in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconDone+" Updated"),
				ui.SkillIcon(quest.Skill),
				quest.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, +%d XP)", quest.Size, quest.XPReward)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&skill, "skill", "s", "", "New skill")
	cmd.Flags().StringVarP(&size, "size", "z", "", "New size (S|M|L|XL)")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "New description")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD, empty clears)")
	cmd.Flags().BoolVar(&recurring, "recurring", false, "Toggle recurring flag")

	return cmd
}
