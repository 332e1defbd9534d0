package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a quest",
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
			title := agg.Quest(id).Title

			if err := svc.DeleteQuest(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render(ui.IconWarn+" Deleted"), title)
			return nil
		},
	}

	return cmd
}
