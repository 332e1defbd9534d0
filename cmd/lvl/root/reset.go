package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/ui"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all progress (profile, quests, completions, badges)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("refusing to wipe without --force")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.Reset(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" All progress wiped."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm the wipe")

	return cmd
}
