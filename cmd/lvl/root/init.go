package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/ui"
)

func newInitCmd() *cobra.Command {
	var displayName string

	cmd := &cobra.Command{
		Use:   "init <username>",
		Short: "Create your profile and the five skills",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("username is required")
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

			user, err := svc.InitUser(ctx, args[0], displayName)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Welcome, "+user.DisplayName+"!"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Profile created. Add a quest with `lvl add` and complete it with `lvl do`."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&displayName, "name", "n", "", "Display name (defaults to username)")

	return cmd
}
