package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"moodline/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage profiles (max 5, each with its own journal)",
	}

	cmd.AddCommand(
		newProfileListCmd(),
		newProfileCreateCmd(),
		newProfileSelectCmd(),
		newProfileDeleteCmd(),
	)

	return cmd
}

func newProfileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			profiles, err := svc.Profiles(ctx)
			if err != nil {
				return err
			}
			active, err := svc.ActiveProfile(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconProfile, "Profiles"))
			for _, p := range profiles {
				marker := "  "
				if p.ID == active.ID {
					marker = ui.Good.Render("* ")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s %s %s\n", marker, p.AvatarGlyph, p.DisplayName, ui.Muted.Render(p.ID))
			}
			return nil
		},
	}
}

func newProfileCreateCmd() *cobra.Command {
	var glyph string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a profile",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("profile name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.CreateProfile(ctx, args[0], glyph)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Heading(ui.IconProfile, "Created profile"), p.AvatarGlyph, p.DisplayName)
			return nil
		},
	}

	cmd.Flags().StringVar(&glyph, "glyph", "🙂", "Avatar glyph")

	return cmd
}

func newProfileSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <name-or-id>",
		Short: "Switch the active profile",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("profile name or id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.SelectProfile(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active profile: %s %s\n", p.AvatarGlyph, p.DisplayName)
			return nil
		},
	}
}

func newProfileDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name-or-id>",
		Short: "Delete a profile and its entire journal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("profile name or id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteProfile(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", args[0])
			return nil
		},
	}
}
