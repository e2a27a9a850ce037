package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"arise/internal/game"
	"arise/internal/ui"
)

func newProfileCmd() *cobra.Command {
	var name string
	var rank string
	var height float64
	var weight float64
	var gender string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Edit the hunter profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			var patch game.ProfilePatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("rank") {
				r, ok := game.ParseRank(rank)
				if !ok {
					return fmt.Errorf("invalid rank %q (want E, D, C, B, A, or S)", rank)
				}
				patch.Rank = &r
			}
			if cmd.Flags().Changed("height") {
				patch.Height = &height
			}
			if cmd.Flags().Changed("weight") {
				patch.Weight = &weight
			}
			if cmd.Flags().Changed("gender") {
				g := game.Gender(gender)
				patch.Gender = &g
			}

			if patch == (game.ProfilePatch{}) {
				return errors.New("nothing to update; pass at least one flag")
			}

			if err := svc.UpdateProfile(ctx, patch); err != nil {
				return err
			}
			p := svc.State().UserProfile
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s, %s, level %d\n",
				ui.Good.Render(ui.IconDone+" Profile updated:"), p.Name, ui.RankText(p.Rank), p.Level)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&rank, "rank", "", "Hunter rank (E|D|C|B|A|S)")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in cm")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender (male|female|other)")

	return cmd
}

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and start over",
		Long: `Reset clears the saved game state and reinitializes defaults.

This deletes the profile, active quests, dungeon progress, badges, and
analytics. It cannot be undone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ResetGameData(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" All progress erased. Arise."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}
