package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"arise/internal/ui"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <hours>",
		Short: "Log a workout session",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("hours is required (e.g. 1.5)")
			}
			if _, err := strconv.ParseFloat(args[0], 64); err != nil {
				return errors.New("hours must be a number")
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

			hours, _ := strconv.ParseFloat(args[0], 64)
			if err := svc.RecordWorkout(ctx, hours); err != nil {
				return err
			}

			a := svc.State().Analytics
			fmt.Fprintf(cmd.OutOrStdout(), "%s workout #%d logged (%.1fh). Streak: %d days.\n",
				ui.Good.Render(ui.IconFlex), a.TotalWorkouts, hours, a.CurrentStreak)
			return nil
		},
	}

	return cmd
}

func newPRCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pr <exercise> <value>",
		Short: "Record a personal best",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("exercise and value are required")
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

			if err := svc.SetPersonalRecord(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n",
				ui.Gold.Render(ui.IconTrophy+" New record!"), args[0], args[1])
			return nil
		},
	}

	return cmd
}
