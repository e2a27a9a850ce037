package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"arise/internal/ui"
)

func newDungeonsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dungeons",
		Short: "List challenge programs and their state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			mastered := map[string]bool{}
			for _, id := range st.MasteredDungeons {
				mastered[id] = true
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDungeon, "Dungeons"))
			for _, d := range svc.Catalog().Dungeons {
				status := ui.Muted.Render("available")
				switch {
				case mastered[d.ID]:
					status = ui.Gold.Render("mastered")
				case st.ActiveDungeonID == d.ID:
					if st.DungeonProgress >= d.Duration {
						status = ui.Good.Render("complete — master it!")
					} else {
						status = ui.Key.Render(fmt.Sprintf("day %d of %d", st.DungeonProgress, d.Duration))
					}
				case st.ActiveDungeonID != "":
					status = ui.Warn.Render("another dungeon active")
				}
				fmt.Fprintf(out, "%s %s %s [%s, %d days] — %s\n",
					ui.Key.Render(d.ID), d.Title, status, d.Difficulty, d.Duration, ui.Muted.Render(d.Description))
			}
			return nil
		},
	}

	return cmd
}

func newDelveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delve <dungeon_id>",
		Short: "Start a dungeon challenge program",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("dungeon_id is required")
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

			run, err := svc.StartDungeon(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s — day 1 of %d. Survive.\n",
				ui.Good.Render(ui.IconDungeon+" Challenge started:"), run.Dungeon.Title, run.Dungeon.Duration)
			return nil
		},
	}

	return cmd
}

func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Log today's dungeon workout (one per calendar day)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			run, err := svc.ProgressDungeon(ctx)
			if err != nil {
				return err
			}
			if run.Complete {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s complete! Run %s to claim mastery.\n",
					ui.Gold.Render(ui.IconTrophy), run.Dungeon.Title, ui.Key.Render("arise master "+run.Dungeon.ID))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s — day %d of %d\n",
				ui.Good.Render(ui.IconBolt+" Progress:"), run.Dungeon.Title, run.Day, run.Dungeon.Duration)
			return nil
		},
	}

	return cmd
}

func newMasterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "master <dungeon_id>",
		Short: "Confirm mastery of a completed dungeon",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("dungeon_id is required")
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

			res, err := svc.MasterDungeon(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Gold.Render(ui.IconTrophy+" Dungeon mastered:"), res.DungeonID)
			return nil
		},
	}

	return cmd
}
