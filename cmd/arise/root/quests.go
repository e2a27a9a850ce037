package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"arise/internal/game"
	"arise/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "List active quests and the quest catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Active Quests"))
			for _, q := range st.Quests {
				fmt.Fprintf(out, "%s %s %s\n", ui.Key.Render(q.ID), q.Title, ui.Muted.Render(fmt.Sprintf("(%d XP)", q.XP)))
				for i, t := range q.Tasks {
					fmt.Fprintf(out, "  %d. %s %s\n", i+1, ui.TaskBox(t.Completed), t.Description)
				}
			}
			fmt.Fprintln(out, "")

			active := map[string]bool{}
			for _, q := range st.Quests {
				active[q.ID] = true
			}

			fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" Catalog"))
			for _, q := range svc.Catalog().Quests {
				if q.ID == game.MandatoryQuestID || active[q.ID] {
					continue
				}
				fmt.Fprintf(out, "%s %s %s\n", ui.Key.Render(q.ID), q.Title, ui.Muted.Render(fmt.Sprintf("(%d XP)", q.XP)))
			}
			return nil
		},
	}

	return cmd
}

func newAcceptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept <quest_id>",
		Short: "Accept a quest from the catalog",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest_id is required")
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

			_, err = svc.AcceptQuest(ctx, args[0])
			return err
		},
	}

	return cmd
}

func newTaskCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "task <quest_id> <task_number>",
		Short: "Mark a quest task as done (or undone with --undo)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("quest_id and task_number are required")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("task_number must be an integer")
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

			n, _ := strconv.Atoi(args[1])
			// Tasks are numbered from 1 on the CLI.
			if err := svc.SetTask(ctx, args[0], n-1, !undo); err != nil {
				return err
			}

			verb := "done"
			if undo {
				verb = "not done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s task %d of %s marked %s\n",
				ui.Good.Render(ui.IconDone), n, args[0], verb)
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the task as not done")

	return cmd
}

func newClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim <quest_id>",
		Short: "Claim the reward for a fully completed quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest_id is required")
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

			res, err := svc.ClaimReward(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", ui.XPBar(stateXP(svc), res.XPToNextLevel, 30)))
			return nil
		},
	}

	return cmd
}

func stateXP(svc *game.Service) int {
	return svc.State().UserProfile.XP
}
