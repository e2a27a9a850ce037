package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"arise/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show hunter profile, progress, and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			p := st.UserProfile
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSwords, "Hunter Status"))
			fmt.Fprintln(out, ui.LabelValue("Name", p.Name))
			fmt.Fprintln(out, ui.LabelValue("Rank", ui.RankText(p.Rank)))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", ui.XPBar(p.XP, p.XPToNextLevel, 30)))
			if p.Height > 0 {
				fmt.Fprintln(out, ui.LabelValue("Height", fmt.Sprintf("%.0f cm", p.Height)))
			}
			if p.Weight > 0 {
				fmt.Fprintln(out, ui.LabelValue("Weight", fmt.Sprintf("%.1f kg", p.Weight)))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconQuest+" Active Quests"))
			if len(st.Quests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none — come back tomorrow)"))
			}
			for _, q := range st.Quests {
				done := 0
				for _, t := range q.Tasks {
					if t.Completed {
						done++
					}
				}
				marker := ui.Muted.Render(fmt.Sprintf("%d/%d tasks", done, len(q.Tasks)))
				if q.AllTasksCompleted() {
					marker = ui.Good.Render("ready to claim")
				}
				fmt.Fprintf(out, "- %s %s %s\n", q.Title, ui.Muted.Render(fmt.Sprintf("(%d XP)", q.XP)), marker)
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconDungeon+" Dungeon"))
			if run := svc.ActiveDungeon(); run != nil {
				status := fmt.Sprintf("day %d of %d", run.Day, run.Dungeon.Duration)
				if run.Complete {
					status = ui.Good.Render("complete — master it!")
				}
				fmt.Fprintf(out, "- %s: %s\n", run.Dungeon.Title, status)
			} else {
				fmt.Fprintln(out, ui.Muted.Render("(no active dungeon)"))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconBadge+" Badges"))
			if len(st.UnlockedBadges) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none yet)"))
			}
			for _, id := range st.UnlockedBadges {
				if b, ok := svc.Catalog().Badge(id); ok {
					fmt.Fprintf(out, "- %s %s %s\n", b.Icon, b.Name, ui.Muted.Render(b.Description))
				} else {
					fmt.Fprintf(out, "- %s\n", id)
				}
			}
			fmt.Fprintln(out, "")

			a := st.Analytics
			fmt.Fprintln(out, ui.H2.Render(ui.IconFlex+" Training"))
			fmt.Fprintln(out, ui.LabelValue("Workouts", a.TotalWorkouts))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d days", a.CurrentStreak)))
			fmt.Fprintln(out, ui.LabelValue("Hours trained", fmt.Sprintf("%.1f", a.HoursTrained)))
			for _, pr := range a.PersonalRecords {
				fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(pr.Exercise+":"), pr.Value)
			}

			return nil
		},
	}

	return cmd
}
