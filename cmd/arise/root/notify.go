package root

import (
	"fmt"
	"io"

	"arise/internal/game"
	"arise/internal/storage"
	"arise/internal/ui"
)

type printer interface {
	OutOrStdout() io.Writer
}

// toastNotifier renders core success events as one-line toasts.
type toastNotifier struct {
	out printer
}

func (n toastNotifier) QuestAccepted(q storage.Quest) {
	fmt.Fprintf(n.out.OutOrStdout(), "%s %q added to your active quests.\n",
		ui.Good.Render(ui.IconScroll+" Quest Accepted!"), q.Title)
}

func (n toastNotifier) RewardClaimed(q storage.Quest, res game.ClaimResult) {
	fmt.Fprintf(n.out.OutOrStdout(), "%s You earned %d XP!\n",
		ui.Good.Render(ui.IconSparkle+" Reward Claimed!"), res.XPAwarded)
	if res.LevelUp {
		fmt.Fprintf(n.out.OutOrStdout(), "%s Level %d → %d\n", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
	}
}

func (n toastNotifier) BadgeUnlocked(b game.Badge) {
	fmt.Fprintf(n.out.OutOrStdout(), "%s %s — %s\n",
		ui.Gold.Render(ui.IconBadge+" Badge Unlocked!"), b.Name, ui.Muted.Render(b.Description))
}
