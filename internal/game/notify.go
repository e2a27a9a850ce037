package game

import "arise/internal/storage"

// Notifier receives user-visible success events from the core. The core
// informs it and never queries it; implementations must not call back into the
// service.
type Notifier interface {
	QuestAccepted(q storage.Quest)
	RewardClaimed(q storage.Quest, res ClaimResult)
	BadgeUnlocked(b Badge)
}

type nopNotifier struct{}

func (nopNotifier) QuestAccepted(storage.Quest)              {}
func (nopNotifier) RewardClaimed(storage.Quest, ClaimResult) {}
func (nopNotifier) BadgeUnlocked(Badge)                      {}
