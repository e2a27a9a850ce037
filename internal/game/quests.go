package game

import (
	"context"
	"fmt"

	"arise/internal/storage"
)

// ClaimResult reports what a reward claim changed.
type ClaimResult struct {
	QuestID        string
	XPAwarded      int
	LevelBefore    int
	LevelAfter     int
	LevelUp        bool
	XPToNextLevel  int
	UnlockedBadges []string
}

// AcceptQuest adds a catalog quest to the active set with all tasks reset to
// incomplete. The daily quest is managed by the day rollover and cannot be
// accepted manually.
func (s *Service) AcceptQuest(ctx context.Context, questID string) (*storage.Quest, error) {
	if questID == MandatoryQuestID {
		return nil, ErrMandatoryQuest
	}
	template, ok := s.catalog.Quest(questID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuest, questID)
	}
	if s.findQuest(questID) != nil {
		return nil, fmt.Errorf("%w: %s", ErrQuestAlreadyActive, questID)
	}

	q := FreshQuest(template)
	s.state.Quests = append(s.state.Quests, q)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.notify.QuestAccepted(q)
	return &q, nil
}

// SetTask sets the completion flag of one task within an active quest.
func (s *Service) SetTask(ctx context.Context, questID string, taskIndex int, completed bool) error {
	q := s.findQuest(questID)
	if q == nil {
		return fmt.Errorf("%w: %s", ErrQuestNotActive, questID)
	}
	if taskIndex < 0 || taskIndex >= len(q.Tasks) {
		return fmt.Errorf("%w: %d (quest %s has %d tasks)", ErrTaskOutOfRange, taskIndex, questID, len(q.Tasks))
	}
	q.Tasks[taskIndex].Completed = completed
	return s.persist(ctx)
}

// ClaimReward applies the quest reward to the profile and removes the quest
// from the active set. The quest must be active and fully completed. Claiming
// the daily quest additionally stamps today as its completion date so it
// regenerates on the next day rollover.
func (s *Service) ClaimReward(ctx context.Context, questID string) (*ClaimResult, error) {
	q := s.findQuest(questID)
	if q == nil {
		return nil, fmt.Errorf("%w: %s", ErrQuestNotActive, questID)
	}
	if !q.AllTasksCompleted() {
		return nil, fmt.Errorf("%w: %s", ErrTasksIncomplete, questID)
	}
	claimed := q.Clone()

	p := s.state.UserProfile
	prog := ApplyReward(p.XP, p.XPToNextLevel, p.Level, claimed.XP, s.balance.GrowthFactor)
	res := &ClaimResult{
		QuestID:       claimed.ID,
		XPAwarded:     claimed.XP,
		LevelBefore:   p.Level,
		LevelAfter:    prog.Level,
		LevelUp:       prog.LeveledUp,
		XPToNextLevel: prog.XPToNextLevel,
	}
	p.XP = prog.XP
	p.XPToNextLevel = prog.XPToNextLevel
	p.Level = prog.Level

	today := s.today()
	if claimed.ID == MandatoryQuestID {
		s.state.LastDailyQuestCompletionDate = today
		// The daily quest counts as the day's workout.
		s.touchWorkoutDay(today)
	}
	s.removeQuest(claimed.ID)

	s.state.Analytics.QuestsCompleted++
	res.UnlockedBadges = s.checkMilestones()

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.notify.RewardClaimed(claimed, *res)
	return res, nil
}

// checkMilestones unlocks any badges the current state has earned and returns
// the newly unlocked ids.
func (s *Service) checkMilestones() []string {
	var unlocked []string
	grant := func(id string) {
		if s.unlockBadge(id) {
			unlocked = append(unlocked, id)
		}
	}
	if s.state.Analytics.QuestsCompleted >= 1 {
		grant(BadgeFirstQuest)
	}
	if s.state.Analytics.CurrentStreak >= 7 {
		grant(BadgeStreak7)
	}
	if s.state.UserProfile.Level >= 50 {
		grant(BadgeLevel50)
	}
	return unlocked
}

func (s *Service) findQuest(questID string) *storage.Quest {
	for i := range s.state.Quests {
		if s.state.Quests[i].ID == questID {
			return &s.state.Quests[i]
		}
	}
	return nil
}

func (s *Service) removeQuest(questID string) {
	quests := s.state.Quests[:0]
	for _, q := range s.state.Quests {
		if q.ID != questID {
			quests = append(quests, q)
		}
	}
	s.state.Quests = quests
}
