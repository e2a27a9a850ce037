package game

import (
	"context"
	"fmt"
)

// DungeonStatus describes the active dungeon run.
type DungeonStatus struct {
	Dungeon  Dungeon
	Day      int
	Complete bool // duration reached; ready to master
}

// MasterResult reports the outcome of confirming mastery.
type MasterResult struct {
	DungeonID     string
	BadgeID       string
	BadgeUnlocked bool
}

// StartDungeon begins a challenge program at day 1. At most one dungeon may be
// active at a time, and today is stamped so the first extra increment can only
// happen tomorrow.
func (s *Service) StartDungeon(ctx context.Context, id string) (*DungeonStatus, error) {
	d, ok := s.catalog.Dungeon(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDungeon, id)
	}
	if s.isMastered(id) {
		return nil, fmt.Errorf("%w: %s", ErrDungeonAlreadyMastered, id)
	}
	if s.state.ActiveDungeonID != "" {
		return nil, fmt.Errorf("%w: %s", ErrDungeonAlreadyActive, s.state.ActiveDungeonID)
	}

	s.state.ActiveDungeonID = id
	s.state.DungeonProgress = 1
	s.state.LastDungeonProgressDate = s.today()
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &DungeonStatus{Dungeon: d, Day: 1, Complete: d.Duration <= 1}, nil
}

// ProgressDungeon advances the active dungeon by one day. At most one
// increment per calendar day; once the duration is reached the run can only be
// mastered.
func (s *Service) ProgressDungeon(ctx context.Context) (*DungeonStatus, error) {
	id := s.state.ActiveDungeonID
	if id == "" {
		return nil, ErrNoActiveDungeon
	}
	d, ok := s.catalog.Dungeon(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDungeon, id)
	}
	if s.state.DungeonProgress >= d.Duration {
		return nil, fmt.Errorf("%w: %s", ErrDungeonComplete, id)
	}
	today := s.today()
	if s.state.LastDungeonProgressDate == today {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyProgressedToday, id)
	}

	s.state.DungeonProgress++
	s.state.LastDungeonProgressDate = today
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &DungeonStatus{
		Dungeon:  d,
		Day:      s.state.DungeonProgress,
		Complete: s.state.DungeonProgress >= d.Duration,
	}, nil
}

// MasterDungeon confirms mastery of the active dungeon once its full duration
// has been progressed. The run is cleared, the dungeon joins the mastered set,
// and its catalog badge is unlocked (idempotently).
func (s *Service) MasterDungeon(ctx context.Context, id string) (*MasterResult, error) {
	if s.state.ActiveDungeonID == "" {
		return nil, ErrNoActiveDungeon
	}
	if s.state.ActiveDungeonID != id {
		return nil, fmt.Errorf("%w: %s", ErrDungeonNotActive, id)
	}
	d, ok := s.catalog.Dungeon(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDungeon, id)
	}
	if s.state.DungeonProgress < d.Duration {
		return nil, fmt.Errorf("%w: day %d of %d", ErrDungeonNotComplete, s.state.DungeonProgress, d.Duration)
	}

	s.state.MasteredDungeons = append(s.state.MasteredDungeons, id)
	s.state.ActiveDungeonID = ""
	s.state.DungeonProgress = 0
	s.state.LastDungeonProgressDate = ""

	res := &MasterResult{DungeonID: id, BadgeID: d.BadgeID}
	res.BadgeUnlocked = s.unlockBadge(d.BadgeID)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

// ActiveDungeon returns the current run, or nil when no dungeon is active.
func (s *Service) ActiveDungeon() *DungeonStatus {
	id := s.state.ActiveDungeonID
	if id == "" {
		return nil
	}
	d, ok := s.catalog.Dungeon(id)
	if !ok {
		return nil
	}
	return &DungeonStatus{
		Dungeon:  d,
		Day:      s.state.DungeonProgress,
		Complete: s.state.DungeonProgress >= d.Duration,
	}
}

func (s *Service) isMastered(id string) bool {
	for _, m := range s.state.MasteredDungeons {
		if m == id {
			return true
		}
	}
	return false
}
