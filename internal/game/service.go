package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	"arise/internal/config"
	"arise/internal/storage"
)

// Service is the sole mutator of the GameState. It is constructed once at
// startup and passed by reference to consumers; readers get deep-copy
// snapshots. Commands are synchronous and every mutation is mirrored to the
// state repo before returning.
type Service struct {
	states  *storage.StateRepo
	catalog *Catalog
	balance config.Balance
	notify  Notifier
	now     func() time.Time

	state *storage.GameState
}

type Option func(*Service)

// WithClock overrides the service clock (tests drive day boundaries with it).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithNotifier wires the toast mechanism for success events.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notify = n }
}

// WithBalance overrides progression tuning.
func WithBalance(b config.Balance) Option {
	return func(s *Service) { s.balance = b }
}

// WithCatalog overrides the static reference data.
func WithCatalog(c *Catalog) Option {
	return func(s *Service) { s.catalog = c }
}

// Load restores the persisted state (or initializes defaults on first run),
// rolls stale daily state over to today, and returns a ready service.
func Load(ctx context.Context, states *storage.StateRepo, opts ...Option) (*Service, error) {
	s := &Service{
		states:  states,
		catalog: DefaultCatalog(),
		balance: config.DefaultBalance(),
		notify:  nopNotifier{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	st, err := states.Load(ctx)
	if err != nil {
		return nil, err
	}
	changed := false
	if st == nil {
		st = s.defaultState()
		changed = true
	}

	if NormalizeForNewDay(st, s.catalog.MandatoryQuest(), s.today()) {
		changed = true
	}
	s.state = st

	if changed {
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Service) defaultState() *storage.GameState {
	st := storage.NewGameState()
	st.UserProfile.XPToNextLevel = s.balance.BaseXPToNextLevel
	return st
}

// State returns an immutable snapshot of the current game state.
func (s *Service) State() *storage.GameState {
	return s.state.Clone()
}

// Catalog returns the static reference data.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

func (s *Service) today() string {
	return s.now().Format(DateLayout)
}

func (s *Service) persist(ctx context.Context) error {
	if err := s.states.Save(ctx, s.state); err != nil {
		// In-memory state stays authoritative for the session; the caller
		// decides how to surface the failed mirror.
		return fmt.Errorf("persist game state: %w", err)
	}
	return nil
}

// ProfilePatch is a partial profile edit; nil fields are left untouched.
type ProfilePatch struct {
	Name   *string
	Rank   *Rank
	Height *float64
	Weight *float64
	Gender *Gender
}

// UpdateProfile shallow-merges the patch into the profile. The patch is
// validated as a whole before anything is applied, so a rejected command
// leaves the profile untouched. Reaching rank C or better unlocks the rank
// milestone badge.
func (s *Service) UpdateProfile(ctx context.Context, patch ProfilePatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	if patch.Rank != nil && !patch.Rank.IsValid() {
		return fmt.Errorf("invalid rank: %q", *patch.Rank)
	}
	if patch.Height != nil && *patch.Height <= 0 {
		return fmt.Errorf("height must be positive")
	}
	if patch.Weight != nil && *patch.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if patch.Gender != nil && !patch.Gender.IsValid() {
		return fmt.Errorf("invalid gender: %q", *patch.Gender)
	}

	p := s.state.UserProfile
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Rank != nil {
		p.Rank = string(*patch.Rank)
	}
	if patch.Height != nil {
		p.Height = *patch.Height
	}
	if patch.Weight != nil {
		p.Weight = *patch.Weight
	}
	if patch.Gender != nil {
		p.Gender = string(*patch.Gender)
	}

	if Rank(p.Rank).AtLeast(RankC) {
		s.unlockBadge(BadgeRankC)
	}

	return s.persist(ctx)
}

// ResetGameData clears all persisted state and reinitializes defaults.
// Irreversible.
func (s *Service) ResetGameData(ctx context.Context) error {
	if err := s.states.Clear(ctx); err != nil {
		return err
	}
	st := s.defaultState()
	NormalizeForNewDay(st, s.catalog.MandatoryQuest(), s.today())
	s.state = st
	return s.persist(ctx)
}

// unlockBadge grants a badge once; re-unlocking is a no-op.
func (s *Service) unlockBadge(id string) bool {
	if id == "" {
		return false
	}
	for _, b := range s.state.UnlockedBadges {
		if b == id {
			return false
		}
	}
	s.state.UnlockedBadges = append(s.state.UnlockedBadges, id)
	if b, ok := s.catalog.Badge(id); ok {
		s.notify.BadgeUnlocked(b)
	}
	return true
}
