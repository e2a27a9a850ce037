package game

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"arise/internal/storage"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(days int) {
	c.t = c.t.AddDate(0, 0, days)
}

func newTestRepo(t *testing.T) *storage.StateRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewStateRepo(db)
}

func newTestService(t *testing.T) (*Service, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)}
	svc, err := Load(context.Background(), newTestRepo(t), WithClock(clock.Now))
	if err != nil {
		t.Fatalf("load service: %v", err)
	}
	return svc, clock
}

func completeAllTasks(t *testing.T, svc *Service, questID string) {
	t.Helper()
	ctx := context.Background()
	var quest *storage.Quest
	for _, q := range svc.State().Quests {
		if q.ID == questID {
			quest = &q
			break
		}
	}
	if quest == nil {
		t.Fatalf("quest %s not active", questID)
	}
	for i := range quest.Tasks {
		if err := svc.SetTask(ctx, questID, i, true); err != nil {
			t.Fatalf("set task %d: %v", i, err)
		}
	}
}

func TestLoadFirstRunHasDailyQuest(t *testing.T) {
	svc, _ := newTestService(t)

	st := svc.State()
	if st.UserProfile.Level != 1 || st.UserProfile.Rank != "E" {
		t.Fatalf("profile=%+v, want fresh level-1 E-rank hunter", st.UserProfile)
	}
	if len(st.Quests) != 1 || st.Quests[0].ID != MandatoryQuestID {
		t.Fatalf("quests=%+v, want exactly the daily quest", st.Quests)
	}
}

func TestAcceptQuest(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	q, err := svc.AcceptQuest(ctx, "core-crusher")
	if err != nil {
		t.Fatalf("AcceptQuest: %v", err)
	}
	for _, task := range q.Tasks {
		if task.Completed {
			t.Fatalf("accepted quest task %q should start incomplete", task.Description)
		}
	}

	// Second accept is a named rejection and leaves the set unchanged.
	before := len(svc.State().Quests)
	_, err = svc.AcceptQuest(ctx, "core-crusher")
	if !errors.Is(err, ErrQuestAlreadyActive) {
		t.Fatalf("err=%v, want ErrQuestAlreadyActive", err)
	}
	if got := len(svc.State().Quests); got != before {
		t.Fatalf("active quests=%d, want %d", got, before)
	}

	if _, err := svc.AcceptQuest(ctx, "no-such-quest"); !errors.Is(err, ErrUnknownQuest) {
		t.Fatalf("err=%v, want ErrUnknownQuest", err)
	}
	if _, err := svc.AcceptQuest(ctx, MandatoryQuestID); !errors.Is(err, ErrMandatoryQuest) {
		t.Fatalf("err=%v, want ErrMandatoryQuest", err)
	}
}

func TestSetTaskBounds(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.SetTask(ctx, MandatoryQuestID, 0, true); err != nil {
		t.Fatalf("SetTask: %v", err)
	}
	if !svc.State().Quests[0].Tasks[0].Completed {
		t.Fatalf("task 0 should be completed")
	}

	if err := svc.SetTask(ctx, MandatoryQuestID, 99, true); !errors.Is(err, ErrTaskOutOfRange) {
		t.Fatalf("err=%v, want ErrTaskOutOfRange", err)
	}
	if err := svc.SetTask(ctx, MandatoryQuestID, -1, true); !errors.Is(err, ErrTaskOutOfRange) {
		t.Fatalf("err=%v, want ErrTaskOutOfRange", err)
	}
	if err := svc.SetTask(ctx, "not-active", 0, true); !errors.Is(err, ErrQuestNotActive) {
		t.Fatalf("err=%v, want ErrQuestNotActive", err)
	}
}

func TestClaimRequiresCompleteTasks(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.ClaimReward(ctx, MandatoryQuestID); !errors.Is(err, ErrTasksIncomplete) {
		t.Fatalf("err=%v, want ErrTasksIncomplete", err)
	}
	if _, err := svc.ClaimReward(ctx, "not-active"); !errors.Is(err, ErrQuestNotActive) {
		t.Fatalf("err=%v, want ErrQuestNotActive", err)
	}
}

func TestClaimDailyQuest(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	completeAllTasks(t, svc, MandatoryQuestID)
	res, err := svc.ClaimReward(ctx, MandatoryQuestID)
	if err != nil {
		t.Fatalf("ClaimReward: %v", err)
	}
	if res.XPAwarded != 100 {
		t.Fatalf("xp awarded=%d, want 100", res.XPAwarded)
	}
	if res.LevelUp {
		t.Fatalf("100 xp against a 200 threshold should not level up")
	}

	st := svc.State()
	if st.UserProfile.XP != 100 {
		t.Fatalf("xp=%d, want 100", st.UserProfile.XP)
	}
	if st.LastDailyQuestCompletionDate != "2024-01-02" {
		t.Fatalf("completion date=%q, want 2024-01-02", st.LastDailyQuestCompletionDate)
	}
	if len(st.Quests) != 0 {
		t.Fatalf("quests=%+v, want empty after claiming", st.Quests)
	}
	if st.Analytics.CurrentStreak != 1 || st.Analytics.QuestsCompleted != 1 {
		t.Fatalf("analytics=%+v, want streak=1 questsCompleted=1", st.Analytics)
	}

	// First claim unlocks the novice badge.
	found := false
	for _, id := range st.UnlockedBadges {
		if id == BadgeFirstQuest {
			found = true
		}
	}
	if !found {
		t.Fatalf("badges=%v, want %s", st.UnlockedBadges, BadgeFirstQuest)
	}

	// Claiming again the same day is rejected: the quest is gone.
	if _, err := svc.ClaimReward(ctx, MandatoryQuestID); !errors.Is(err, ErrQuestNotActive) {
		t.Fatalf("err=%v, want ErrQuestNotActive", err)
	}
}

func TestClaimLevelUpCarriesRemainder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Two side quests plus the daily: 100 + 70 + 85 = 255 > 200.
	for _, id := range []string{"core-crusher", "endurance-trial"} {
		if _, err := svc.AcceptQuest(ctx, id); err != nil {
			t.Fatalf("accept %s: %v", id, err)
		}
	}
	for _, id := range []string{MandatoryQuestID, "core-crusher", "endurance-trial"} {
		completeAllTasks(t, svc, id)
		if _, err := svc.ClaimReward(ctx, id); err != nil {
			t.Fatalf("claim %s: %v", id, err)
		}
	}

	p := svc.State().UserProfile
	if p.Level != 2 {
		t.Fatalf("level=%d, want 2", p.Level)
	}
	if p.XP != 55 {
		t.Fatalf("xp=%d, want 55 (255-200 carried)", p.XP)
	}
	if p.XPToNextLevel != 300 {
		t.Fatalf("threshold=%d, want 300", p.XPToNextLevel)
	}
}

func TestDailyQuestRegeneratesNextDay(t *testing.T) {
	repo := newTestRepo(t)
	clock := &fakeClock{t: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)}
	ctx := context.Background()

	svc, err := Load(ctx, repo, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := svc.AcceptQuest(ctx, "morning-stretch"); err != nil {
		t.Fatalf("accept: %v", err)
	}
	completeAllTasks(t, svc, MandatoryQuestID)
	if _, err := svc.ClaimReward(ctx, MandatoryQuestID); err != nil {
		t.Fatalf("claim: %v", err)
	}

	// Same-day restart: the claimed daily quest must not come back.
	svc2, err := Load(ctx, repo, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	for _, q := range svc2.State().Quests {
		if q.ID == MandatoryQuestID {
			t.Fatalf("daily quest regenerated on the same day")
		}
	}

	// Next-day restart: fresh daily quest only, side quests discarded.
	clock.Advance(1)
	svc3, err := Load(ctx, repo, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("reload next day: %v", err)
	}
	st := svc3.State()
	if st.LastDailyQuestCompletionDate != "" {
		t.Fatalf("completion date=%q, want cleared", st.LastDailyQuestCompletionDate)
	}
	if len(st.Quests) != 1 || st.Quests[0].ID != MandatoryQuestID {
		t.Fatalf("quests=%+v, want exactly a fresh daily quest", st.Quests)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	name := "Jin-Woo"
	height := 179.0
	if err := svc.UpdateProfile(ctx, ProfilePatch{Name: &name, Height: &height}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	p := svc.State().UserProfile
	if p.Name != "Jin-Woo" || p.Height != 179.0 {
		t.Fatalf("profile=%+v, want merged patch", p)
	}
	if p.Rank != "E" {
		t.Fatalf("rank=%q, want untouched E", p.Rank)
	}

	bad := -3.0
	if err := svc.UpdateProfile(ctx, ProfilePatch{Weight: &bad}); err == nil {
		t.Fatalf("expected error for negative weight")
	}

	rank := RankB
	if err := svc.UpdateProfile(ctx, ProfilePatch{Rank: &rank}); err != nil {
		t.Fatalf("UpdateProfile rank: %v", err)
	}
	// Reaching C or better unlocks the rank milestone.
	found := false
	for _, id := range svc.State().UnlockedBadges {
		if id == BadgeRankC {
			found = true
		}
	}
	if !found {
		t.Fatalf("badges=%v, want %s after reaching rank B", svc.State().UnlockedBadges, BadgeRankC)
	}
}

func TestUpdateProfileRejectedPatchLeavesStateUntouched(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	before := svc.State().UserProfile

	// A patch with one valid and one invalid field must apply neither.
	name := "Jin-Woo"
	weight := -3.0
	if err := svc.UpdateProfile(ctx, ProfilePatch{Name: &name, Weight: &weight}); err == nil {
		t.Fatalf("expected error for negative weight")
	}

	after := svc.State().UserProfile
	if *after != *before {
		t.Fatalf("profile=%+v, want untouched %+v after rejected patch", after, before)
	}
}

func TestMutationsSurfacePersistenceFailure(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	clock := &fakeClock{t: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)}
	svc, err := Load(ctx, storage.NewStateRepo(db), WithClock(clock.Now))
	if err != nil {
		t.Fatalf("load service: %v", err)
	}

	// With the store gone, every mutation must report the failed mirror.
	if err := db.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	err = svc.SetTask(ctx, MandatoryQuestID, 0, true)
	if err == nil || !strings.Contains(err.Error(), "persist game state") {
		t.Fatalf("err=%v, want wrapped persist failure", err)
	}

	// In-memory state stays authoritative for the session.
	if !svc.State().Quests[0].Tasks[0].Completed {
		t.Fatalf("in-memory mutation lost on persistence failure")
	}

	if _, err := svc.AcceptQuest(ctx, "core-crusher"); err == nil || !strings.Contains(err.Error(), "persist game state") {
		t.Fatalf("err=%v, want wrapped persist failure from AcceptQuest", err)
	}
}

func TestResetGameData(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	completeAllTasks(t, svc, MandatoryQuestID)
	if _, err := svc.ClaimReward(ctx, MandatoryQuestID); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if err := svc.ResetGameData(ctx); err != nil {
		t.Fatalf("ResetGameData: %v", err)
	}

	st := svc.State()
	if st.UserProfile.XP != 0 || st.UserProfile.Level != 1 {
		t.Fatalf("profile=%+v, want defaults", st.UserProfile)
	}
	if len(st.UnlockedBadges) != 0 {
		t.Fatalf("badges=%v, want empty", st.UnlockedBadges)
	}
	if len(st.Quests) != 1 || st.Quests[0].ID != MandatoryQuestID {
		t.Fatalf("quests=%+v, want fresh daily quest", st.Quests)
	}
}

func TestRecordWorkoutStreak(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	for day := 0; day < 7; day++ {
		if day > 0 {
			clock.Advance(1)
		}
		if err := svc.RecordWorkout(ctx, 1.0); err != nil {
			t.Fatalf("RecordWorkout day %d: %v", day, err)
		}
	}

	a := svc.State().Analytics
	if a.CurrentStreak != 7 {
		t.Fatalf("streak=%d, want 7", a.CurrentStreak)
	}
	if a.TotalWorkouts != 7 {
		t.Fatalf("workouts=%d, want 7", a.TotalWorkouts)
	}
	found := false
	for _, id := range svc.State().UnlockedBadges {
		if id == BadgeStreak7 {
			found = true
		}
	}
	if !found {
		t.Fatalf("badges=%v, want %s", svc.State().UnlockedBadges, BadgeStreak7)
	}

	// A skipped day resets the streak.
	clock.Advance(2)
	if err := svc.RecordWorkout(ctx, 0.5); err != nil {
		t.Fatalf("RecordWorkout after gap: %v", err)
	}
	if got := svc.State().Analytics.CurrentStreak; got != 1 {
		t.Fatalf("streak=%d, want 1 after a gap", got)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	svc, _ := newTestService(t)

	snap := svc.State()
	snap.UserProfile.XP = 999_999
	snap.Quests[0].Tasks[0].Completed = true

	st := svc.State()
	if st.UserProfile.XP == 999_999 {
		t.Fatalf("mutating a snapshot leaked into the store")
	}
	if st.Quests[0].Tasks[0].Completed {
		t.Fatalf("mutating a snapshot quest leaked into the store")
	}
}
