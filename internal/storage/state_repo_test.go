package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStateRepo(t *testing.T) *StateRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStateRepo(db)
}

func TestStateRepoLoadMissing(t *testing.T) {
	repo := newTestStateRepo(t)

	st, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestStateRepoRoundTrip(t *testing.T) {
	repo := newTestStateRepo(t)
	ctx := context.Background()

	st := NewGameState()
	st.UserProfile.Name = "Jin-Woo"
	st.UserProfile.Level = 12
	st.UserProfile.Rank = "C"
	st.UserProfile.XP = 340
	st.UserProfile.XPToNextLevel = 1297
	st.UserProfile.Height = 179
	st.UserProfile.Gender = "male"
	st.Quests = []Quest{
		{
			ID:    "daily-quest",
			Title: "Daily Quest: Path to Power",
			XP:    100,
			Tasks: []QuestTask{
				{Description: "100 Push-ups", Completed: true},
				{Description: "10km Run", Completed: false},
			},
		},
	}
	st.LastDailyQuestCompletionDate = "2024-01-01"
	st.ActiveDungeonID = "dungeon-2"
	st.DungeonProgress = 17
	st.LastDungeonProgressDate = "2024-01-02"
	st.MasteredDungeons = []string{"dungeon-1"}
	st.UnlockedBadges = []string{"first-quest", "dungeon-beginner"}
	st.Analytics.TotalWorkouts = 42
	st.Analytics.CurrentStreak = 12
	st.Analytics.HoursTrained = 31.5
	st.Analytics.PersonalRecords = []PersonalRecord{{Exercise: "Plank", Value: "3 min 20s"}}

	require.NoError(t, repo.Save(ctx, st))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, st, loaded)
}

func TestStateRepoOverwritesSingleKey(t *testing.T) {
	repo := newTestStateRepo(t)
	ctx := context.Background()

	first := NewGameState()
	first.UserProfile.Name = "First"
	require.NoError(t, repo.Save(ctx, first))

	second := NewGameState()
	second.UserProfile.Name = "Second"
	require.NoError(t, repo.Save(ctx, second))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Second", loaded.UserProfile.Name)
}

func TestStateRepoClear(t *testing.T) {
	repo := newTestStateRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, NewGameState()))
	require.NoError(t, repo.Clear(ctx))

	st, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestLoadBackfillsPartialState(t *testing.T) {
	repo := newTestStateRepo(t)
	ctx := context.Background()

	// Simulate a blob written by an older schema: top-level fields missing.
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO game_state (key, data) VALUES (?, ?)`,
		StateKey, `{"userProfile":{"name":"Old","level":3,"xp":40,"xpToNextLevel":450}}`)
	require.NoError(t, err)

	st, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, "Old", st.UserProfile.Name)
	assert.Equal(t, "E", st.UserProfile.Rank, "missing rank backfilled")
	assert.NotNil(t, st.Quests)
	assert.NotNil(t, st.MasteredDungeons)
	assert.NotNil(t, st.UnlockedBadges)
	require.NotNil(t, st.Analytics)
	assert.Len(t, st.Analytics.WeeklyActivity, 7)
}
