package game

import "arise/internal/storage"

// MandatoryQuestID marks the singleton daily quest that resets every calendar
// day until claimed.
const MandatoryQuestID = "daily-quest"

// Badge ids granted by milestones.
const (
	BadgeFirstQuest = "first-quest"
	BadgeStreak7    = "streak-7"
	BadgeRankC      = "rank-c"
	BadgeLevel50    = "level-50"
)

// Catalog is the static quest/dungeon/badge reference data. The core reads it
// and never mutates it; active quests are always fresh copies.
type Catalog struct {
	Quests   []storage.Quest
	Dungeons []Dungeon
	Badges   []Badge
}

func DefaultCatalog() *Catalog {
	return &Catalog{
		Quests: []storage.Quest{
			{
				ID:          MandatoryQuestID,
				Title:       "Daily Quest: Path to Power",
				Description: "Complete these tasks to gain daily experience and become stronger.",
				XP:          100,
				Tasks: []storage.QuestTask{
					{Description: "100 Push-ups"},
					{Description: "100 Sit-ups"},
					{Description: "100 Squats"},
					{Description: "10km Run"},
				},
			},
			{
				ID:          "morning-stretch",
				Title:       "Morning Mobility",
				Description: "Loosen up before the day's hunt.",
				XP:          40,
				Tasks: []storage.QuestTask{
					{Description: "5 min neck and shoulder rolls"},
					{Description: "10 min full-body stretch"},
				},
			},
			{
				ID:          "core-crusher",
				Title:       "Core Crusher",
				Description: "Forge a core worthy of an A-rank gate.",
				XP:          70,
				Tasks: []storage.QuestTask{
					{Description: "60s plank"},
					{Description: "30 crunches"},
					{Description: "20 leg raises"},
				},
			},
			{
				ID:          "endurance-trial",
				Title:       "Hunter's Endurance Trial",
				Description: "Hold your pace when the dungeon stretches on.",
				XP:          85,
				Tasks: []storage.QuestTask{
					{Description: "5km run"},
					{Description: "50 jumping jacks"},
					{Description: "15 min cooldown walk"},
				},
			},
		},
		Dungeons: []Dungeon{
			{
				ID:          "dungeon-1",
				Title:       "Goblin Cave",
				Description: "A 30-day starter challenge to build foundational strength and endurance.",
				Duration:    30,
				Difficulty:  DifficultyBeginner,
				Type:        DungeonMastery,
				BadgeID:     "dungeon-beginner",
			},
			{
				ID:          "dungeon-2",
				Title:       "Demon Castle",
				Description: "A 60-day program focusing on intermediate techniques and increased intensity.",
				Duration:    60,
				Difficulty:  DifficultyIntermediate,
				Type:        DungeonMastery,
				BadgeID:     "dungeon-intermediate",
			},
			{
				ID:          "dungeon-3",
				Title:       "Volcanic Zone",
				Description: "A 90-day advanced gauntlet designed to push your limits to the absolute maximum.",
				Duration:    90,
				Difficulty:  DifficultyAdvanced,
				Type:        DungeonTransformation,
				BadgeID:     "dungeon-advanced",
			},
		},
		Badges: []Badge{
			{ID: BadgeFirstQuest, Name: "Quest Novice", Description: "Completed your first quest.", Icon: "⭐"},
			{ID: BadgeStreak7, Name: "Week Warrior", Description: "Maintained a 7-day workout streak.", Icon: "⚡"},
			{ID: "dungeon-beginner", Name: "Dungeon Crawler", Description: "Mastered the Goblin Cave.", Icon: "🛡️"},
			{ID: "dungeon-intermediate", Name: "Castle Breaker", Description: "Mastered the Demon Castle.", Icon: "🏰"},
			{ID: "dungeon-advanced", Name: "Flame Walker", Description: "Mastered the Volcanic Zone.", Icon: "🔥"},
			{ID: BadgeRankC, Name: "C-Rank Hunter", Description: "Achieved the rank of C.", Icon: "🏅"},
			{ID: BadgeLevel50, Name: "Level 50", Description: "Reached level 50.", Icon: "👑"},
		},
	}
}

// Quest looks up a catalog quest by id.
func (c *Catalog) Quest(id string) (storage.Quest, bool) {
	for _, q := range c.Quests {
		if q.ID == id {
			return q, true
		}
	}
	return storage.Quest{}, false
}

// Dungeon looks up a catalog dungeon by id.
func (c *Catalog) Dungeon(id string) (Dungeon, bool) {
	for _, d := range c.Dungeons {
		if d.ID == id {
			return d, true
		}
	}
	return Dungeon{}, false
}

// Badge looks up a catalog badge by id.
func (c *Catalog) Badge(id string) (Badge, bool) {
	for _, b := range c.Badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// MandatoryQuest returns the daily quest template.
func (c *Catalog) MandatoryQuest() storage.Quest {
	q, _ := c.Quest(MandatoryQuestID)
	return q
}

// FreshQuest returns a copy of a catalog quest with every task incomplete.
func FreshQuest(q storage.Quest) storage.Quest {
	out := q.Clone()
	for i := range out.Tasks {
		out.Tasks[i].Completed = false
	}
	return out
}
