package storage

// QuestTask is a single completable line item inside a quest.
// Order within a quest is the display order and is fixed once the quest is added.
type QuestTask struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Quest is a unit of rewardable work. A quest is claimable only once every
// task is completed.
type Quest struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	XP          int         `json:"xp"`
	Tasks       []QuestTask `json:"tasks"`
}

// AllTasksCompleted reports whether the quest is ready for a reward claim.
func (q Quest) AllTasksCompleted() bool {
	for _, t := range q.Tasks {
		if !t.Completed {
			return false
		}
	}
	return len(q.Tasks) > 0
}

// Clone returns a deep copy of the quest.
func (q Quest) Clone() Quest {
	out := q
	out.Tasks = make([]QuestTask, len(q.Tasks))
	copy(out.Tasks, q.Tasks)
	return out
}

// UserProfile is the hunter's identity and progression record.
type UserProfile struct {
	Name          string  `json:"name"`
	Level         int     `json:"level"`
	Rank          string  `json:"rank"`
	XP            int     `json:"xp"`
	XPToNextLevel int     `json:"xpToNextLevel"`
	Height        float64 `json:"height,omitempty"`
	Weight        float64 `json:"weight,omitempty"`
	Gender        string  `json:"gender,omitempty"`
}

// WeekdayActivity is one bar of the weekly activity chart.
type WeekdayActivity struct {
	Day      string `json:"day"`
	Workouts int    `json:"workouts"`
}

// PersonalRecord is a best-effort display value for one exercise.
type PersonalRecord struct {
	Exercise string `json:"exercise"`
	Value    string `json:"value"`
}

// Analytics tracks workout history used by the analytics page and by
// streak/badge logic.
type Analytics struct {
	TotalWorkouts   int               `json:"totalWorkouts"`
	CurrentStreak   int               `json:"currentStreak"`
	HoursTrained    float64           `json:"hoursTrained"`
	WeeklyActivity  []WeekdayActivity `json:"weeklyActivity"`
	PersonalRecords []PersonalRecord  `json:"personalRecords"`

	// LastWorkoutDate (YYYY-MM-DD) gates streak increments to one per day.
	LastWorkoutDate string `json:"lastWorkoutDate,omitempty"`
	// QuestsCompleted counts reward claims, for milestone badges.
	QuestsCompleted int `json:"questsCompleted"`
}

// GameState is the aggregate root: the exact unit of persistence.
// It is serialized atomically as one JSON value under a single key.
type GameState struct {
	UserProfile                  *UserProfile `json:"userProfile"`
	Quests                       []Quest      `json:"quests"`
	LastDailyQuestCompletionDate string       `json:"lastDailyQuestCompletionDate,omitempty"`
	ActiveDungeonID              string       `json:"activeDungeonId,omitempty"`
	MasteredDungeons             []string     `json:"masteredDungeons"`
	DungeonProgress              int          `json:"dungeonProgress"`
	LastDungeonProgressDate      string       `json:"lastDungeonProgressDate,omitempty"`
	UnlockedBadges               []string     `json:"unlockedBadges"`
	Analytics                    *Analytics   `json:"analytics"`
}

const (
	DefaultHunterName    = "Hunter"
	DefaultRank          = "E"
	DefaultXPToNextLevel = 200
)

var weekdayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// NewGameState returns a fresh first-run state.
func NewGameState() *GameState {
	st := &GameState{
		UserProfile: &UserProfile{
			Name:          DefaultHunterName,
			Level:         1,
			Rank:          DefaultRank,
			XP:            0,
			XPToNextLevel: DefaultXPToNextLevel,
		},
	}
	st.Normalize()
	return st
}

// NewAnalytics returns an empty analytics record with the full week laid out.
func NewAnalytics() *Analytics {
	a := &Analytics{PersonalRecords: []PersonalRecord{}}
	for _, d := range weekdayOrder {
		a.WeeklyActivity = append(a.WeeklyActivity, WeekdayActivity{Day: d})
	}
	return a
}

// Normalize backfills missing fields after deserialization so a state saved by
// an older schema never reaches callers half-formed.
func (s *GameState) Normalize() {
	if s.UserProfile == nil {
		s.UserProfile = &UserProfile{
			Name:          DefaultHunterName,
			Level:         1,
			Rank:          DefaultRank,
			XPToNextLevel: DefaultXPToNextLevel,
		}
	}
	if s.UserProfile.Level < 1 {
		s.UserProfile.Level = 1
	}
	if s.UserProfile.XPToNextLevel <= 0 {
		s.UserProfile.XPToNextLevel = DefaultXPToNextLevel
	}
	if s.UserProfile.Rank == "" {
		s.UserProfile.Rank = DefaultRank
	}
	if s.Quests == nil {
		s.Quests = []Quest{}
	}
	if s.MasteredDungeons == nil {
		s.MasteredDungeons = []string{}
	}
	if s.UnlockedBadges == nil {
		s.UnlockedBadges = []string{}
	}
	if s.Analytics == nil {
		s.Analytics = NewAnalytics()
	}
	if len(s.Analytics.WeeklyActivity) == 0 {
		s.Analytics.WeeklyActivity = NewAnalytics().WeeklyActivity
	}
	if s.Analytics.PersonalRecords == nil {
		s.Analytics.PersonalRecords = []PersonalRecord{}
	}
}

// Clone returns a deep copy, used to hand immutable snapshots to readers.
func (s *GameState) Clone() *GameState {
	out := *s
	if s.UserProfile != nil {
		p := *s.UserProfile
		out.UserProfile = &p
	}
	out.Quests = make([]Quest, len(s.Quests))
	for i := range s.Quests {
		out.Quests[i] = s.Quests[i].Clone()
	}
	out.MasteredDungeons = append([]string(nil), s.MasteredDungeons...)
	out.UnlockedBadges = append([]string(nil), s.UnlockedBadges...)
	if s.Analytics != nil {
		a := *s.Analytics
		a.WeeklyActivity = append([]WeekdayActivity(nil), s.Analytics.WeeklyActivity...)
		a.PersonalRecords = append([]PersonalRecord(nil), s.Analytics.PersonalRecords...)
		out.Analytics = &a
	}
	return &out
}
