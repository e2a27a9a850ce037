package game

import "strings"

// Rank is the hunter's coarse tier label, weakest to strongest.
// It is set by explicit profile edits and is not derived from level.
type Rank string

const (
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

var rankOrder = []Rank{RankE, RankD, RankC, RankB, RankA, RankS}

func (r Rank) IsValid() bool {
	return r.index() >= 0
}

func (r Rank) index() int {
	for i, candidate := range rankOrder {
		if candidate == r {
			return i
		}
	}
	return -1
}

// AtLeast reports whether r is the given rank or a stronger one.
func (r Rank) AtLeast(other Rank) bool {
	ri, oi := r.index(), other.index()
	return ri >= 0 && oi >= 0 && ri >= oi
}

// ParseRank parses user input to a Rank.
func ParseRank(input string) (Rank, bool) {
	r := Rank(strings.ToUpper(strings.TrimSpace(input)))
	return r, r.IsValid()
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

type DungeonType string

const (
	DungeonMastery        DungeonType = "Mastery"
	DungeonTransformation DungeonType = "Transformation"
)

// Dungeon is a static catalog entry for a long-duration challenge program,
// advanced by at most one day-increment per calendar day.
type Dungeon struct {
	ID          string
	Title       string
	Description string
	Duration    int // days
	Difficulty  Difficulty
	Type        DungeonType
	BadgeID     string // granted on mastery
}

// Badge is a permanent, idempotently grantable achievement marker.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
}
