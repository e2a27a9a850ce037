package game

import "errors"

// Invalid commands are rejected with named errors rather than silently
// ignored, so callers can tell "nothing to do" apart from "refused".
var (
	ErrUnknownQuest       = errors.New("unknown quest")
	ErrQuestAlreadyActive = errors.New("quest is already active")
	ErrMandatoryQuest     = errors.New("the daily quest cannot be accepted manually")
	ErrQuestNotActive     = errors.New("quest is not in the active set")
	ErrTaskOutOfRange     = errors.New("task index out of range")
	ErrTasksIncomplete    = errors.New("all tasks must be completed before claiming")

	ErrUnknownDungeon         = errors.New("unknown dungeon")
	ErrDungeonAlreadyActive   = errors.New("another dungeon is already active")
	ErrDungeonAlreadyMastered = errors.New("dungeon is already mastered")
	ErrNoActiveDungeon        = errors.New("no dungeon is active")
	ErrDungeonNotActive       = errors.New("dungeon is not the active one")
	ErrAlreadyProgressedToday = errors.New("dungeon already progressed today")
	ErrDungeonComplete        = errors.New("dungeon duration reached; master it to finish")
	ErrDungeonNotComplete     = errors.New("dungeon duration not yet reached")
)
