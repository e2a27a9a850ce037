package game

import "arise/internal/storage"

// DateLayout is the calendar-day stamp used for all daily gating. Lexicographic
// comparison of these stamps matches chronological order.
const DateLayout = "2006-01-02"

// NormalizeForNewDay rolls stale daily state over to a fresh day. It is applied
// once at load time, before the state becomes visible to readers.
//
// If the daily quest was claimed on an earlier day, the completion date is
// cleared and the active set is replaced with a single fresh daily quest;
// side quests deliberately do not survive the day boundary. If the daily quest
// is simply missing (corrupt or partial state) and was not claimed today, it is
// reinserted at the front, preserving the order of the other quests.
//
// Reports whether the state was changed.
func NormalizeForNewDay(st *storage.GameState, mandatory storage.Quest, today string) bool {
	if st.LastDailyQuestCompletionDate != "" && st.LastDailyQuestCompletionDate < today {
		st.LastDailyQuestCompletionDate = ""
		st.Quests = []storage.Quest{FreshQuest(mandatory)}
		return true
	}

	if st.LastDailyQuestCompletionDate == today {
		return false
	}

	for _, q := range st.Quests {
		if q.ID == mandatory.ID {
			return false
		}
	}

	st.Quests = append([]storage.Quest{FreshQuest(mandatory)}, st.Quests...)
	return true
}
