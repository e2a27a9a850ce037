package game

import (
	"context"
	"fmt"
	"strings"

	"arise/internal/storage"
)

// RecordWorkout logs a training session for today: bumps the workout counters,
// the weekday activity chart, and the day streak.
func (s *Service) RecordWorkout(ctx context.Context, hours float64) error {
	if hours < 0 {
		return fmt.Errorf("hours must not be negative")
	}

	a := s.state.Analytics
	a.TotalWorkouts++
	a.HoursTrained += hours
	s.bumpWeekday()
	s.touchWorkoutDay(s.today())
	s.checkMilestones()

	return s.persist(ctx)
}

// SetPersonalRecord upserts the display value for one exercise.
func (s *Service) SetPersonalRecord(ctx context.Context, exercise, value string) error {
	exercise = strings.TrimSpace(exercise)
	value = strings.TrimSpace(value)
	if exercise == "" || value == "" {
		return fmt.Errorf("exercise and value are required")
	}

	a := s.state.Analytics
	for i := range a.PersonalRecords {
		if strings.EqualFold(a.PersonalRecords[i].Exercise, exercise) {
			a.PersonalRecords[i].Value = value
			return s.persist(ctx)
		}
	}
	a.PersonalRecords = append(a.PersonalRecords, storage.PersonalRecord{Exercise: exercise, Value: value})
	return s.persist(ctx)
}

// touchWorkoutDay maintains the consecutive-day streak. Multiple workouts on
// the same day count once.
func (s *Service) touchWorkoutDay(today string) {
	a := s.state.Analytics
	if a.LastWorkoutDate == today {
		return
	}
	yesterday := s.now().AddDate(0, 0, -1).Format(DateLayout)
	if a.LastWorkoutDate == yesterday {
		a.CurrentStreak++
	} else {
		a.CurrentStreak = 1
	}
	a.LastWorkoutDate = today
}

func (s *Service) bumpWeekday() {
	day := s.now().Format("Mon")
	a := s.state.Analytics
	for i := range a.WeeklyActivity {
		if a.WeeklyActivity[i].Day == day {
			a.WeeklyActivity[i].Workouts++
			return
		}
	}
	a.WeeklyActivity = append(a.WeeklyActivity, storage.WeekdayActivity{Day: day, Workouts: 1})
}
