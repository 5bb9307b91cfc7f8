package planner

import (
	"strings"

	"github.com/kamyarmaaf/planner/internal/model"
)

// SampleTimeline returns the deterministic fallback timeline plan: 11 fixed
// blocks covering a full day, lightly customized from the profile. It is the
// guaranteed output when no model credential is configured and the recovery
// output when a model attempt fails.
func SampleTimeline(date, timezone string, p *model.Profile) model.TimelinePlan {
	items := []model.TimelineItem{
		{Start: "07:00", End: "07:30", Title: "Morning routine", Type: "other", Priority: "medium"},
		{Start: "07:30", End: "08:00", Title: "Breakfast", Type: "meal", Priority: "high"},
		{Start: "08:00", End: "12:00", Title: "Work/Study time", Type: "work", Priority: "high"},
		{Start: "12:00", End: "13:00", Title: "Lunch break", Type: "meal", Priority: "high"},
		{Start: "13:00", End: "17:00", Title: "Work/Study time", Type: "work", Priority: "high"},
		{Start: "17:00", End: "18:00", Title: "Exercise", Type: "exercise", Priority: "medium"},
		{Start: "18:00", End: "19:00", Title: "Personal time", Type: "break", Priority: "low"},
		{Start: "19:00", End: "20:00", Title: "Dinner", Type: "meal", Priority: "high"},
		{Start: "20:00", End: "21:00", Title: "Reading/Hobbies", Type: "reading", Priority: "low"},
		{Start: "21:00", End: "22:00", Title: "Wind down", Type: "break", Priority: "low"},
		{Start: "22:00", End: "07:00", Title: "Sleep", Type: "sleep", Priority: "high"},
	}

	if strings.Contains(strings.ToLower(p.Sports), "yoga") {
		items[5] = model.TimelineItem{Start: "17:00", End: "18:00", Title: "Yoga session", Type: "exercise", Priority: "medium"}
	}
	if p.Reading != nil && strings.TrimSpace(*p.Reading) != "" {
		items[8] = model.TimelineItem{Start: "20:00", End: "21:00", Title: "Reading time", Type: "reading", Priority: "medium"}
	}

	return model.TimelinePlan{Date: date, Timezone: timezone, Items: items}
}

// SampleDailyTasks is the deterministic fallback for the daily-tasks flavor
// when no model credential is configured.
func SampleDailyTasks() []model.Task {
	return []model.Task{
		{ID: "1", Title: "Morning Workout", Time: "07:00", Type: model.TaskWorkout, Description: "20min jog + stretching"},
		{ID: "2", Title: "Healthy Breakfast", Time: "08:00", Type: model.TaskMeal, Description: "Oatmeal with berries"},
		{ID: "3", Title: "Deep Work", Time: "09:00", Type: model.TaskWork, Description: "Focus block on priority task"},
	}
}

// DefaultDailyTasks is the fixed nine-task full-day template materialized by
// the task update path when no document exists yet for the target date.
func DefaultDailyTasks() []model.Task {
	return []model.Task{
		{ID: "1", Title: "Sleep", Time: "00:00", Type: model.TaskRest, Description: "Full night's rest"},
		{ID: "2", Title: "Morning Routine", Time: "07:00", Type: model.TaskRest, Description: "Wake up, hydrate, stretch"},
		{ID: "3", Title: "Morning Workout", Time: "07:30", Type: model.TaskWorkout, Description: "30min cardio + stretching"},
		{ID: "4", Title: "Breakfast", Time: "08:30", Type: model.TaskMeal, Description: "Balanced breakfast"},
		{ID: "5", Title: "Deep Work", Time: "09:00", Type: model.TaskWork, Description: "Focus block on priority task"},
		{ID: "6", Title: "Lunch", Time: "12:30", Type: model.TaskMeal, Description: "Lunch away from the desk"},
		{ID: "7", Title: "Afternoon Work", Time: "13:30", Type: model.TaskWork, Description: "Meetings and lighter tasks"},
		{ID: "8", Title: "Evening Reading", Time: "20:00", Type: model.TaskReading, Description: "Reading time"},
		{ID: "9", Title: "Wind Down", Time: "22:00", Type: model.TaskRest, Description: "Screens off, prepare for sleep"},
	}
}
