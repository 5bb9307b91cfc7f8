package model

import (
	"encoding/json"
	"time"
)

// Profile holds a user's lifestyle attributes. Exactly one profile exists
// per user; it is created on first submission and updated in place.
type Profile struct {
	UserID    string     `json:"userId"`
	WorkStudy string     `json:"workStudy"`
	Hobbies   string     `json:"hobbies"`
	Sports    string     `json:"sports"`
	Location  string     `json:"location"`
	WeightKg  *float64   `json:"weightKg,omitempty"`
	HeightCm  *float64   `json:"heightCm,omitempty"`
	AgeYears  *int       `json:"ageYears,omitempty"`
	Reading   *string    `json:"reading,omitempty"`
	AIContext *string    `json:"aiContext,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// PlanDocument is the persisted unit of planning state, keyed by
// (UserID, DateKey). DateKey is either an ISO calendar date (YYYY-MM-DD)
// for daily plans or a synthetic key such as "long-term-2025" or
// "monthly-2025-09" for longer horizons. PlanJSON is an opaque payload
// whose shape varies by DateKey category.
type PlanDocument struct {
	UserID    string          `json:"userId"`
	DateKey   string          `json:"dateKey"`
	Timezone  string          `json:"timezone"`
	PlanJSON  json.RawMessage `json:"plan"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

// TaskType is the closed vocabulary for daily tasks.
type TaskType string

const (
	TaskWorkout TaskType = "workout"
	TaskMeal    TaskType = "meal"
	TaskReading TaskType = "reading"
	TaskWork    TaskType = "work"
	TaskRest    TaskType = "rest"
)

// ValidTaskType reports whether t is one of the five enumerated task types.
func ValidTaskType(t string) bool {
	switch TaskType(t) {
	case TaskWorkout, TaskMeal, TaskReading, TaskWork, TaskRest:
		return true
	}
	return false
}

// Task is one element of a daily plan's task list. Within a document the
// IDs are unique, Time matches HH:MM and Type is drawn from the closed
// vocabulary; the normalizer enforces all three before anything is stored.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Time        string   `json:"time"`
	Type        TaskType `json:"type"`
	Completed   bool     `json:"completed"`
	Description string   `json:"description,omitempty"`
}

// TimelineItem is one time block of the timeline-flavor daily plan. Its
// type vocabulary is wider than Task's.
type TimelineItem struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Priority string `json:"priority,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// TimelinePlan is the timeline-flavor daily plan as produced by the
// generator and stored verbatim under the plan's calendar date.
type TimelinePlan struct {
	Date     string         `json:"date"`
	Timezone string         `json:"timezone"`
	Items    []TimelineItem `json:"items"`
}

// LongTermPlan is the payload stored under a long-term-<year> key.
type LongTermPlan struct {
	Description string   `json:"description"`
	Milestones  []string `json:"milestones"`
}

// MonthlyPlan is the payload stored under a monthly-<year>-<month> key.
type MonthlyPlan struct {
	Description string   `json:"description"`
	KeyTasks    []string `json:"key_tasks"`
}

// Message is a stored contact-form submission.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Category  string    `json:"category"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
