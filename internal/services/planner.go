package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/kamyarmaaf/planner/internal/model"
	"github.com/kamyarmaaf/planner/internal/planner"
	"github.com/kamyarmaaf/planner/internal/store"
)

// PlannerService orchestrates plan generation, retrieval and task updates.
//
// The store is last-writer-wins at document granularity; within this
// process, a per-(userID, dateKey) mutex serializes the read-modify-write of
// task updates and singleflight collapses concurrent generations for the
// same key. Races across service instances remain possible and are accepted.
type PlannerService struct {
	store store.Store
	gen   *planner.Generator

	genGroup singleflight.Group

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewPlannerService(s store.Store, gen *planner.Generator) *PlannerService {
	return &PlannerService{store: s, gen: gen, locks: make(map[string]*sync.Mutex)}
}

func planKey(userID, dateKey string) string { return userID + "|" + dateKey }

// keyLock returns the mutex guarding one (userID, dateKey) pair. The map
// grows with distinct keys touched by this process; bounded in practice by
// active users times dates.
func (s *PlannerService) keyLock(userID, dateKey string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := planKey(userID, dateKey)
	l, ok := s.locks[k]
	if !ok {
		l = &sync.Mutex{}
		s.locks[k] = l
	}
	return l
}

// GenerateTimeline builds the timeline-flavor plan for the user's date,
// persists it under the calendar-date key and returns it. Requires a
// profile; generation itself cannot fail. Concurrent calls for the same
// (user, date) share a single generation.
func (s *PlannerService) GenerateTimeline(ctx context.Context, userID, date, timezone string) (*model.TimelinePlan, error) {
	profile, err := s.store.Profiles().Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	v, err, _ := s.genGroup.Do(planKey(userID, date), func() (interface{}, error) {
		plan := s.gen.DailyTimeline(ctx, profile, date, timezone)
		payload, err := json.Marshal(plan)
		if err != nil {
			return nil, err
		}
		if _, err := s.store.Plans().Upsert(ctx, &model.PlanDocument{
			UserID:   userID,
			DateKey:  date,
			Timezone: timezone,
			PlanJSON: payload,
		}); err != nil {
			return nil, fmt.Errorf("persist plan: %w", err)
		}
		return &plan, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.TimelinePlan), nil
}

// GenerateDailyTasks builds the daily-tasks-flavor plan for today. A
// model-produced list is normalized and persisted; the credential-less or
// failed-attempt fallback list is returned without touching the store.
func (s *PlannerService) GenerateDailyTasks(ctx context.Context, userID, date, timezone string) ([]model.Task, error) {
	profile, err := s.store.Profiles().Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	v, err, _ := s.genGroup.Do(planKey(userID, date)+"|tasks", func() (interface{}, error) {
		tasks, fromModel := s.gen.DailyTasks(ctx, profile, date, timezone)
		if !fromModel {
			return tasks, nil
		}
		payload, err := json.Marshal(map[string][]model.Task{"daily_tasks": tasks})
		if err != nil {
			return nil, err
		}
		if _, err := s.store.Plans().Upsert(ctx, &model.PlanDocument{
			UserID:   userID,
			DateKey:  date,
			Timezone: timezone,
			PlanJSON: payload,
		}); err != nil {
			return nil, fmt.Errorf("persist plan: %w", err)
		}
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Task), nil
}

// GetPlan returns the stored document for (userID, dateKey), verifying the
// payload still parses. A corrupt payload is reported, never returned as an
// empty document.
func (s *PlannerService) GetPlan(ctx context.Context, userID, dateKey string) (*model.PlanDocument, error) {
	doc, err := s.store.Plans().Get(ctx, userID, dateKey)
	if err != nil {
		return nil, err
	}
	if !json.Valid(doc.PlanJSON) {
		return nil, fmt.Errorf("plan %s/%s: %w", userID, dateKey, model.ErrCorruptPlan)
	}
	return doc, nil
}

// ComprehensiveInput carries the optional sections of a comprehensive save.
type ComprehensiveInput struct {
	LongTerm   *model.LongTermPlan
	Monthly    *model.MonthlyPlan
	DailyTasks []model.Task
}

// ComprehensiveSaved reports which sections a save wrote.
type ComprehensiveSaved struct {
	LongTerm bool `json:"long_term"`
	Monthly  bool `json:"monthly"`
	Daily    bool `json:"daily"`
}

// SaveComprehensive upserts each provided section under its synthetic or
// calendar dateKey.
func (s *PlannerService) SaveComprehensive(ctx context.Context, userID, timezone string, now time.Time, in ComprehensiveInput) (*ComprehensiveSaved, error) {
	var saved ComprehensiveSaved

	if in.LongTerm != nil {
		payload, err := json.Marshal(in.LongTerm)
		if err != nil {
			return nil, err
		}
		if _, err := s.store.Plans().Upsert(ctx, &model.PlanDocument{
			UserID: userID, DateKey: model.LongTermKey(now), Timezone: timezone, PlanJSON: payload,
		}); err != nil {
			return nil, err
		}
		saved.LongTerm = true
	}

	if in.Monthly != nil {
		payload, err := json.Marshal(in.Monthly)
		if err != nil {
			return nil, err
		}
		if _, err := s.store.Plans().Upsert(ctx, &model.PlanDocument{
			UserID: userID, DateKey: model.MonthlyKey(now), Timezone: timezone, PlanJSON: payload,
		}); err != nil {
			return nil, err
		}
		saved.Monthly = true
	}

	if in.DailyTasks != nil {
		payload, err := json.Marshal(map[string][]model.Task{"daily_tasks": in.DailyTasks})
		if err != nil {
			return nil, err
		}
		if _, err := s.store.Plans().Upsert(ctx, &model.PlanDocument{
			UserID: userID, DateKey: model.DailyKey(now), Timezone: timezone, PlanJSON: payload,
		}); err != nil {
			return nil, err
		}
		saved.Daily = true
	}

	return &saved, nil
}

// ComprehensiveView is the combined read of all three plan horizons.
type ComprehensiveView struct {
	LongTerm   json.RawMessage `json:"long_term_plan"`
	Monthly    json.RawMessage `json:"monthly_plan"`
	DailyTasks json.RawMessage `json:"daily_tasks"`
}

// Comprehensive fetches the long-term, monthly and daily documents for now.
// Missing documents yield null sections; the daily section is read from
// daily_tasks or the legacy items key.
func (s *PlannerService) Comprehensive(ctx context.Context, userID string, now time.Time) (*ComprehensiveView, error) {
	var view ComprehensiveView

	if doc, err := s.store.Plans().Get(ctx, userID, model.LongTermKey(now)); err == nil {
		view.LongTerm = doc.PlanJSON
	} else if !isNotFound(err) {
		return nil, err
	}

	if doc, err := s.store.Plans().Get(ctx, userID, model.MonthlyKey(now)); err == nil {
		view.Monthly = doc.PlanJSON
	} else if !isNotFound(err) {
		return nil, err
	}

	if doc, err := s.store.Plans().Get(ctx, userID, model.DailyKey(now)); err == nil {
		var payload struct {
			DailyTasks json.RawMessage `json:"daily_tasks"`
			Items      json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(doc.PlanJSON, &payload); err != nil {
			return nil, fmt.Errorf("plan %s/%s: %w", userID, model.DailyKey(now), model.ErrCorruptPlan)
		}
		switch {
		case payload.DailyTasks != nil:
			view.DailyTasks = payload.DailyTasks
		case payload.Items != nil:
			view.DailyTasks = payload.Items
		default:
			view.DailyTasks = json.RawMessage("[]")
		}
	} else if !isNotFound(err) {
		return nil, err
	}

	return &view, nil
}

// UpdateTask applies a single task's completion change to the stored
// document for (userID, dateKey). A missing document is first materialized
// from the fixed nine-task template so the update path always has a
// document to mutate. The read-modify-write runs under the per-key lock.
func (s *PlannerService) UpdateTask(ctx context.Context, userID, dateKey, taskID string, completed bool) (*model.Task, error) {
	lock := s.keyLock(userID, dateKey)
	lock.Lock()
	defer lock.Unlock()

	doc, err := s.store.Plans().Get(ctx, userID, dateKey)
	if isNotFound(err) {
		doc, err = s.materializeDefault(ctx, userID, dateKey)
	}
	if err != nil {
		return nil, err
	}

	updated, task, err := planner.ApplyTaskUpdate(doc.PlanJSON, taskID, completed)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.Plans().Upsert(ctx, &model.PlanDocument{
		UserID:   userID,
		DateKey:  dateKey,
		Timezone: doc.Timezone,
		PlanJSON: updated,
	}); err != nil {
		return nil, fmt.Errorf("persist plan: %w", err)
	}
	return task, nil
}

func (s *PlannerService) materializeDefault(ctx context.Context, userID, dateKey string) (*model.PlanDocument, error) {
	payload, err := json.Marshal(map[string][]model.Task{"daily_tasks": planner.DefaultDailyTasks()})
	if err != nil {
		return nil, err
	}
	return s.store.Plans().Upsert(ctx, &model.PlanDocument{
		UserID:   userID,
		DateKey:  dateKey,
		Timezone: "UTC",
		PlanJSON: payload,
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, model.ErrNotFound)
}
