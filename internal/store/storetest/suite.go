package storetest

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/kamyarmaaf/planner/internal/model"
	"github.com/kamyarmaaf/planner/internal/store"
)

// Run exercises a minimal compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store and return it from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	// Unique test identifiers
	userID := "u-" + uuid.New().String()

	// Profiles: absent, upsert, get, update-in-place
	if _, err := s.Profiles().Get(ctx, userID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetProfile before create: want ErrNotFound, got %v", err)
	}
	reading := "sci-fi"
	p := &model.Profile{
		UserID:    userID,
		WorkStudy: "software engineer",
		Hobbies:   "chess",
		Sports:    "running",
		Location:  "Berlin",
		Reading:   &reading,
	}
	if _, err := s.Profiles().Upsert(ctx, p); err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}
	got, err := s.Profiles().Get(ctx, userID)
	if err != nil || got.WorkStudy != "software engineer" {
		t.Fatalf("GetProfile: got=%v err=%v", got, err)
	}
	p.Location = "Munich"
	if _, err := s.Profiles().Upsert(ctx, p); err != nil {
		t.Fatalf("UpsertProfile update: %v", err)
	}
	got, err = s.Profiles().Get(ctx, userID)
	if err != nil || got.Location != "Munich" {
		t.Fatalf("GetProfile after update: got=%v err=%v", got, err)
	}
	if got.Reading == nil || *got.Reading != "sci-fi" {
		t.Fatalf("GetProfile: reading not preserved: %v", got.Reading)
	}

	// Plans: not found, upsert replaces in full, idempotent re-upsert
	const dateKey = "2024-03-01"
	if _, err := s.Plans().Get(ctx, userID, dateKey); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetPlan before create: want ErrNotFound, got %v", err)
	}
	doc := &model.PlanDocument{
		UserID:   userID,
		DateKey:  dateKey,
		Timezone: "UTC",
		PlanJSON: json.RawMessage(`{"daily_tasks":[{"id":"1","title":"Deep Work","time":"09:00","type":"work","completed":false}]}`),
	}
	if _, err := s.Plans().Upsert(ctx, doc); err != nil {
		t.Fatalf("UpsertPlan: %v", err)
	}
	first, err := s.Plans().Get(ctx, userID, dateKey)
	if err != nil || first.Timezone != "UTC" {
		t.Fatalf("GetPlan: got=%v err=%v", first, err)
	}
	// Same payload again: observable state must not change.
	if _, err := s.Plans().Upsert(ctx, doc); err != nil {
		t.Fatalf("UpsertPlan repeat: %v", err)
	}
	second, err := s.Plans().Get(ctx, userID, dateKey)
	if err != nil {
		t.Fatalf("GetPlan after repeat: %v", err)
	}
	if string(first.PlanJSON) != string(second.PlanJSON) || first.Timezone != second.Timezone {
		t.Fatalf("upsert not idempotent: %s vs %s", first.PlanJSON, second.PlanJSON)
	}
	// Full replace, not a merge.
	doc.PlanJSON = json.RawMessage(`{"items":[]}`)
	doc.Timezone = "Europe/Berlin"
	if _, err := s.Plans().Upsert(ctx, doc); err != nil {
		t.Fatalf("UpsertPlan replace: %v", err)
	}
	replaced, err := s.Plans().Get(ctx, userID, dateKey)
	if err != nil || string(replaced.PlanJSON) != `{"items":[]}` || replaced.Timezone != "Europe/Berlin" {
		t.Fatalf("GetPlan after replace: got=%v err=%v", replaced, err)
	}

	// Synthetic date keys share the same table and constraints.
	longTerm := &model.PlanDocument{
		UserID:   userID,
		DateKey:  "long-term-2024",
		Timezone: "UTC",
		PlanJSON: json.RawMessage(`{"description":"ship v1","milestones":["alpha","beta"]}`),
	}
	if _, err := s.Plans().Upsert(ctx, longTerm); err != nil {
		t.Fatalf("UpsertPlan long-term: %v", err)
	}
	if got, err := s.Plans().Get(ctx, userID, "long-term-2024"); err != nil || got == nil {
		t.Fatalf("GetPlan long-term: got=%v err=%v", got, err)
	}

	// Messages
	msg, err := s.Messages().Create(ctx, &model.Message{
		Name: "Ada", Email: "ada@example.test", Subject: "hi", Category: "general", Body: "hello",
	})
	if err != nil || msg.ID == 0 {
		t.Fatalf("CreateMessage: got=%v err=%v", msg, err)
	}
	lst, err := s.Messages().List(ctx)
	if err != nil || len(lst) == 0 {
		t.Fatalf("ListMessages: n=%d err=%v", len(lst), err)
	}

	// Ping
	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
