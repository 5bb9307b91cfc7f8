package planner

import (
	"testing"

	"github.com/kamyarmaaf/planner/internal/model"
)

func TestNormalizeTasks_Empty(t *testing.T) {
	out := NormalizeTasks(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty slice, got %v", out)
	}
}

func TestNormalizeTasks_ValidTimesKeptVerbatim(t *testing.T) {
	raw := []map[string]any{
		{"id": "a", "title": "Run", "time": "06:15", "type": "workout"},
		{"id": "b", "title": "Eat", "time": "08:00", "type": "meal"},
	}
	out := NormalizeTasks(raw)
	if out[0].Time != "06:15" || out[1].Time != "08:00" {
		t.Fatalf("times not preserved: %v", out)
	}
}

func TestNormalizeTasks_MissingTimesGetUniqueSlots(t *testing.T) {
	raw := []map[string]any{
		{"id": "1", "title": "A"},
		{"id": "2", "title": "B"},
		{"id": "3", "title": "C"},
		{"id": "4", "title": "D"},
	}
	out := NormalizeTasks(raw)

	seen := map[string]bool{}
	for _, task := range out {
		if !timeRx.MatchString(task.Time) {
			t.Fatalf("assigned time %q not HH:MM", task.Time)
		}
		if seen[task.Time] {
			t.Fatalf("duplicate slot %q", task.Time)
		}
		seen[task.Time] = true
	}
	// step = 1440/4 = 360 minutes
	if out[0].Time != "00:00" || out[1].Time != "06:00" || out[2].Time != "12:00" || out[3].Time != "18:00" {
		t.Fatalf("unexpected slot spacing: %v", out)
	}
}

func TestNormalizeTasks_CollisionProbesForward(t *testing.T) {
	// Two tasks: step is 720. The second task's natural slot 12:00 is
	// already reserved by the first, so it moves forward one minute.
	raw := []map[string]any{
		{"id": "1", "title": "A", "time": "12:00"},
		{"id": "2", "title": "B"},
	}
	out := NormalizeTasks(raw)
	if out[0].Time != "12:00" {
		t.Fatalf("reserved time rewritten: %v", out[0])
	}
	if out[1].Time != "12:01" {
		t.Fatalf("expected probe to land on 12:01, got %q", out[1].Time)
	}
}

func TestNormalizeTasks_InvalidTimeFormatsReassigned(t *testing.T) {
	raw := []map[string]any{
		{"id": "1", "time": "7:00"},
		{"id": "2", "time": "25:99x"},
		{"id": "3", "time": 900},
	}
	out := NormalizeTasks(raw)
	for _, task := range out {
		if !timeRx.MatchString(task.Time) {
			t.Fatalf("invalid time survived: %q", task.Time)
		}
	}
}

func TestNormalizeTasks_TypeVocabulary(t *testing.T) {
	raw := []map[string]any{
		{"id": "1", "type": "meal"},
		{"id": "2", "type": "nap"},
		{"id": "3"},
	}
	out := NormalizeTasks(raw)
	if out[0].Type != model.TaskMeal {
		t.Fatalf("valid type rewritten: %v", out[0].Type)
	}
	if out[1].Type != model.TaskWork || out[2].Type != model.TaskWork {
		t.Fatalf("invalid or missing type not defaulted to work: %v %v", out[1].Type, out[2].Type)
	}
}

func TestNormalizeTasks_IDCoercion(t *testing.T) {
	raw := []map[string]any{
		{"id": float64(7), "title": "numeric"},
		{"title": "absent"},
	}
	out := NormalizeTasks(raw)
	if out[0].ID != "7" {
		t.Fatalf("numeric id not stringified: %q", out[0].ID)
	}
	if out[1].ID == "" {
		t.Fatalf("missing id not synthesized")
	}
}

func TestNormalizeTasks_CompletedDefaultsFalse(t *testing.T) {
	raw := []map[string]any{
		{"id": "1", "completed": true},
		{"id": "2", "completed": "yes"},
		{"id": "3"},
	}
	out := NormalizeTasks(raw)
	if !out[0].Completed || out[1].Completed || out[2].Completed {
		t.Fatalf("completed coercion wrong: %v", out)
	}
}
