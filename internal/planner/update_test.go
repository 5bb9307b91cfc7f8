package planner

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/kamyarmaaf/planner/internal/model"
)

func TestApplyTaskUpdate_TogglesOnlyTarget(t *testing.T) {
	payload := json.RawMessage(`{"daily_tasks":[
		{"id":"1","title":"Run","time":"07:00","type":"workout","completed":false},
		{"id":"2","title":"Eat","time":"08:00","type":"meal","completed":false}
	],"mood":"good","weather":{"temp":21}}`)

	out, task, err := ApplyTaskUpdate(payload, "2", true)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if task.ID != "2" || !task.Completed || task.Title != "Eat" {
		t.Fatalf("unexpected task echo: %+v", task)
	}

	var doc struct {
		DailyTasks []model.Task    `json:"daily_tasks"`
		Mood       string          `json:"mood"`
		Weather    json.RawMessage `json:"weather"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if doc.DailyTasks[0].Completed {
		t.Fatalf("sibling task mutated")
	}
	if !doc.DailyTasks[1].Completed {
		t.Fatalf("target task not updated")
	}
	if doc.Mood != "good" || string(doc.Weather) != `{"temp":21}` {
		t.Fatalf("unrelated fields disturbed: %+v", doc)
	}
}

func TestApplyTaskUpdate_UnrelatedFieldBytesPreserved(t *testing.T) {
	payload := json.RawMessage(`{"daily_tasks":[{"id":"1","completed":false}],"notes":"  spacedA  "}`)

	out, _, err := ApplyTaskUpdate(payload, "1", true)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if string(doc["notes"]) != `"  spacedA  "` {
		t.Fatalf("unrelated field bytes rewritten: %s", doc["notes"])
	}
}

func TestApplyTaskUpdate_LegacyItemsKey(t *testing.T) {
	payload := json.RawMessage(`{"items":[{"id":"1","title":"Old","completed":false}]}`)

	out, task, err := ApplyTaskUpdate(payload, "1", true)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !task.Completed {
		t.Fatalf("task not updated")
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if _, ok := doc["items"]; !ok {
		t.Fatalf("legacy key not written back: %s", out)
	}
	if _, ok := doc["daily_tasks"]; ok {
		t.Fatalf("document must not gain a daily_tasks key: %s", out)
	}
}

func TestApplyTaskUpdate_NumericID(t *testing.T) {
	payload := json.RawMessage(`{"daily_tasks":[{"id":3,"title":"Numeric","completed":false}]}`)

	_, task, err := ApplyTaskUpdate(payload, "3", true)
	if err != nil {
		t.Fatalf("numeric id not matched: %v", err)
	}
	if task.Title != "Numeric" {
		t.Fatalf("wrong task: %+v", task)
	}
}

func TestApplyTaskUpdate_MissingTask(t *testing.T) {
	payload := json.RawMessage(`{"daily_tasks":[{"id":"1","completed":false}]}`)

	_, _, err := ApplyTaskUpdate(payload, "nope", true)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplyTaskUpdate_CorruptPayload(t *testing.T) {
	_, _, err := ApplyTaskUpdate(json.RawMessage(`{broken`), "1", true)
	if !errors.Is(err, model.ErrCorruptPlan) {
		t.Fatalf("expected ErrCorruptPlan, got %v", err)
	}

	_, _, err = ApplyTaskUpdate(json.RawMessage(`{"daily_tasks":"not a list"}`), "1", true)
	if !errors.Is(err, model.ErrCorruptPlan) {
		t.Fatalf("expected ErrCorruptPlan for bad list, got %v", err)
	}
}

func TestApplyTaskUpdate_Idempotent(t *testing.T) {
	payload := json.RawMessage(`{"daily_tasks":[{"id":"1","title":"A","completed":false}]}`)

	once, _, err := ApplyTaskUpdate(payload, "1", true)
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	twice, _, err := ApplyTaskUpdate(once, "1", true)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if string(once) != string(twice) {
		t.Fatalf("repeat update changed the document:\n%s\n%s", once, twice)
	}
}
