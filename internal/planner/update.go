package planner

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kamyarmaaf/planner/internal/model"
)

// ApplyTaskUpdate sets the completed flag of one task inside a stored plan
// payload and returns the rewritten payload plus the updated task. Every
// other task field, every other task, and every unrelated top-level field
// keep their original bytes. The task list is located under daily_tasks or,
// failing that, the legacy items key; whichever key the document already
// uses is the one written back.
//
// Errors: a payload that does not parse wraps model.ErrCorruptPlan; a
// missing task wraps model.ErrNotFound. Neither is ever coerced into a
// silent no-op.
func ApplyTaskUpdate(payload json.RawMessage, taskID string, completed bool) (json.RawMessage, *model.Task, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", model.ErrCorruptPlan, err)
	}

	key := "daily_tasks"
	rawList, ok := doc[key]
	if !ok {
		if alt, altOK := doc["items"]; altOK {
			key = "items"
			rawList = alt
			ok = true
		}
	}

	var tasks []map[string]json.RawMessage
	if ok {
		if err := json.Unmarshal(rawList, &tasks); err != nil {
			return nil, nil, fmt.Errorf("%w: task list: %v", model.ErrCorruptPlan, err)
		}
	}

	idx := -1
	for i, t := range tasks {
		if matchesID(t["id"], taskID) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, fmt.Errorf("task %q: %w", taskID, model.ErrNotFound)
	}

	if completed {
		tasks[idx]["completed"] = json.RawMessage("true")
	} else {
		tasks[idx]["completed"] = json.RawMessage("false")
	}

	newList, err := json.Marshal(tasks)
	if err != nil {
		return nil, nil, err
	}
	doc[key] = newList

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, nil, err
	}
	return out, taskFromRaw(tasks[idx], taskID, completed), nil
}

// matchesID compares a raw id value against the requested id, tolerating
// numeric ids by comparing their token text.
func matchesID(raw json.RawMessage, id string) bool {
	if len(raw) == 0 {
		return false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s == id
	}
	return string(bytes.TrimSpace(raw)) == id
}

// taskFromRaw extracts a best-effort canonical view of the mutated task for
// the response body; unparseable fields are simply left zero.
func taskFromRaw(t map[string]json.RawMessage, id string, completed bool) *model.Task {
	out := &model.Task{ID: id, Completed: completed}
	var s string
	if err := json.Unmarshal(t["title"], &s); err == nil {
		out.Title = s
	}
	if err := json.Unmarshal(t["time"], &s); err == nil {
		out.Time = s
	}
	if err := json.Unmarshal(t["type"], &s); err == nil {
		out.Type = model.TaskType(s)
	}
	if err := json.Unmarshal(t["description"], &s); err == nil {
		out.Description = s
	}
	return out
}
