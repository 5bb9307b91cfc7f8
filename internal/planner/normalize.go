package planner

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"github.com/kamyarmaaf/planner/internal/model"
)

var timeRx = regexp.MustCompile(`^\d{2}:\d{2}$`)

const minutesPerDay = 24 * 60

// NormalizeTasks repairs a raw model-produced task list into a canonical one:
// every output task has a unique HH:MM time, a type from the closed
// vocabulary, a string id and a boolean completed flag. Tasks that already
// carry a valid time keep it verbatim; the rest receive deterministic slots
// spaced evenly over the day, probing forward a minute at a time on
// collision. An empty input yields an empty list.
//
// The forward probe is bounded at one full day of attempts; for realistic
// list sizes it terminates long before that, but with many pre-reserved
// slots it can scan linearly, so it is O(N^2) worst case.
func NormalizeTasks(raw []map[string]any) []model.Task {
	if len(raw) == 0 {
		return []model.Task{}
	}

	reserved := make(map[string]bool, len(raw))
	for _, t := range raw {
		if s, ok := coerceString(t["time"]); ok && timeRx.MatchString(s) {
			reserved[s] = true
		}
	}

	step := minutesPerDay / len(raw)

	out := make([]model.Task, 0, len(raw))
	for i, t := range raw {
		task := model.Task{
			ID:        coerceID(t["id"]),
			Title:     stringOrEmpty(t["title"]),
			Type:      coerceType(t["type"]),
			Completed: coerceBool(t["completed"]),
		}
		if d, ok := coerceString(t["description"]); ok {
			task.Description = d
		}

		if s, ok := coerceString(t["time"]); ok && timeRx.MatchString(s) {
			task.Time = s
		} else {
			candidate := (i * step) % minutesPerDay
			slot := minutesToClock(candidate)
			for guard := 0; reserved[slot] && guard < minutesPerDay; guard++ {
				candidate = (candidate + 1) % minutesPerDay
				slot = minutesToClock(candidate)
			}
			task.Time = slot
			reserved[slot] = true
		}

		out = append(out, task)
	}
	return out
}

func minutesToClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", (mins/60)%24, mins%60)
}

// coerceType defaults missing or out-of-vocabulary types to work.
func coerceType(v any) model.TaskType {
	if s, ok := coerceString(v); ok && model.ValidTaskType(s) {
		return model.TaskType(s)
	}
	return model.TaskWork
}

// coerceID stringifies numeric ids and synthesizes one when absent.
func coerceID(v any) string {
	switch id := v.(type) {
	case string:
		if id != "" {
			return id
		}
	case json.Number:
		return id.String()
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	}
	return uuid.New().String()
}

func coerceBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func coerceString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func stringOrEmpty(v any) string {
	s, _ := v.(string)
	return s
}
