package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/kamyarmaaf/planner/internal/llm"
	"github.com/kamyarmaaf/planner/internal/model"
)

// Generator produces daily plans. With a provider it attempts model-backed
// generation; without one, or on any attempt failure, it returns the
// deterministic template. Generation never fails: the caller always gets a
// structurally valid plan.
type Generator struct {
	provider llm.CompletionProvider
	log      zerolog.Logger
}

// NewGenerator creates a Generator. provider may be nil, which pins the
// generator to deterministic-fallback mode.
func NewGenerator(provider llm.CompletionProvider, log zerolog.Logger) *Generator {
	return &Generator{provider: provider, log: log}
}

var fenceRx = regexp.MustCompile("```json\n?|```\n?")

// stripCodeFences removes markdown code-fence wrapping that models sometimes
// add despite instructions.
func stripCodeFences(s string) string {
	return fenceRx.ReplaceAllString(s, "")
}

// DailyTimeline returns the timeline-flavor plan for the given date and
// timezone. The two stages are explicit: attemptTimeline returns a result or
// an error, and any error routes to the deterministic template.
func (g *Generator) DailyTimeline(ctx context.Context, p *model.Profile, date, timezone string) model.TimelinePlan {
	if g.provider == nil {
		return SampleTimeline(date, timezone, p)
	}

	plan, err := g.attemptTimeline(ctx, p, date, timezone)
	if err != nil {
		g.log.Warn().Err(err).Str("date", date).Msg("model generation failed, using template plan")
		return SampleTimeline(date, timezone, p)
	}
	return *plan
}

func (g *Generator) attemptTimeline(ctx context.Context, p *model.Profile, date, timezone string) (*model.TimelinePlan, error) {
	system := timelineSystemPrompt(BuildContext(p))
	user := timelineUserPrompt(date, timezone)

	content, err := g.provider.Complete(ctx, system, user)
	if err != nil {
		return nil, err
	}

	var probe struct {
		Date     *string               `json:"date"`
		Timezone *string               `json:"timezone"`
		Items    *[]model.TimelineItem `json:"items"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &probe); err != nil {
		return nil, fmt.Errorf("parse model output: %w", err)
	}
	if probe.Date == nil || probe.Timezone == nil || probe.Items == nil {
		return nil, fmt.Errorf("model output missing date, timezone or items")
	}
	return &model.TimelinePlan{Date: *probe.Date, Timezone: *probe.Timezone, Items: *probe.Items}, nil
}

// DailyTasks returns the daily-tasks-flavor plan, already normalized per the
// Task invariants. The second return reports whether the list came from the
// model; the fallback list is returned on a nil provider or any attempt
// failure.
func (g *Generator) DailyTasks(ctx context.Context, p *model.Profile, date, timezone string) ([]model.Task, bool) {
	if g.provider == nil {
		return SampleDailyTasks(), false
	}

	tasks, err := g.attemptDailyTasks(ctx, p, date, timezone)
	if err != nil {
		g.log.Warn().Err(err).Str("date", date).Msg("model task generation failed, using sample tasks")
		return SampleDailyTasks(), false
	}
	return tasks, true
}

func (g *Generator) attemptDailyTasks(ctx context.Context, p *model.Profile, date, timezone string) ([]model.Task, error) {
	system := dailyTasksSystemPrompt(BuildContext(p))
	user := dailyTasksUserPrompt(date, timezone)

	content, err := g.provider.Complete(ctx, system, user)
	if err != nil {
		return nil, err
	}

	var probe struct {
		DailyTasks []map[string]any `json:"daily_tasks"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &probe); err != nil {
		return nil, fmt.Errorf("parse model output: %w", err)
	}
	return NormalizeTasks(probe.DailyTasks), nil
}
