package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kamyarmaaf/planner/internal/model"
)

// BuildContext renders a profile into the multi-line context block embedded
// in generation prompts. Pure function: absent optional fields are omitted,
// never an error. An empty reading preference emits a placeholder line so
// the model knows to suggest recommendations.
func BuildContext(p *model.Profile) string {
	parts := []string{
		"User Profile:",
		"- Work/Study: " + p.WorkStudy,
		"- Hobbies: " + p.Hobbies,
		"- Sports/Exercise: " + p.Sports,
		"- Location: " + p.Location,
	}

	if p.AgeYears != nil {
		parts = append(parts, fmt.Sprintf("- Age: %d years", *p.AgeYears))
	}
	if p.WeightKg != nil && p.HeightCm != nil {
		parts = append(parts, fmt.Sprintf("- Physical: %skg, %scm",
			formatMeasure(*p.WeightKg), formatMeasure(*p.HeightCm)))
	}

	if p.Reading != nil && strings.TrimSpace(*p.Reading) != "" {
		parts = append(parts, "- Reading: "+*p.Reading)
	} else {
		parts = append(parts, "- Reading: Open to AI recommendations based on interests")
	}

	return strings.Join(parts, "\n")
}

func formatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
