package validate

import (
	"fmt"
	"regexp"

	"github.com/kamyarmaaf/planner/internal/model"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// dateRx matches an ISO calendar date. Calendar validity (month/day
// ranges) is not checked here; the store treats the key as opaque.
var dateRx = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dateKeyRx additionally admits the synthetic long-term and monthly keys.
var dateKeyRx = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}|long-term-\d{4}|monthly-\d{4}-\d{2})$`)

var clockRx = regexp.MustCompile(`^\d{2}:\d{2}$`)

// Date validates an ISO calendar date string (YYYY-MM-DD).
func Date(v string) error {
	if v == "" {
		return fmt.Errorf("date is required")
	}
	if !dateRx.MatchString(v) {
		return fmt.Errorf("date must match YYYY-MM-DD")
	}
	return nil
}

// DateKey validates a plan key: a calendar date or one of the synthetic
// long-term / monthly keys.
func DateKey(v string) error {
	if v == "" {
		return fmt.Errorf("date is required")
	}
	if !dateKeyRx.MatchString(v) {
		return fmt.Errorf("date must be YYYY-MM-DD, long-term-YYYY or monthly-YYYY-MM")
	}
	return nil
}

// Clock validates a 24h HH:MM timestamp.
func Clock(v string) error {
	if !clockRx.MatchString(v) {
		return fmt.Errorf("time must match HH:MM")
	}
	return nil
}

func Email(v string) error {
	if v == "" {
		return fmt.Errorf("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func MaxLen(field, v string, limit int) error {
	if len(v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}

// -------- Request specific helpers ----------

// Profile validates input for saving a lifestyle profile. The four core
// attributes are mandatory; measurements are optional but bounded.
func Profile(p *model.Profile) error {
	if err := NonEmpty("workStudy", p.WorkStudy); err != nil {
		return err
	}
	if err := NonEmpty("hobbies", p.Hobbies); err != nil {
		return err
	}
	if err := NonEmpty("sports", p.Sports); err != nil {
		return err
	}
	if err := NonEmpty("location", p.Location); err != nil {
		return err
	}
	if p.WeightKg != nil && (*p.WeightKg <= 0 || *p.WeightKg > 500) {
		return fmt.Errorf("weightKg out of range")
	}
	if p.HeightCm != nil && (*p.HeightCm <= 0 || *p.HeightCm > 300) {
		return fmt.Errorf("heightCm out of range")
	}
	if p.AgeYears != nil && (*p.AgeYears <= 0 || *p.AgeYears > 150) {
		return fmt.Errorf("ageYears out of range")
	}
	return nil
}

// TaskUpdate validates input for a completion toggle.
func TaskUpdate(date, taskID string) error {
	if err := DateKey(date); err != nil {
		return err
	}
	if err := NonEmpty("taskId", taskID); err != nil {
		return err
	}
	return nil
}

// Contact validates a contact-form submission.
func Contact(m *model.Message) error {
	if err := NonEmpty("name", m.Name); err != nil {
		return err
	}
	if err := Email(m.Email); err != nil {
		return err
	}
	if err := NonEmpty("subject", m.Subject); err != nil {
		return err
	}
	if err := NonEmpty("message", m.Body); err != nil {
		return err
	}
	if err := MaxLen("message", m.Body, 5000); err != nil {
		return err
	}
	return nil
}
