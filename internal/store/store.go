package store

import (
	"context"

	"github.com/kamyarmaaf/planner/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (e.g., postgres, sqlite).
type Store interface {
	Profiles() Profiles
	Plans() Plans
	Messages() Messages

	// Ping verifies connectivity for health reporting.
	Ping(ctx context.Context) error
}

// Profiles persists one profile per user, updated in place.
type Profiles interface {
	Get(ctx context.Context, userID string) (*model.Profile, error)
	Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error)
}

// Plans persists PlanDocuments keyed by (userID, dateKey).
// Upsert replaces any prior document for that key in full; Get returns
// model.ErrNotFound when no document exists, never a synthetic default.
type Plans interface {
	Get(ctx context.Context, userID, dateKey string) (*model.PlanDocument, error)
	Upsert(ctx context.Context, doc *model.PlanDocument) (*model.PlanDocument, error)
}

// Messages stores contact-form submissions.
type Messages interface {
	Create(ctx context.Context, m *model.Message) (*model.Message, error)
	List(ctx context.Context) ([]*model.Message, error)
}
