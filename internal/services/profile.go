package services

import (
	"context"

	"github.com/kamyarmaaf/planner/internal/model"
	"github.com/kamyarmaaf/planner/internal/planner"
	"github.com/kamyarmaaf/planner/internal/store"
)

// ProfileService persists lifestyle profiles and keeps the derived AI
// context string in step with the stored attributes.
type ProfileService struct {
	store store.Store
}

func NewProfileService(s store.Store) *ProfileService {
	return &ProfileService{store: s}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*model.Profile, error) {
	return s.store.Profiles().Get(ctx, userID)
}

// Save upserts the profile, recomputing the AI context from the submitted
// attributes before the write so the stored context never lags the profile.
func (s *ProfileService) Save(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	aiContext := planner.BuildContext(p)
	p.AIContext = &aiContext
	return s.store.Profiles().Upsert(ctx, p)
}
