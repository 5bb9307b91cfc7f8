package services

import (
	"context"

	"github.com/kamyarmaaf/planner/internal/model"
	"github.com/kamyarmaaf/planner/internal/store"
)

// ContactService stores contact-form submissions.
type ContactService struct {
	store store.Store
}

func NewContactService(s store.Store) *ContactService {
	return &ContactService{store: s}
}

func (s *ContactService) Create(ctx context.Context, m *model.Message) (*model.Message, error) {
	return s.store.Messages().Create(ctx, m)
}

func (s *ContactService) List(ctx context.Context) ([]*model.Message, error) {
	return s.store.Messages().List(ctx)
}
