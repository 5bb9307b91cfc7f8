package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kamyarmaaf/planner/internal/model"
)

func TestProfileSave_RecomputesAIContext(t *testing.T) {
	st := newTestStore(t)
	svc := NewProfileService(st)

	saved, err := svc.Save(context.Background(), &model.Profile{
		UserID:    "u1",
		WorkStudy: "Teacher",
		Hobbies:   "gardening",
		Sports:    "cycling",
		Location:  "Porto",
	})
	require.NoError(t, err)
	require.NotNil(t, saved.AIContext)
	require.True(t, strings.Contains(*saved.AIContext, "- Work/Study: Teacher"))

	// Changing an attribute must refresh the stored context.
	saved.WorkStudy = "Principal"
	updated, err := svc.Save(context.Background(), saved)
	require.NoError(t, err)
	require.True(t, strings.Contains(*updated.AIContext, "- Work/Study: Principal"))

	got, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.True(t, strings.Contains(*got.AIContext, "Principal"))
}

func TestContactService_CreateAndList(t *testing.T) {
	st := newTestStore(t)
	svc := NewContactService(st)

	msg, err := svc.Create(context.Background(), &model.Message{
		Name:     "Sam",
		Email:    "sam@example.com",
		Subject:  "Feedback",
		Category: "general",
		Body:     "Love the planner",
	})
	require.NoError(t, err)
	require.NotZero(t, msg.ID)

	msgs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "Feedback", msgs[0].Subject)
}
