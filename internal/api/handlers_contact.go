package api

import (
	"encoding/json"
	"net/http"

	respond "github.com/kamyarmaaf/planner/internal/api/respond"
	"github.com/kamyarmaaf/planner/internal/api/validate"
	"github.com/kamyarmaaf/planner/internal/model"
	"github.com/kamyarmaaf/planner/internal/services"
)

// ContactHandler serves contact-form submission and listing.
type ContactHandler struct {
	svc *services.ContactService
}

func NewContactHandler(svc *services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// CreateMessage handles POST /api/contact.
func (h *ContactHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Subject  string `json:"subject"`
		Category string `json:"category"`
		Message  string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	m := &model.Message{
		Name:     in.Name,
		Email:    in.Email,
		Subject:  in.Subject,
		Category: in.Category,
		Body:     in.Message,
	}
	if err := validate.Contact(m); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	out, err := h.svc.Create(r.Context(), m)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListMessages handles GET /api/contact.
func (h *ContactHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"messages": msgs})
}
