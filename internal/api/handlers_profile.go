package api

import (
	"encoding/json"
	"net/http"

	respond "github.com/kamyarmaaf/planner/internal/api/respond"
	"github.com/kamyarmaaf/planner/internal/api/validate"
	"github.com/kamyarmaaf/planner/internal/model"
	"github.com/kamyarmaaf/planner/internal/services"
)

// ProfileHandler serves profile read and upsert.
type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// GetProfile handles GET /api/profile.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "no actor")
		return
	}
	p, err := h.svc.Get(r.Context(), actor.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// SaveProfile handles POST /api/profile.
func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "no actor")
		return
	}
	var in struct {
		WorkStudy string   `json:"workStudy"`
		Hobbies   string   `json:"hobbies"`
		Sports    string   `json:"sports"`
		Location  string   `json:"location"`
		WeightKg  *float64 `json:"weightKg"`
		HeightCm  *float64 `json:"heightCm"`
		AgeYears  *int     `json:"ageYears"`
		Reading   *string  `json:"reading"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	p := &model.Profile{
		UserID:    actor.UserID,
		WorkStudy: in.WorkStudy,
		Hobbies:   in.Hobbies,
		Sports:    in.Sports,
		Location:  in.Location,
		WeightKg:  in.WeightKg,
		HeightCm:  in.HeightCm,
		AgeYears:  in.AgeYears,
		Reading:   in.Reading,
	}
	if err := validate.Profile(p); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	out, err := h.svc.Save(r.Context(), p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
