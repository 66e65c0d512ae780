package activity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/globetrotter/globetrotter/internal/rest"
	"github.com/globetrotter/globetrotter/internal/utils"
	"github.com/gorilla/mux"
)

type ActivityDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Duration    string  `json:"duration"`
	Cost        int64   `json:"cost"`
	CostLabel   string  `json:"costLabel"`
	CityID      string  `json:"cityId"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
}

type Handler struct {
	activityService Service
}

func NewHandler(activityService Service) *Handler {
	return &Handler{activityService: activityService}
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	query := r.URL.Query()
	filter := Filter{
		Query:      query.Get("q"),
		Categories: query["category"],
		CityID:     query.Get("cityId"),
	}

	activities, err := h.activityService.Search(r.Context(), filter)
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	writeActivities(w, activities)
}

func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	a, err := h.activityService.GetActivity(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Activity not found", "")
			return
		}
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	if err := json.NewEncoder(w).Encode(ToDTO(a)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ByCity lists the activities available in one city, for the itinerary
// builder's picker.
func (h *Handler) ByCity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	cityID := mux.Vars(r)["id"]

	activities, err := h.activityService.GetByCity(r.Context(), cityID)
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	writeActivities(w, activities)
}

func writeActivities(w http.ResponseWriter, activities []Activity) {
	dtos := make([]ActivityDTO, 0, len(activities))
	for _, a := range activities {
		dtos = append(dtos, ToDTO(a))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func ToDTO(a Activity) ActivityDTO {
	return ActivityDTO{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Category:    a.Category,
		Duration:    a.Duration,
		Cost:        a.Cost,
		CostLabel:   utils.FormatINR(a.Cost),
		CityID:      a.CityID,
		Image:       a.Image,
		Rating:      a.Rating,
	}
}
