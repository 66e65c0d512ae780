package itinerary

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/globetrotter/globetrotter/internal/rest"
	"github.com/globetrotter/globetrotter/internal/utils"
	"github.com/globetrotter/globetrotter/pkg/activity"
	"github.com/globetrotter/globetrotter/pkg/trip"
	"github.com/gorilla/mux"
)

type DayDTO struct {
	Index      int                    `json:"index"`
	Date       string                 `json:"date"`
	Label      string                 `json:"label"`
	Activities []activity.ActivityDTO `json:"activities"`
}

type addActivityRequest struct {
	ActivityID string `json:"activityId"`
}

type Handler struct {
	itineraryService Service
}

func NewHandler(itineraryService Service) *Handler {
	return &Handler{itineraryService: itineraryService}
}

func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	tripID := mux.Vars(r)["id"]

	days, err := h.itineraryService.GetItinerary(r.Context(), tripID)
	if err != nil {
		writeItineraryError(w, err)
		return
	}
	writeDays(w, days)
}

func (h *Handler) AddActivity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)

	date, err := utils.ParseDate(vars["date"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}
	var req addActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	days, err := h.itineraryService.AddActivity(r.Context(), vars["id"], date, req.ActivityID)
	if err != nil {
		writeItineraryError(w, err)
		return
	}
	writeDays(w, days)
}

func (h *Handler) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)

	date, err := utils.ParseDate(vars["date"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}

	days, err := h.itineraryService.RemoveActivity(r.Context(), vars["id"], date, vars["activityId"])
	if err != nil {
		writeItineraryError(w, err)
		return
	}
	writeDays(w, days)
}

func writeDays(w http.ResponseWriter, days []Day) {
	dtos := make([]DayDTO, 0, len(days))
	for _, d := range days {
		activities := make([]activity.ActivityDTO, 0, len(d.Activities))
		for _, a := range d.Activities {
			activities = append(activities, activity.ToDTO(a))
		}
		dtos = append(dtos, DayDTO{
			Index:      d.Index,
			Date:       d.Date.Format(utils.ISODate),
			Label:      d.Label,
			Activities: activities,
		})
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeItineraryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trip.ErrTripNotFound):
		rest.WriteError(w, http.StatusNotFound, "Trip not found", "")
	case errors.Is(err, trip.ErrNotOwner):
		rest.WriteError(w, http.StatusForbidden, "Trip belongs to another user", "")
	case errors.Is(err, activity.ErrActivityNotFound):
		rest.WriteError(w, http.StatusBadRequest, "Unknown activity", "")
	case errors.Is(err, ErrDateOutOfRange), errors.Is(err, ErrCityNotOnTrip):
		rest.WriteError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, ErrActivityNotPlanned):
		rest.WriteError(w, http.StatusNotFound, err.Error(), "")
	default:
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
	}
}
