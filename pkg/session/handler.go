package session

import (
	"encoding/json"
	"net/http"

	"github.com/globetrotter/globetrotter/internal/rest"
	"github.com/globetrotter/globetrotter/pkg/user"
)

type StateDTO struct {
	ActiveTripID string `json:"activeTripId"`
	Theme        string `json:"theme"`
	SearchQuery  string `json:"searchQuery"`
}

type activeTripRequest struct {
	TripID string `json:"tripId"`
}

type searchQueryRequest struct {
	Query string `json:"query"`
}

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, err := user.CurrentID(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusUnauthorized, "Not authenticated", "")
		return
	}
	writeState(w, h.store.Get(userID))
}

func (h *Handler) SetActiveTrip(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, err := user.CurrentID(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	var req activeTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.TripID == "" {
		rest.WriteError(w, http.StatusBadRequest, "tripId is required", "")
		return
	}
	writeState(w, h.store.SetActiveTrip(userID, req.TripID))
}

func (h *Handler) ClearActiveTrip(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, err := user.CurrentID(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusUnauthorized, "Not authenticated", "")
		return
	}
	writeState(w, h.store.ClearActiveTrip(userID))
}

func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, err := user.CurrentID(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusUnauthorized, "Not authenticated", "")
		return
	}
	writeState(w, h.store.ToggleTheme(userID))
}

func (h *Handler) SetSearchQuery(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, err := user.CurrentID(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	var req searchQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	writeState(w, h.store.SetSearchQuery(userID, req.Query))
}

func writeState(w http.ResponseWriter, state State) {
	dto := StateDTO{
		ActiveTripID: state.ActiveTripID,
		Theme:        state.Theme,
		SearchQuery:  state.SearchQuery,
	}
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
