package sharing

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/globetrotter/globetrotter/internal/rest"
	"github.com/globetrotter/globetrotter/pkg/trip"
	"github.com/gorilla/mux"
)

type LinkDTO struct {
	ID        string `json:"id"`
	TripID    string `json:"tripId"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

type createLinkRequest struct {
	TripID string `json:"tripId"`
}

type Handler struct {
	sharingService Service
}

func NewHandler(sharingService Service) *Handler {
	return &Handler{sharingService: sharingService}
}

func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req createLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.TripID == "" {
		rest.WriteError(w, http.StatusBadRequest, "tripId is required", "")
		return
	}

	l, err := h.sharingService.CreateLink(r.Context(), req.TripID)
	if err != nil {
		writeLinkError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(l)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	tripID := mux.Vars(r)["id"]

	links, err := h.sharingService.ListLinks(r.Context(), tripID)
	if err != nil {
		writeLinkError(w, err)
		return
	}
	dtos := make([]LinkDTO, 0, len(links))
	for _, l := range links {
		dtos = append(dtos, toDTO(l))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ResolveToken serves the public share view; it requires no authentication.
func (h *Handler) ResolveToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	token := mux.Vars(r)["token"]

	t, err := h.sharingService.ResolveToken(r.Context(), token)
	if err != nil {
		writeLinkError(w, err)
		return
	}
	if err := json.NewEncoder(w).Encode(trip.ToDTO(t)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) RevokeLink(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.sharingService.RevokeLink(r.Context(), id); err != nil {
		w.Header().Set("Content-Type", "application/json")
		writeLinkError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeLinkError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrLinkNotFound):
		rest.WriteError(w, http.StatusNotFound, "Share link not found", "")
	case errors.Is(err, ErrLinkExpired):
		rest.WriteError(w, http.StatusGone, "Share link expired", "")
	case errors.Is(err, trip.ErrTripNotFound):
		rest.WriteError(w, http.StatusNotFound, "Trip not found", "")
	case errors.Is(err, trip.ErrNotOwner):
		rest.WriteError(w, http.StatusForbidden, "Trip belongs to another user", "")
	default:
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
	}
}

func toDTO(l Link) LinkDTO {
	return LinkDTO{
		ID:        l.ID,
		TripID:    l.TripID,
		Token:     l.Token,
		ExpiresAt: l.ExpiresAt.Format(time.RFC3339),
	}
}
