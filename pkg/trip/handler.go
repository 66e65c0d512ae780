package trip

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/globetrotter/globetrotter/internal/rest"
	"github.com/globetrotter/globetrotter/internal/utils"
	"github.com/globetrotter/globetrotter/pkg/activity"
	"github.com/globetrotter/globetrotter/pkg/city"
	"github.com/gorilla/mux"
)

type TripDayDTO struct {
	Date       string                 `json:"date"`
	Activities []activity.ActivityDTO `json:"activities"`
}

type TripDTO struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate"`
	DurationDays int            `json:"durationDays"`
	Budget       int64          `json:"budget"`
	BudgetLabel  string         `json:"budgetLabel"`
	Description  string         `json:"description"`
	Cities       []city.CityDTO `json:"cities"`
	Days         []TripDayDTO   `json:"days"`
	Shared       bool           `json:"shared"`
	UserID       string         `json:"userId"`
}

type createTripRequest struct {
	Name        string `json:"name"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Budget      int64  `json:"budget"`
	Description string `json:"description"`
}

type updateTripRequest struct {
	Name        *string `json:"name"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Budget      *int64  `json:"budget"`
	Description *string `json:"description"`
	Shared      *bool   `json:"shared"`
}

type addCityRequest struct {
	CityID string `json:"cityId"`
}

type Handler struct {
	tripService Service
	cityService city.Service
}

func NewHandler(tripService Service, cityService city.Service) *Handler {
	return &Handler{tripService: tripService, cityService: cityService}
}

func (h *Handler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid start date", err.Error())
		return
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid end date", err.Error())
		return
	}

	created, err := h.tripService.Create(r.Context(), Trip{
		Name:        req.Name,
		StartDate:   start,
		EndDate:     end,
		Budget:      req.Budget,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidTrip) {
			rest.WriteError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	t, err := h.tripService.GetTrip(r.Context(), id)
	if err != nil {
		writeTripError(w, err)
		return
	}
	if err := json.NewEncoder(w).Encode(ToDTO(t)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) ListTrips(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	trips, err := h.tripService.ListTrips(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}
	h.writeTripList(w, trips)
}

func (h *Handler) ListCommunity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	trips, err := h.tripService.ListCommunity(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}
	h.writeTripList(w, trips)
}

func (h *Handler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	var req updateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	patch := Patch{
		Name:        req.Name,
		Budget:      req.Budget,
		Description: req.Description,
		Shared:      req.Shared,
	}
	if req.StartDate != nil {
		start, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid start date", err.Error())
			return
		}
		patch.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid end date", err.Error())
			return
		}
		patch.EndDate = &end
	}

	updated, err := h.tripService.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, ErrInvalidTrip) {
			rest.WriteError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		writeTripError(w, err)
		return
	}
	if err := json.NewEncoder(w).Encode(ToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.tripService.Delete(r.Context(), id); err != nil {
		w.Header().Set("Content-Type", "application/json")
		writeTripError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddCity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	var req addCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	c, err := h.cityService.GetCity(r.Context(), req.CityID)
	if err != nil {
		if errors.Is(err, city.ErrCityNotFound) {
			rest.WriteError(w, http.StatusBadRequest, "Unknown city", req.CityID)
			return
		}
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	updated, err := h.tripService.AddCity(r.Context(), id, c)
	if err != nil {
		writeTripError(w, err)
		return
	}
	if err := json.NewEncoder(w).Encode(ToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// OnDate answers the calendar lookup: which of the user's trips covers the
// given date, if any. Responds 204 when no trip does.
func (h *Handler) OnDate(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	date, err := utils.ParseDate(dateParam)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		rest.WriteError(w, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}

	t, ok, err := h.tripService.TripOnDate(r.Context(), date)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ToDTO(t)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeTripList(w http.ResponseWriter, trips []Trip) {
	dtos := make([]TripDTO, 0, len(trips))
	for _, t := range trips {
		dtos = append(dtos, ToDTO(t))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeTripError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrTripNotFound):
		rest.WriteError(w, http.StatusNotFound, "Trip not found", "")
	case errors.Is(err, ErrNotOwner):
		rest.WriteError(w, http.StatusForbidden, "Trip belongs to another user", "")
	default:
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
	}
}

func ToDTO(t Trip) TripDTO {
	cities := make([]city.CityDTO, 0, len(t.Cities))
	for _, c := range t.Cities {
		cities = append(cities, city.ToDTO(c))
	}
	days := make([]TripDayDTO, 0, len(t.Days))
	for _, d := range t.Days {
		activities := make([]activity.ActivityDTO, 0, len(d.Activities))
		for _, a := range d.Activities {
			activities = append(activities, activity.ToDTO(a))
		}
		days = append(days, TripDayDTO{
			Date:       d.Date.Format(utils.ISODate),
			Activities: activities,
		})
	}
	return TripDTO{
		ID:           t.ID,
		Name:         t.Name,
		StartDate:    t.StartDate.Format(utils.ISODate),
		EndDate:      t.EndDate.Format(utils.ISODate),
		DurationDays: t.DurationDays(),
		Budget:       t.Budget,
		BudgetLabel:  utils.FormatINR(t.Budget),
		Description:  t.Description,
		Cities:       cities,
		Days:         days,
		Shared:       t.Shared,
		UserID:       t.UserID,
	}
}
