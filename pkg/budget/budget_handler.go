package budget

import (
	"encoding/json"
	"net/http"

	"github.com/globetrotter/globetrotter/internal/rest"
	"github.com/globetrotter/globetrotter/internal/utils"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CategoryDTO struct {
	Name         string  `json:"name"`
	Spent        int64   `json:"spent"`
	Allocated    int64   `json:"allocated"`
	Color        string  `json:"color"`
	PercentSpent float64 `json:"percentSpent"`
}

type SummaryDTO struct {
	TotalAllocated int64   `json:"totalAllocated"`
	TotalSpent     int64   `json:"totalSpent"`
	Remaining      int64   `json:"remaining"`
	RemainingLabel string  `json:"remainingLabel"`
	PercentSpent   float64 `json:"percentSpent"`
}

type OverviewDTO struct {
	Categories []CategoryDTO `json:"categories"`
	Summary    SummaryDTO    `json:"summary"`
}

type Handler struct {
	budgetService Service
}

func NewHandler(budgetService Service) *Handler {
	return &Handler{budgetService: budgetService}
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	overview, err := h.budgetService.GetOverview(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	dto := OverviewDTO{
		Categories: make([]CategoryDTO, 0, len(overview.Categories)),
		Summary: SummaryDTO{
			TotalAllocated: overview.Summary.TotalAllocated,
			TotalSpent:     overview.Summary.TotalSpent,
			Remaining:      overview.Summary.Remaining,
			RemainingLabel: utils.FormatINR(overview.Summary.Remaining),
			PercentSpent:   overview.Summary.PercentSpent,
		},
	}
	for _, c := range overview.Categories {
		dto.Categories = append(dto.Categories, CategoryDTO{
			Name:         c.Name,
			Spent:        c.Spent,
			Allocated:    c.Allocated,
			Color:        c.Color,
			PercentSpent: c.PercentSpent(),
		})
	}

	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	name := mux.Vars(r)["name"]
	log.Debugf("Updating budget category %s", name)

	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	if dto.Name != "" && dto.Name != name {
		rest.WriteError(w, http.StatusBadRequest, "Category name in body does not match URL", "")
		return
	}
	if dto.Allocated < 0 || dto.Spent < 0 {
		rest.WriteError(w, http.StatusBadRequest, "Amounts must not be negative", "")
		return
	}

	ok, err := h.budgetService.UpdateCategory(r.Context(), Category{
		Name:      name,
		Spent:     dto.Spent,
		Allocated: dto.Allocated,
		Color:     dto.Color,
	})
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Budget category not found", "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
