package city

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/globetrotter/globetrotter/internal/rest"
	"github.com/globetrotter/globetrotter/internal/utils"
	"github.com/gorilla/mux"
)

type CityDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	AvgCost      int64    `json:"avgCost"`
	AvgCostLabel string   `json:"avgCostLabel"`
	Tags         []string `json:"tags"`
	Popular      bool     `json:"popular"`
}

type Handler struct {
	cityService Service
}

func NewHandler(cityService Service) *Handler {
	return &Handler{cityService: cityService}
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	query := r.URL.Query()
	filter := Filter{
		Query:       query.Get("q"),
		Tags:        query["tag"],
		PopularOnly: query.Has("popular"),
	}

	cities, err := h.cityService.Search(r.Context(), filter)
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	dtos := make([]CityDTO, 0, len(cities))
	for _, c := range cities {
		dtos = append(dtos, ToDTO(c))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetCity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	c, err := h.cityService.GetCity(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCityNotFound) {
			rest.WriteError(w, http.StatusNotFound, "City not found", "")
			return
		}
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	if err := json.NewEncoder(w).Encode(ToDTO(c)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func ToDTO(c City) CityDTO {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return CityDTO{
		ID:           c.ID,
		Name:         c.Name,
		Country:      c.Country,
		Description:  c.Description,
		Image:        c.Image,
		AvgCost:      c.AvgCost,
		AvgCostLabel: utils.FormatINR(c.AvgCost),
		Tags:         tags,
		Popular:      c.Popular,
	}
}
