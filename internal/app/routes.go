package app

import (
	"net/http"

	"github.com/globetrotter/globetrotter/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	// Auth
	r.HandleFunc("/api/auth/signup", deps.AuthHandler.Signup).Methods("POST")
	r.HandleFunc("/api/auth/login", deps.AuthHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/refresh", deps.AuthHandler.Refresh).Methods("POST")
	r.HandleFunc("/api/auth/logout", deps.AuthHandler.Logout).Methods("DELETE")

	// User
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")

	// Cities
	r.HandleFunc("/api/city", deps.CityHandler.Search).Methods("GET")
	r.HandleFunc("/api/city/{id}", deps.CityHandler.GetCity).Methods("GET")
	r.HandleFunc("/api/city/{id}/activity", deps.ActivityHandler.ByCity).Methods("GET")

	// Activities
	r.HandleFunc("/api/activity", deps.ActivityHandler.Search).Methods("GET")
	r.HandleFunc("/api/activity/{id}", deps.ActivityHandler.GetActivity).Methods("GET")

	// Trips; community goes first so it does not match as a trip id
	r.HandleFunc("/api/trip/community", deps.TripHandler.ListCommunity).Methods("GET")
	r.HandleFunc("/api/trip", deps.TripHandler.CreateTrip).Methods("POST")
	r.HandleFunc("/api/trip", deps.TripHandler.ListTrips).Methods("GET")
	r.HandleFunc("/api/trip/{id}", deps.TripHandler.GetTrip).Methods("GET")
	r.HandleFunc("/api/trip/{id}", deps.TripHandler.UpdateTrip).Methods("PUT")
	r.HandleFunc("/api/trip/{id}", deps.TripHandler.DeleteTrip).Methods("DELETE")
	r.HandleFunc("/api/trip/{id}/city", deps.TripHandler.AddCity).Methods("POST")

	// Itinerary builder
	r.HandleFunc("/api/trip/{id}/itinerary", deps.ItineraryHandler.GetItinerary).Methods("GET")
	r.HandleFunc("/api/trip/{id}/itinerary/{date}/activity", deps.ItineraryHandler.AddActivity).Methods("POST")
	r.HandleFunc("/api/trip/{id}/itinerary/{date}/activity/{activityId}", deps.ItineraryHandler.RemoveActivity).Methods("DELETE")

	// Budget
	r.HandleFunc("/api/budget", deps.BudgetHandler.GetOverview).Methods("GET")
	r.HandleFunc("/api/budget/{name}", deps.BudgetHandler.UpdateCategory).Methods("PUT")

	// Calendar lookup
	r.HandleFunc("/api/calendar/trip", deps.TripHandler.OnDate).Queries("date", "{date}").Methods("GET")

	// Share links
	r.HandleFunc("/api/shared", deps.SharingHandler.CreateLink).Methods("POST")
	r.HandleFunc("/api/shared/{token}", deps.SharingHandler.ResolveToken).Methods("GET")
	r.HandleFunc("/api/shared/{id}", deps.SharingHandler.RevokeLink).Methods("DELETE")
	r.HandleFunc("/api/trip/{id}/share", deps.SharingHandler.ListLinks).Methods("GET")

	// Session state
	r.HandleFunc("/api/session", deps.SessionHandler.GetState).Methods("GET")
	r.HandleFunc("/api/session/active-trip", deps.SessionHandler.SetActiveTrip).Methods("PUT")
	r.HandleFunc("/api/session/active-trip", deps.SessionHandler.ClearActiveTrip).Methods("DELETE")
	r.HandleFunc("/api/session/theme/toggle", deps.SessionHandler.ToggleTheme).Methods("POST")
	r.HandleFunc("/api/session/search", deps.SessionHandler.SetSearchQuery).Methods("PUT")
}
