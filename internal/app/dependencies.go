package app

import (
	"database/sql"

	"github.com/globetrotter/globetrotter/internal/auth"
	"github.com/globetrotter/globetrotter/internal/config"
	"github.com/globetrotter/globetrotter/internal/event_bus"
	"github.com/globetrotter/globetrotter/internal/utils"
	"github.com/globetrotter/globetrotter/pkg/activity"
	"github.com/globetrotter/globetrotter/pkg/budget"
	"github.com/globetrotter/globetrotter/pkg/city"
	"github.com/globetrotter/globetrotter/pkg/itinerary"
	"github.com/globetrotter/globetrotter/pkg/session"
	"github.com/globetrotter/globetrotter/pkg/sharing"
	"github.com/globetrotter/globetrotter/pkg/trip"
	"github.com/globetrotter/globetrotter/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	TokenIssuer   *auth.TokenIssuer
	Authenticator auth.Authenticator
	AuthHandler   *auth.Handler

	UserService user.Service
	UserHandler *user.Handler

	CityService city.Service
	CityHandler *city.Handler

	ActivityService activity.Service
	ActivityHandler *activity.Handler

	TripRepo    trip.Repo
	TripService trip.Service
	TripHandler *trip.Handler

	ItineraryService itinerary.Service
	ItineraryHandler *itinerary.Handler

	BudgetService budget.Service
	BudgetHandler *budget.Handler

	SharingService sharing.Service
	SharingHandler *sharing.Handler

	SessionStore   *session.Store
	SessionHandler *session.Handler
}

// BuildDependencies initializes and wires all application services and
// handlers. In demo mode db is nil and everything runs on the in-memory
// repositories preloaded with the demo dataset.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	var userRepo user.Repo
	var cityRepo city.Repo
	var activityRepo activity.Repo
	var budgetRepo budget.Repo
	var sharingRepo sharing.Repo
	if cfg.Demo.Enabled {
		userRepo = user.NewDemoUserRepo()
		cityRepo = city.NewDemoRepo()
		activityRepo = activity.NewDemoRepo()
		budgetRepo = budget.NewDemoRepo()
		sharingRepo = sharing.NewStubRepo()
		deps.TripRepo = trip.NewDemoRepo()
	} else {
		userRepo = user.NewRepo(db)
		cityRepo = city.NewRepo(db)
		activityRepo = activity.NewRepo(db)
		budgetRepo = budget.NewRepo(db)
		sharingRepo = sharing.NewRepo(db)
		deps.TripRepo = trip.NewRepo(db)
	}

	deps.UserService = user.NewService(userRepo)
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.TokenIssuer = auth.NewTokenIssuer(cfg.Auth, deps.Clock)
	if cfg.Demo.Enabled {
		deps.Authenticator = auth.DemoAuthenticator{}
	} else {
		deps.Authenticator = auth.NewRepoAuthenticator(deps.UserService)
	}

	deps.CityService = city.NewService(cityRepo)
	deps.CityHandler = city.NewHandler(deps.CityService)

	deps.ActivityService = activity.NewService(activityRepo)
	deps.ActivityHandler = activity.NewHandler(deps.ActivityService)

	deps.TripService = trip.NewService(deps.TripRepo, deps.Bus)
	deps.TripHandler = trip.NewHandler(deps.TripService, deps.CityService)

	deps.ItineraryService = itinerary.NewService(deps.TripService, deps.ActivityService)
	deps.ItineraryHandler = itinerary.NewHandler(deps.ItineraryService)

	deps.BudgetService = budget.NewService(budgetRepo)
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService)

	deps.SharingService = sharing.NewService(sharingRepo, deps.TripRepo, deps.Clock, deps.Bus)
	deps.SharingHandler = sharing.NewHandler(deps.SharingService)

	deps.SessionStore = session.NewStore(deps.Bus)
	deps.SessionHandler = session.NewHandler(deps.SessionStore)

	deps.AuthHandler = auth.NewHandler(deps.Authenticator, deps.TokenIssuer, deps.UserService, deps.SessionStore)

	return deps
}
