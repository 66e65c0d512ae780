package app

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/globetrotter/globetrotter/internal/config"
	"github.com/globetrotter/globetrotter/internal/database"
	"github.com/globetrotter/globetrotter/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, storage, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	if cfg.Demo.Enabled {
		log.Info("Demo mode enabled, serving the in-memory demo dataset")
	} else {
		db, err = database.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		// db stays open for the process lifetime
		if err := database.Migrate(cfg.Database); err != nil {
			return nil, err
		}
	}

	r := mux.NewRouter()

	deps := BuildDependencies(db, cfg)

	SetupMiddleware(r, deps, cfg)

	RegisterRoutes(r, deps, cfg)

	if cfg.Frontend.Enabled {
		frontend := rest.NewFrontendHandler("frontend", "index.html")
		r.PathPrefix("/").Handler(frontend)
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, router: r, srv: srv}, nil
}

// Run starts the HTTP server and blocks.
func (a *Application) Run() error {
	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
