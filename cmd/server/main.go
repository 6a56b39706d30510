package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"clinic-records/internal/appointment"
	"clinic-records/internal/config"
	"clinic-records/internal/inventory"
	"clinic-records/internal/lookup"
	"clinic-records/internal/patient"
	"clinic-records/internal/platform/postgres"
	"clinic-records/internal/report"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 1. Infrastructure
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := postgres.Connect(cfg.DatabaseURL(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(cfg.DatabaseURL(), "migrations", log); err != nil {
		log.Fatal().Err(err).Msg("could not migrate database")
	}

	// 2. Services
	appointmentRepo := appointment.NewRepository(db)
	appointmentSvc := appointment.NewService(appointmentRepo, log)
	appointmentHandler := appointment.NewHandler(appointmentSvc)

	lookupHandler := lookup.NewHandler(lookup.NewRepository(db))
	patientHandler := patient.NewHandler(patient.NewRepository(db))
	inventoryHandler := inventory.NewHandler(inventory.NewRepository(db))
	reportHandler := report.NewHandler(report.NewService(appointmentSvc))

	// 3. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		appointment.RegisterRoutes(r, appointmentHandler)
		lookup.RegisterRoutes(r, lookupHandler)
		patient.RegisterRoutes(r, patientHandler)
		inventory.RegisterRoutes(r, inventoryHandler)
		report.RegisterRoutes(r, reportHandler)
	})

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
