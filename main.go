package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Eslamsamyx/kayanlive-questionnaire/app"
	"github.com/Eslamsamyx/kayanlive-questionnaire/config"
	"github.com/Eslamsamyx/kayanlive-questionnaire/database"
	"github.com/Eslamsamyx/kayanlive-questionnaire/httpx"
	"github.com/Eslamsamyx/kayanlive-questionnaire/log"
	"github.com/Eslamsamyx/kayanlive-questionnaire/routes"
	"github.com/Eslamsamyx/kayanlive-questionnaire/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	submissionStore := store.New(db)
	if cfg.AdminUser != "" {
		err = submissionStore.EnsureAdmin(context.Background(), cfg.AdminUser, cfg.AdminPass)
		if err != nil {
			log.Fatal("main.db.admin:", err)
		}
	}

	bearerServer := httpx.NewBearerServer(db, cfg)

	app := app.App{
		DB:           db,
		BearerServer: bearerServer,
		Config:       cfg,
		Store:        submissionStore,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
