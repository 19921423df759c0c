package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"holdem-resolver/internal/app/results"
	"holdem-resolver/internal/config"
	"holdem-resolver/internal/logging"
	"holdem-resolver/internal/store"
)

func main() {
	appCfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(appCfg.Log)
	cfg := appCfg.Server

	var st *store.Store
	if cfg.PostgresDSN != "" {
		st, err = store.New(cfg.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("store init failed")
		}
		if err := st.Ping(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("db ping failed")
		}
		if err := st.EnsureSchema(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("ensure schema failed")
		}
		log.Info().Msg("result archive enabled")
	} else {
		log.Info().Msg("no POSTGRES_DSN, running stateless")
	}

	svc := results.NewService(st, cfg.ResultsPageLimit)
	r := newRouter(svc, st)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
