package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	server "venuefinder/internal/adapters/http_server"
	"venuefinder/internal/adapters/observability"
	redisad "venuefinder/internal/adapters/redis"
	"venuefinder/internal/app"
	"venuefinder/internal/catalog"
	"venuefinder/internal/domain"
	"venuefinder/internal/ingest"
	"venuefinder/internal/knowledge"
	"venuefinder/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	kb, err := knowledge.Load(cfg.DefaultCity)
	if err != nil {
		log.Fatal().Err(err).Msg("load city knowledge failed")
	}
	log.Info().Int("cities", len(kb.Cities())).Str("default", kb.DefaultCity()).Msg("city knowledge loaded")

	store := catalog.New(kb.DefaultCity())
	loader := ingest.NewLoader(kb)

	ctx := context.Background()
	dining, lodging, err := loader.Load(ctx, cfg.DiningCSV, cfg.LodgingCSV)
	if err != nil {
		log.Fatal().Err(err).Msg("dataset ingestion failed")
	}
	store.Swap(dining, lodging)
	observability.SetCatalogSize(store.Counts())

	if cfg.RefreshIntv > 0 {
		go refreshLoop(ctx, loader, store, cfg)
	}

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	rec := app.NewRecommender(kb, store, cache, cfg.CacheTTL)

	// http
	srv := server.New(cfg.RateRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{R: rec, KB: kb, DefaultLimit: cfg.ResultLimit})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// refreshLoop periodically re-ingests the datasets and swaps in a fresh
// snapshot. In-flight queries keep reading the old one.
func refreshLoop(ctx context.Context, loader *ingest.Loader, store *catalog.Store, cfg shared.Config) {
	t := time.NewTicker(cfg.RefreshIntv)
	defer t.Stop()
	for range t.C {
		dining, lodging, err := loader.Load(ctx, cfg.DiningCSV, cfg.LodgingCSV)
		if err != nil {
			log.Warn().Err(err).Msg("catalog refresh failed; keeping current snapshot")
			continue
		}
		store.Swap(dining, lodging)
		observability.SetCatalogSize(store.Counts())
		log.Info().Int("dining", len(dining)).Int("lodging", len(lodging)).Msg("catalog refreshed")
	}
}
