package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"personlink/internal/person/adapters"
	"personlink/internal/person/handler"
	"personlink/internal/person/metrics"
	"personlink/internal/person/service"
	"personlink/internal/person/tracer"
	"personlink/internal/platform/config"
	"personlink/internal/platform/health"
	"personlink/internal/platform/httpserver"
	"personlink/internal/platform/logger"
	"personlink/internal/wikidata"
	httptransport "personlink/internal/transport/http"
)

// A request fans out into several upstream calls; the handler budget has to
// cover the slowest sequential path (search fallback then enrichment).
const requestTimeout = 30 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing personlink",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"upstream_timeout", cfg.UpstreamTimeout.String(),
	)

	upstreamCfg := wikidata.Config{
		SearchURL: cfg.SearchURL,
		SPARQLURL: cfg.SPARQLURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.UpstreamTimeout,
	}
	searcher := wikidata.NewSearchClient(upstreamCfg)

	m := metrics.New()
	runner := adapters.NewResilientQueryRunner(
		wikidata.NewSPARQLClient(upstreamCfg),
		log,
		adapters.WithMetrics(m),
	)

	svc := service.New(searcher, runner,
		service.Config{
			Languages:    cfg.Languages,
			SearchLimit:  cfg.SearchLimit,
			CandidateCap: cfg.CandidateCap,
		},
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithTracer(tracer.NewOTel()),
	)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("structured_query", func() error {
		if runner.IsOpen() {
			return errors.New("circuit open")
		}
		return nil
	})

	router := httptransport.NewRouter(handler.New(svc, log), healthHandler, log, requestTimeout)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
