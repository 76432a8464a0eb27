package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"llm-intake/internal/intake/service"
	"llm-intake/internal/intake/store"
	"llm-intake/internal/platform/config"
	"llm-intake/internal/platform/health"
	"llm-intake/internal/platform/httpserver"
	"llm-intake/internal/platform/logger"
	"llm-intake/internal/platform/metrics"
	"llm-intake/internal/platform/token"
	"llm-intake/internal/platform/tracing"
	httptransport "llm-intake/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the intake packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing llm-intake",
		"addr", cfg.Addr,
	)

	m := metrics.New()
	appStore := store.NewMemoryStore()
	svc := service.NewService(appStore, log,
		service.WithMetrics(m),
		service.WithTracer(tracing.NewOTel()),
	)

	tokens := token.NewService(cfg.JWTSigningKey, "llm-intake", cfg.TokenTTL, nil)
	apiKeys := token.NewAPIKeys(cfg.StaffAPIKeyHash)

	hc := health.New(envName())
	hc.RegisterCheck("store", func() error {
		_, err := appStore.Count(context.Background())
		return err
	})

	handler := httptransport.NewHandler(svc, log, m)
	router := httptransport.NewRouter(handler, httptransport.RouterDeps{
		Logger:    log,
		Health:    hc,
		Validator: tokens,
		APIKeys:   apiKeys,
		AuthObs:   authObserver{m},
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

type authObserver struct {
	m *metrics.Metrics
}

func (o authObserver) ObserveAuthFailure() {
	o.m.AuthFailures.Inc()
}

func envName() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}
