package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kamyarmaaf/planner/internal/api"
	"github.com/kamyarmaaf/planner/internal/auth"
	"github.com/kamyarmaaf/planner/internal/config"
	"github.com/kamyarmaaf/planner/internal/factory"
	"github.com/kamyarmaaf/planner/internal/llm"
	"github.com/kamyarmaaf/planner/internal/llm/deepseek"
	"github.com/kamyarmaaf/planner/internal/logger"
	"github.com/kamyarmaaf/planner/internal/planner"
	"github.com/kamyarmaaf/planner/internal/services"
)

func main() {
	// Optional build-target flag override (local | cloud)
	buildTarget := flag.String("build-target", "", "Override BUILD_TARGET (local, cloud)")
	flag.Parse()

	log := logger.New("planner-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *buildTarget != "" {
		cfg.BuildTarget = *buildTarget
		if err := cfg.ResolveDefaults(); err != nil {
			log.Fatal().Err(err).Msg("Invalid build-target override")
		}
	}

	log.Info().
		Str("build_target", cfg.BuildTarget).
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("Planner service starting…")

	// -------- Storage layer -----------------
	st, err := factory.NewStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Store unavailable")
	}

	// -------- Generator ---------------------
	var provider llm.CompletionProvider
	if cfg.ModelAPIKey != "" {
		p, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.ModelAPIKey,
			BaseURL: cfg.ModelBaseURL,
			Model:   cfg.ModelName,
			Timeout: cfg.ModelTimeout(),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Model provider unavailable")
		}
		provider = p
	} else {
		log.Warn().Msg("No model API key; plan generation uses the deterministic template")
	}
	gen := planner.NewGenerator(provider, log)

	// -------- Services & Router -------------
	router := api.NewRouter(api.Deps{
		Planner:         services.NewPlannerService(st, gen),
		Profiles:        services.NewProfileService(st),
		Contact:         services.NewContactService(st),
		Health:          api.NewHealthHandler(st),
		Authorizer:      auth.NewDevAuthorizer(),
		DefaultTimezone: cfg.DefaultTimezone,
	})

	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
