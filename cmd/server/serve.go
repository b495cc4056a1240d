package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "github.com/agencypulse/kpi-dashboard/docs" // registers the swagger spec
	"github.com/agencypulse/kpi-dashboard/internal/api"
	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/service"
	"github.com/agencypulse/kpi-dashboard/internal/infrastructure/db/migrations"
	"github.com/agencypulse/kpi-dashboard/internal/infrastructure/db/postgres"
	redisinfra "github.com/agencypulse/kpi-dashboard/internal/infrastructure/db/redis"
	"github.com/agencypulse/kpi-dashboard/internal/infrastructure/http/handlers"
	"github.com/agencypulse/kpi-dashboard/internal/infrastructure/queue"
	"github.com/agencypulse/kpi-dashboard/internal/infrastructure/scheduler"
)

const shutdownTimeout = 15 * time.Second

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "apply pending migrations before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	// --- Storage ---
	db, err := postgres.Connect(ctx, postgresConfig(cfg), log)
	if err != nil {
		return err
	}
	defer db.Close()

	if autoMigrate {
		if err := migrations.Up(ctx, db.DB, log); err != nil {
			return err
		}
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Activity log ---
	activityRepo := postgres.NewActivityRepository(db)
	dispatcher := queue.NewDispatcher(cfg.Activity.Workers, cfg.Activity.Buffer, activityRepo, log)
	dispatcher.Start()

	activitySvc := service.NewActivityService(activityRepo, log)
	retention := scheduler.NewRetentionJob(activitySvc, cfg.Activity.RetentionDays, log)
	if err := retention.Start(cfg.Activity.RetentionSchedule); err != nil {
		return err
	}

	// --- Services ---
	social := postgres.NewSocialMediaStore(db)
	seo := postgres.NewWebsiteSEOStore(db)
	ads := postgres.NewAdsStore(db)
	email := postgres.NewEmailStore(db)
	responses := postgres.NewClientResponseStore(db)
	revoker := redisinfra.NewTokenRevoker(rdb)

	services := api.Services{
		Auth: service.NewAuthService(postgres.NewUserRepository(db), revoker, dispatcher, cfg.JWTSecret, cfg.JWTTTL, log),
		Clients: service.NewClientService(postgres.NewClientRepository(db), service.ChannelRepositories{
			Social:    social,
			SEO:       seo,
			Ads:       ads,
			Email:     email,
			Responses: responses,
		}, dispatcher, log),
		Team:       service.NewTeamService(postgres.NewTeamRepository(db), dispatcher, log),
		Social:     service.NewKPIService[domain.SocialMediaKPI, *domain.SocialMediaKPI](domain.EntitySocialMedia, social, dispatcher, log),
		SEO:        service.NewKPIService[domain.WebsiteSEOKPI, *domain.WebsiteSEOKPI](domain.EntityWebsiteSEO, seo, dispatcher, log),
		Ads:        service.NewKPIService[domain.AdsKPI, *domain.AdsKPI](domain.EntityAds, ads, dispatcher, log),
		Email:      service.NewKPIService[domain.EmailKPI, *domain.EmailKPI](domain.EntityEmail, email, dispatcher, log),
		Responses:  service.NewKPIService[domain.ClientResponse, *domain.ClientResponse](domain.EntityClientResponse, responses, dispatcher, log),
		TeamKPIs:   service.NewKPIService[domain.TeamKPI, *domain.TeamKPI](domain.EntityTeamKPI, postgres.NewTeamKPIStore(db), dispatcher, log),
		Activities: activitySvc,
	}

	e := api.NewRouter(api.RouterConfig{
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
		Revoker:     revoker,
		Readiness:   handlers.NewHealthDependenciesHandler(db.DB, rdb),
		Logger:      log,
	}, services)

	// --- Serve until signalled ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case serveErr = <-errCh:
		log.Error().Err(serveErr).Msg("http server stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	<-retention.Stop().Done()
	if err := dispatcher.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("activity queue not fully drained")
	}

	log.Info().Msg("server stopped")
	return serveErr
}
