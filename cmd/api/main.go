package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/business-start/api/internal/catalog"
	"github.com/business-start/api/internal/cms"
	"github.com/business-start/api/internal/handlers"
	"github.com/business-start/api/internal/platform/auth"
	"github.com/business-start/api/internal/platform/blob"
	"github.com/business-start/api/internal/platform/config"
	"github.com/business-start/api/internal/platform/observability"
	"github.com/business-start/api/internal/platform/secrets"
	"github.com/business-start/api/internal/services"
	"github.com/business-start/api/internal/studio"
)

func main() {
	ctx := context.Background()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("api")
	ctx = observability.WithLogger(ctx, logger)

	fetcher, err := secrets.NewFetcher(ctx,
		secrets.WithLogger(logger.Named("secrets")),
		secrets.WithProject(strings.TrimSpace(os.Getenv("API_GOOGLE_PROJECT_ID"))),
	)
	if err != nil {
		logger.Fatal("failed to initialise secret fetcher", zap.Error(err))
	}
	defer func() {
		if err := fetcher.Close(); err != nil {
			logger.Warn("secret fetcher close error", zap.Error(err))
		}
	}()

	cfg, err := config.Load(ctx, config.WithSecretResolver(fetcher))
	if err != nil {
		var validation *config.ValidationError
		if errors.As(err, &validation) {
			logger.Fatal("invalid configuration", zap.Strings("fields", validation.Fields()))
		}
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	messages, err := catalog.Load()
	if err != nil {
		logger.Fatal("failed to load message catalog", zap.Error(err))
	}

	blobStore, closeBlob, err := newBlobStore(ctx, cfg.Blob)
	if err != nil {
		logger.Fatal("failed to initialise blob store", zap.Error(err))
	}
	if closeBlob != nil {
		defer func() {
			if err := closeBlob(); err != nil {
				logger.Warn("blob store close error", zap.Error(err))
			}
		}()
	}
	if blobStore == nil {
		logger.Warn("no blob bucket configured; admin studio runs without persistence")
	}

	cmsClient := cms.NewClient(cms.ClientDeps{
		Config: cms.Config{
			ProjectID:  cfg.CMS.ProjectID,
			Dataset:    cfg.CMS.Dataset,
			APIVersion: cfg.CMS.APIVersion,
			UseCDN:     cfg.CMS.UseCDN,
			WriteToken: cfg.CMS.WriteToken,
		},
		Logger: logger.Named("cms"),
	})
	if !cmsClient.Configured() {
		logger.Warn("no CMS project configured; serving static content only")
	}

	studioStore := studio.NewStore(studio.StoreDeps{
		Blob:   blobStore,
		Logger: logger.Named("studio"),
	})

	snapshots := services.NewCMSSnapshotSource(services.CMSSnapshotSourceDeps{
		Fetcher: cmsClient,
		Logger:  logger.Named("snapshots"),
	})

	contentService, err := services.NewContentService(services.ContentServiceDeps{
		Catalog:   messages,
		Snapshots: snapshots,
		Studio:    studioStore,
		Logger:    logger.Named("content"),
	})
	if err != nil {
		logger.Fatal("failed to initialise content service", zap.Error(err))
	}

	landingService := services.NewLandingService(services.LandingServiceDeps{
		Snapshots: snapshots,
		Logger:    logger.Named("landing"),
	})

	leadService := services.NewLeadService(services.LeadServiceDeps{
		Writer: cmsClient,
		Logger: logger.Named("leads"),
	})

	guard := auth.NewAdminKeyGuard(cfg.Studio.AdminKey)
	if !guard.Enforced() {
		logger.Warn("no admin key configured; studio endpoints are open")
	}

	contentHandlers := handlers.NewContentHandlers(contentService, landingService)
	leadHandlers := handlers.NewLeadHandlers(leadService)
	studioHandlers := handlers.NewStudioHandlers(handlers.StudioHandlersDeps{
		Store:   studioStore,
		Content: contentService,
		Media:   blobStore,
		Guard:   guard,
	})
	siteHandlers := handlers.NewSiteHandlers(cfg.Site.BaseURL, landingService, time.Now)

	healthOpts := []handlers.HealthOption{
		handlers.WithReadinessCheck("catalog", func(context.Context) error { return nil }),
	}
	if blobStore != nil {
		healthOpts = append(healthOpts, handlers.WithReadinessCheck("blob", func(ctx context.Context) error {
			_, err := blobStore.Read(ctx, studio.ContentKey)
			if err != nil && !errors.Is(err, blob.ErrNotFound) {
				return err
			}
			return nil
		}))
	}
	healthHandlers := handlers.NewHealthHandlers(healthOpts...)

	middlewares := []func(http.Handler) http.Handler{
		observability.InjectLoggerMiddleware(logger.Named("http")),
		observability.TraceMiddleware(),
		observability.RecoveryMiddleware(logger.Named("http")),
		observability.RequestLoggerMiddleware(cfg.Site.ProjectID),
	}

	router := handlers.NewRouter(
		handlers.WithMiddlewares(middlewares...),
		handlers.WithHealthHandlers(healthHandlers),
		handlers.WithContentRoutes(contentHandlers.Routes),
		handlers.WithLeadRoutes(leadHandlers.Routes),
		handlers.WithStudioRoutes(studioHandlers.Routes),
		handlers.WithSiteRoutes(siteHandlers.Routes),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("business-start api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newBlobStore opens the configured bucket, or returns nil when none is set
// so the service runs in read-only degraded mode.
func newBlobStore(ctx context.Context, cfg config.BlobConfig) (blob.Store, func() error, error) {
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, nil, nil
	}

	var clientOpts []option.ClientOption
	if creds := strings.TrimSpace(cfg.CredentialsFile); creds != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(creds))
	}

	store, err := blob.NewGCSStore(ctx, bucket, clientOpts, blob.WithPublicObjects(cfg.PublicObjects))
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}
