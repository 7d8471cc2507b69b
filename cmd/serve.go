package main

import (
	"context"
	"errors"
	"net/http"
	"newsroom/internal/config"
	"newsroom/internal/session"
	"newsroom/internal/uploads"
	"newsroom/internal/web"
	"newsroom/internal/worker"
	"newsroom/pkg/logger"
	"newsroom/pkg/newsapi/restapi"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps web.Deps) func(ctx context.Context) {
	server, err := web.NewServer(deps, web.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupUploads builds the upload service and sweeps its tracker until ctx is done.
func setupUploads(ctx context.Context, cfg *config.Config, client *restapi.Client) *uploads.Service {
	tracker := uploads.NewTracker(cfg.Upload.TrackerTTL)
	svc := uploads.NewService(
		uploads.NewUploader(client, uploads.Options{
			AllowedExtensions: cfg.Upload.AllowedExtensions,
			MaxBytes:          cfg.Upload.MaxBytes,
			HTTPClient:        &http.Client{Timeout: cfg.Upload.Timeout},
		}),
		tracker,
		cfg.Upload.Timeout,
	)

	interval := cfg.Upload.TrackerTTL / 2
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := tracker.Sweep(); n > 0 {
					logger.Debug(ctx, "swept finished uploads", zap.Int("count", n))
				}
			}
		}
	}()

	return svc
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the web server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			meterProvider, err := web.NewMeterProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			client, err := restapi.New(restapi.Options{
				BaseURL:       cfg.Backend.BaseURL,
				Timeout:       cfg.Backend.Timeout,
				MeterProvider: meterProvider,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create backend client", zap.Error(err))
			}

			sessions := session.NewManager(strg, session.Options{
				CookieName: cfg.Session.CookieName,
				TTL:        cfg.Session.TTL,
				Secure:     cfg.Session.Secure,
			})

			riverClient, err := worker.Start(ctx, strg.Pool, strg, worker.Options{
				PurgeInterval: cfg.Session.PurgeInterval,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, web.Deps{
				News:     client,
				Sessions: sessions,
				Uploads:  setupUploads(ctx, cfg, client),
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
