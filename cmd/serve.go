package main

import (
	"context"
	"errors"
	"foodgram/internal/api"
	"foodgram/internal/api/handler/v1handler"
	"foodgram/internal/catalog"
	"foodgram/internal/config"
	"foodgram/internal/recipes"
	"foodgram/internal/users"
	"foodgram/pkg/logger"
	"foodgram/pkg/metrics"
	"foodgram/pkg/shoppinglist"
	"foodgram/pkg/shoppinglist/pdflist"
	"foodgram/pkg/shoppinglist/textlist"
	"foodgram/pkg/storage"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const meterName = "foodgram"

func setupDeps(ctx context.Context, cfg *config.Config, strg storage.Storage) api.Deps {
	mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	otel.SetMeterProvider(mp)

	recipesSvc, err := recipes.New(strg, mp.Meter(meterName))
	if err != nil {
		logger.Fatal(ctx, "could not create recipes service", zap.Error(err))
	}

	pdf, err := pdflist.New(pdflist.Options{FontPath: cfg.ShoppingList.PDFFontPath})
	if err != nil {
		logger.Fatal(ctx, "could not create pdf renderer", zap.Error(err))
	}

	return api.Deps{Deps: v1handler.Deps{
		Catalog:   catalog.New(strg, catalog.Options{BatchSize: cfg.Import.BatchSize}),
		Recipes:   recipesSvc,
		Users:     users.New(strg),
		Renderers: []shoppinglist.Renderer{pdf, textlist.New()},
	}}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
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

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			if err := strg.Ping(ctx); err != nil {
				logger.Fatal(ctx, "could not reach postgres", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, setupDeps(ctx, cfg, strg))

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
