package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/ridloal/inventory-management/internal/inventory/api"
	"github.com/ridloal/inventory-management/internal/platform/config"
	"github.com/ridloal/inventory-management/internal/platform/database"
	"github.com/ridloal/inventory-management/internal/platform/logger"
	"github.com/ridloal/inventory-management/internal/platform/middleware"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Migrate, seed empty tables and serve HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides INVENTORY_HTTP_ADDR)")
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	logger.Info("Starting Inventory Service...")
	gin.SetMode(cfg.Server.GinMode)

	db, catalog, err := openCatalog(cfg.DB)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if cfg.Seed {
		result, err := catalog.Seed(ctx)
		if err != nil {
			return err
		}
		logger.Info("Seed inserted %d rows", result.Total())
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.NewRouter(catalog, sqlDB, metrics),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Inventory Service running on %s", cfg.Server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down Inventory Service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
