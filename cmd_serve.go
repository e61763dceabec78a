package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bipul-Dubey/loyalty-predictor/config"
	"github.com/Bipul-Dubey/loyalty-predictor/handlers"
	"github.com/Bipul-Dubey/loyalty-predictor/routes"
	"github.com/Bipul-Dubey/loyalty-predictor/services"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the prediction form and JSON API over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.GinMode)

	predictor, err := config.NewPredictorClient(cfg)
	if err != nil {
		return err
	}
	defer predictor.Close()

	serviceManager, err := services.NewServiceManager(cfg, predictor, logger)
	if err != nil {
		return err
	}
	handlerManager := handlers.NewHandlerManager(serviceManager)

	r, err := routes.SetupRoutes(handlerManager, cfg.AllowedOrigins, logger.Named("http"))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("🚀 Loyalty form starting",
			zap.String("addr", srv.Addr),
			zap.String("predictor", predictor.Endpoint()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
