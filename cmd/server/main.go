package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/AngelCh415/ROI_GO/internal/calculator"
	"github.com/AngelCh415/ROI_GO/internal/config"
	"github.com/AngelCh415/ROI_GO/internal/httpx"
	"github.com/AngelCh415/ROI_GO/internal/inputs"
	"github.com/AngelCh415/ROI_GO/internal/metrics"
)

func main() {
	cfg := config.Load()

	logger := cfg.Logger()
	slog.SetDefault(logger)

	defaults, err := cfg.Defaults()
	if err == nil {
		err = inputs.NewValidator().Validate(defaults)
	}
	if err != nil {
		logger.Error("bad defaults", slog.String("file", cfg.DefaultsFile), slog.String("err", err.Error()))
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	svc := calculator.NewService(logger, metrics.NewRecorder(reg), defaults)

	r := httpx.NewRouter(logger, svc, reg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.HTTPTimeout,
		WriteTimeout:      cfg.HTTPTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", slog.String("port", cfg.Port), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
