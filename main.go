package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/resume-site/internal/config"
	"github.com/Zachkp/resume-site/internal/content"
	"github.com/Zachkp/resume-site/internal/notify"
	"github.com/Zachkp/resume-site/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := initLogger(os.Stdout, cfg.Log)

	if !cfg.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog := content.Default()
	if cfg.ContentFile != "" {
		if catalog, err = content.Load(cfg.ContentFile); err != nil {
			return err
		}
		logger.Info("loaded content file", "path", cfg.ContentFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	notifier, err := notify.New(cfg.Notify, logger)
	if err != nil {
		return err
	}

	s := newServer(cfg, logger, catalog, st, notifier)
	s.admin.cleanupOldVisitorData(ctx)

	r, err := s.routes()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTP.Addr, "dev", cfg.Dev, "notify", cfg.Notify.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := s.wait(shutdownCtx); err != nil {
		logger.Warn("background work did not finish", "error", err)
	}
	return nil
}
