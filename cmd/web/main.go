package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/javajohnHub/hsw/internal/config"
	"github.com/javajohnHub/hsw/internal/db"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	logrus.SetLevel(cfg.LogLevel)

	database, err := db.InitDB(cfg.DatabasePath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open database")
	}
	defer database.Close()

	if err := db.RunMigrations(database.DB, cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	if !cfg.AdminEnabled() {
		logrus.Warn("ADMIN_USERNAME or ADMIN_PASSWORD not set, admin login is disabled")
	}

	sessionManager := scs.New()
	sessionManager.Lifetime = cfg.SessionLifetime
	sessionManager.Store = sqlite3store.New(database.DB)

	seed := uint64(time.Now().UnixNano())
	app := newApplication(database, sessionManager, cfg, rand.NewPCG(seed, seed>>1|1))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("Error shutting down server")
		}
	}()

	logrus.WithField("addr", cfg.Addr).Info("Server starting")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("Server failed")
	}
	logrus.Info("Server stopped")
}
