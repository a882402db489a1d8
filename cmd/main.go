package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "cooking_probe/docs"
	"cooking_probe/internal/config"
	"cooking_probe/internal/handlers"
	"cooking_probe/internal/logger"
	"cooking_probe/internal/probe"
	"cooking_probe/internal/recorder"
	"cooking_probe/internal/repository"
	"cooking_probe/internal/repository/db"
	"cooking_probe/internal/server"
	"cooking_probe/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title                       cooking_probe API
// @version                     1.0
// @description                 Cooking probe temperature analytics: prediction, log analysis and recording.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DB.Path)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, service.Deps{
		Config: cfg,
		Source: probeSource(cfg.Recorder, log),
		Log:    log,
	})
	apiHandler := handlers.NewHandler(services, log)

	if cfg.Recorder.Autostart {
		autostartRecorder(services, log)
	}

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(srv, services, log)
}

// probeSource returns nil when no cloud credentials are configured.
func probeSource(cfg config.RecorderConfig, log *logger.Logger) recorder.Source {
	if cfg.Email == "" || cfg.Password == "" {
		log.Infow("recorder disabled: no cloud credentials configured")
		return nil
	}
	client := probe.NewClient(cfg.BaseURL, nil)
	return probe.NewSession(client, cfg.Email, cfg.Password)
}

func autostartRecorder(services *service.Service, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	st, err := services.Recorder.Start(ctx)
	if err != nil {
		log.Errorw("recorder autostart failed", "err", err)
		return
	}
	log.Infow("recorder autostarted", "device_id", st.DeviceID, "file", st.FilePath)
}

func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("starting server", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks until SIGINT/SIGTERM, then stops the recorder and
// drains in-flight requests.
func waitForShutdown(srv *server.Server, services *service.Service, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	_, err := services.Recorder.Stop(ctx)
	if err != nil && !errors.Is(err, recorder.ErrNotRunning) && !errors.Is(err, service.ErrRecorderUnavailable) {
		log.Errorw("failed to stop recorder", "err", err)
	}
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
	_ = log.Sync()
}
