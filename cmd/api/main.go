package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "cv-extract/docs" // Swagger docs
	"cv-extract/internal/api"
	"cv-extract/internal/batch"
	"cv-extract/internal/config"
	"cv-extract/internal/cv"
	"cv-extract/internal/extraction"
	"cv-extract/internal/logger"
	"cv-extract/internal/storage"
)

// @title CV Extract API
// @version 1.0
// @description Heuristic resume field extraction: name, contact info, experience, education and skills

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	var archive api.Archive
	if cfg.ArchiveEnabled() {
		log.Info("Connecting to database...")

		db, err := storage.NewDB(cfg.DatabaseURL, log)
		if err != nil {
			log.Fatal("db open", zap.Error(err))
		}
		defer db.Close()

		if err := db.EnsureSchema(context.Background()); err != nil {
			log.Fatal("db schema", zap.Error(err))
		}
		log.Info("Database connected successfully!")
		archive = db
	} else {
		log.Info("DATABASE_URL not set, result archive disabled")
	}

	orchestrator := batch.NewOrchestrator(extraction.NewExtractor(), cfg.ExtractWorkers, log)
	apiSrv := api.NewAPI(orchestrator, cv.NewCVParser(nil), archive, log, api.Options{
		MaxUploadBytes: int64(cfg.MaxUploadMB) << 20,
		MaxUploadFiles: cfg.MaxUploadFiles,
	})
	router := api.NewRouter(apiSrv, cfg.SwaggerURL)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second, // File upload
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("server shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	log.Info("API server listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("listen", zap.Error(err))
	}

	<-idleConnsClosed
	// Flush queued archive jobs once no handler can enqueue more.
	apiSrv.Close()
}
