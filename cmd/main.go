package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/sushiludps-lang/wellness-app/config"
	"github.com/sushiludps-lang/wellness-app/logger"
	"github.com/sushiludps-lang/wellness-app/routes"
	"github.com/sushiludps-lang/wellness-app/services"
)

func main() {
	if err := logger.Init(os.Getenv("APP_ENV")); err != nil {
		panic(err)
	}
	log := logger.L()
	defer func() { _ = log.Sync() }()

	cfg := config.Load(log)

	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}

	svc := services.New(services.NewRecordStore(db), cfg.MealHistoryDays, cfg.DailyHistoryDays)
	router := routes.SetupRouter(svc, cfg, log)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           c.Handler(router),
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	go func() {
		log.Info("Server started", zap.String("addr", cfg.HTTPAddr), zap.String("db", cfg.DB.Driver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Could not listen", zap.String("addr", cfg.HTTPAddr), zap.Error(err))
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)
	<-shutdownChan

	log.Info("Shutdown signal received, shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped cleanly")
}
