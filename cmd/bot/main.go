package main

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sushiludps-lang/wellness-app/bot"
	"github.com/sushiludps-lang/wellness-app/config"
	"github.com/sushiludps-lang/wellness-app/logger"
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
	b, err := bot.New(cfg, svc, log)
	if err != nil {
		log.Fatal("Failed to create bot", zap.Error(err))
	}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Info("Stopping bot")
		b.Stop()
	}()

	log.Info("Bot started")
	b.Start()
}
