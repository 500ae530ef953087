package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/DmitryFreeLance/waterbot/internal/config"
	"github.com/DmitryFreeLance/waterbot/internal/maintenance"
	"github.com/DmitryFreeLance/waterbot/internal/media"
	"github.com/DmitryFreeLance/waterbot/internal/storage"
	"github.com/DmitryFreeLance/waterbot/internal/telegram"
	"github.com/DmitryFreeLance/waterbot/internal/throttle"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if cfg.BotToken == "" {
		log.Printf("Warning: BOT_TOKEN is not set, Telegram will reject the connection")
	}

	store, err := storage.Open(cfg.DBFile)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer store.Close()

	gate := throttle.NewGate(store, cfg.SpamWindow())
	cache := media.NewCache(store)

	bot, err := telegram.New(cfg.BotToken, cfg.MediaDir, store, gate, cache)
	if err != nil {
		log.Printf("failed to start telegram bot: %v", err)
		return
	}

	trimmer := maintenance.New(store, cfg.MaintenanceSchedule, cfg.CallbackLogRetention())
	if err := trimmer.Start(); err != nil {
		log.Printf("failed to start maintenance: %v", err)
	}
	defer trimmer.Stop()

	log.Printf("waterbot started as @%s (db=%s, media=%s, spam window=%v)",
		cfg.BotUsername, cfg.DBFile, cfg.MediaDir, cfg.SpamWindow())

	bot.Start(context.Background())
}
