package main

import (
	"log"

	"gradation-bot/config"
	telegram "gradation-bot/internal/api"
	"gradation-bot/internal/container"
	"gradation-bot/internal/infrastructure/chart"
	"gradation-bot/internal/infrastructure/report"
	"gradation-bot/internal/infrastructure/sieve"
	"gradation-bot/internal/infrastructure/storage"
	"gradation-bot/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	// Собираем адаптеры и сервисы приложения
	appContainer := container.New(container.Adapters{
		Users:    storage.NewMemoryUserRepository(),
		Detector: vision.NewParticleDetector(cfg.MinPixelArea),
		Renderer: chart.NewRenderer(cfg.ChartWidth, cfg.ChartHeight),
		Parser:   sieve.NewParser(),
		Exporter: report.NewXLSXExporter(),
	}, cfg.HistogramBins)

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	log.Println("Bot is running...")
	if err := bot.Run(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
