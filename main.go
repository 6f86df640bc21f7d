package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentry "github.com/getsentry/sentry-go"
	telego "github.com/mymmrac/telego"

	telegoBot "linkpulse-bot/bot"
	"linkpulse-bot/internal/ai"
	"linkpulse-bot/internal/config"
	"linkpulse-bot/internal/handlers"
	"linkpulse-bot/internal/locales"
	"linkpulse-bot/internal/scheduler"
	"linkpulse-bot/internal/server"
	"linkpulse-bot/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Initialize localization bundle
	locales.Init(cfg.DefaultLanguage)

	// Initialize Sentry (if DSN is provided)
	err = sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		Release:          cfg.Version,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		Debug:            cfg.Debug,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Flush(2 * time.Second)

	// Creating context for application lifecycle
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Select the log store: MongoDB when configured, JSON files otherwise.
	var store storage.Store
	if cfg.MongoDBURI != "" {
		client, err := storage.ConnectMongo(ctx, cfg.MongoDBURI)
		if err != nil {
			sentry.CaptureException(err)
			log.Fatal(err)
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting from MongoDB: %v", err)
				sentry.CaptureException(err)
			}
		}()
		store = storage.NewMongoStore(client.Database(cfg.MongoDBDatabase))
	} else {
		jsonStore, err := storage.NewJSONStore(cfg.DataDir)
		if err != nil {
			sentry.CaptureException(err)
			log.Fatalf("Failed to create data directory %s: %v", cfg.DataDir, err)
		}
		store = jsonStore
		log.Printf("Using JSON file store in %s", cfg.DataDir)
	}

	// OpenAI-backed generation
	aiClient := ai.NewClient(cfg.OpenAIKey, cfg.TextModel, cfg.ImageModel)
	generator := ai.NewGenerator(aiClient)
	images := ai.NewImageGenerator(aiClient)

	// Create the raw telego bot instance
	var bot *telego.Bot
	if cfg.Debug {
		bot, err = telego.NewBot(cfg.BotToken, telego.WithDefaultDebugLogger())
	} else {
		bot, err = telego.NewBot(cfg.BotToken, telego.WithDefaultLogger(false, false))
	}
	if err != nil {
		sentry.CaptureException(err)
		log.Fatalf("Failed to create telego bot: %v", err)
	}

	updates, err := bot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatalf("Failed to start long polling: %v", err)
	}

	messageHandler := handlers.NewMessageHandler(cfg.TeamChatID, cfg.Version, store, generator, images)

	appBot, err := telegoBot.New(telegoBot.BotDeps{
		Bot:         bot,
		UpdatesChan: updates,
		Debug:       cfg.Debug,
		Handler:     messageHandler,
	})
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal(err)
	}

	// Liveness endpoint, separate from chat ingestion
	go func() {
		srv := server.New(cfg.AppEnv, cfg.Version, cfg.Port)
		if err := srv.Run(); err != nil {
			log.Printf("Health server stopped: %v", err)
			sentry.CaptureException(err)
		}
	}()

	// Optional daily prompt scheduler
	if cfg.DailyPromptHour >= 0 {
		daily := &scheduler.Scheduler{
			Hour: cfg.DailyPromptHour,
			Post: func(ctx context.Context) error {
				return messageHandler.PublishDailyPrompt(ctx, bot)
			},
		}
		go daily.Run(ctx)
	}

	go appBot.Start(ctx)

	<-ctx.Done()
	log.Println("Shutting down bot...")
	log.Println("Bot shutdown complete.")
}
