// Package main is the entry point for the Discord bot.
package main

import (
	"context"
	"log"

	"github.com/ghanshyammann/seawar/internal/bot"
	"github.com/ghanshyammann/seawar/internal/catalog"
	"github.com/ghanshyammann/seawar/internal/controller"
	"github.com/ghanshyammann/seawar/internal/env"
	"github.com/ghanshyammann/seawar/internal/events"
	"github.com/ghanshyammann/seawar/internal/service"
)

func main() {
	// Load configuration
	cfg, err := env.LoadBotConfig()
	if err != nil {
		log.Fatalf("Failed to load bot config: %v", err)
	}

	// Initialize services
	eventBus := events.NewMemoryEventBus()
	identityService := service.NewIdentityService(cfg.JWTSecret)
	memoryService := service.NewMemoryService(catalog.NewProvider(), eventBus)
	notifier := service.NewNotificationService(eventBus)

	// Create controller
	ctrl := controller.NewAppController(identityService, memoryService, memoryService, notifier)

	// Create and start bot
	discordBot, err := bot.NewDiscordBot(cfg.DiscordToken, cfg.DiscordAppID, ctrl, notifier)
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	log.Println("Starting Discord bot...")
	if err := discordBot.Start(context.Background()); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
