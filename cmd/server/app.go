package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/ghanshyammann/seawar/internal/catalog"
	"github.com/ghanshyammann/seawar/internal/controller"
	"github.com/ghanshyammann/seawar/internal/env"
	"github.com/ghanshyammann/seawar/internal/events"
	"github.com/ghanshyammann/seawar/internal/server"
	"github.com/ghanshyammann/seawar/internal/service"
)

// Application wires configuration, services and the HTTP server together.
// Setup is split from Run so tests can exercise the echo.Echo instance
// directly (e.g. with httptest.NewServer) without binding a real port.
type Application struct {
	E *echo.Echo

	cfg *env.Config
}

// Setup loads configuration and builds the full dependency graph.
func (a *Application) Setup() {
	cfg, err := env.LoadServerConfig()
	if err != nil {
		log.Fatalf("failed to load server config: %v", err)
	}
	a.cfg = cfg

	eventBus := events.NewMemoryEventBus()
	identity := service.NewIdentityService(cfg.JWTSecret)
	memory := service.NewMemoryService(catalog.NewProvider(), eventBus)
	notifier := service.NewNotificationService(eventBus)

	ctrl := controller.NewAppController(identity, memory, memory, notifier)

	a.E = server.New(ctrl, cfg.JWTSecret, cfg.RateLimit)
}

// Run starts the HTTP server and blocks until it exits.
func (a *Application) Run() error {
	a.Setup()

	log.Printf("listening on :%s", a.cfg.Port)
	return a.E.Start(":" + a.cfg.Port)
}
