package main

import (
	"context"
	"log"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"brunotrack/internal/api"
	"brunotrack/internal/config"
	"brunotrack/internal/db"
	"brunotrack/internal/i18n"
	"brunotrack/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	time.Local = cfg.Location

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	database, err := db.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		zapLogger.Fatal("database init failed", zap.Error(err))
	}

	i18nManager, err := i18n.NewManager(cfg.DefaultLanguage, cfg.LocalesDir)
	if err != nil {
		zapLogger.Fatal("i18n init failed", zap.Error(err))
	}

	handler, err := api.NewHandler(database, cfg.SecretKey, cfg.TemplatesDir, cfg.UploadDir, cfg.Location, i18nManager, cfg.CookieSecure, zapLogger)
	if err != nil {
		zapLogger.Fatal("handler init failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:               "BrunoTrack",
		DisableStartupMessage: true,
		BodyLimit:             25 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "brunotrack_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cfg.CookieSecure,
		ContextKey:     "csrf",
	}))

	app.Static("/static", filepath.Join("web", "static"))
	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	go handler.Reminders().Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zapLogger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("listening",
		zap.String("port", cfg.Port),
		zap.String("db", cfg.DatabasePath),
		zap.String("tz", cfg.Location.String()),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}
