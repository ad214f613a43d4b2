// Package main is the entry point of the application
package main

import (
	"flag"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pipopa/reversi-server/internal/auth"
	"github.com/pipopa/reversi-server/internal/config"
	"github.com/pipopa/reversi-server/pkg/game"
	"github.com/pipopa/reversi-server/pkg/server"
)

// application encapsulates global dependencies
type application struct {
	Auth   *auth.APIKeyAuth
	Logger *zap.Logger
	Config *config.Config
	Hub    *server.Hub
	Server *http.Server

	StartTime time.Time
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	configPath := flag.String("config", "config.yml", "path to config file")
	flag.Parse()

	logger := initLogger(*debug)
	defer logger.Sync()

	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading config error", zap.Error(err))
	}

	registry := server.NewRegistry(logger)
	directory := game.NewDirectory(logger)
	hub := server.NewHub(registry, directory, logger)

	app := &application{
		Auth:      auth.New(cfg.APIKeys),
		Logger:    logger,
		Config:    cfg,
		Hub:       hub,
		StartTime: time.Now(),
	}

	go app.Hub.Run()

	if err := app.serve(); err != nil {
		logger.Fatal("error serving", zap.Error(err))
	}
}

func initLogger(debug bool) *zap.Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	return logger
}

// Shutdown cleans up resources
func (app *application) Shutdown() {
	if app.Hub != nil {
		app.Hub.Shutdown()
	}

	app.Logger.Info("All components shut down successfully")
}
